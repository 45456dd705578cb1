package api

import (
	"net/http"

	"github.com/raushankrgupta/product-clipper/notify"
	"github.com/raushankrgupta/product-clipper/scrapers/base"
	"github.com/raushankrgupta/product-clipper/store"
	"github.com/raushankrgupta/product-clipper/utils"
)

// Server holds what the handlers share
type Server struct {
	Settings store.SettingsStore
	Fetcher  *base.Fetcher

	// Notifier also receives every run's notification, e.g. to mail it. May be nil.
	Notifier notify.Notifier
}

// Routes registers the API endpoints
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /scrape", s.ScrapeHandler)
	mux.HandleFunc("POST /copy/{action}", s.CopyHandler)
	mux.HandleFunc("GET /settings", s.GetSettingsHandler)
	mux.HandleFunc("PUT /settings", s.PutSettingsHandler)

	return utils.LatencyMiddleware(utils.CORSMiddleware(mux))
}

// pageRequest is the body of /scrape and /copy. With HTML the page is parsed
// as given; with only a URL it is fetched.
type pageRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}
