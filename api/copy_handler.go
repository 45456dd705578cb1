package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/product-clipper/clipboard"
	"github.com/raushankrgupta/product-clipper/dispatch"
	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/notify"
	"github.com/raushankrgupta/product-clipper/utils"
)

type copyResponse struct {
	*dispatch.Result
	Error string `json:"error,omitempty"`
}

// CopyHandler runs a copy action. The clipboard text is returned in the body
// instead of being written to the server's clipboard.
func (s *Server) CopyHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Copy API]")

	action, err := models.ParseAction(r.PathValue("action"))
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	source, err := s.decodeSource(r)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		return
	}

	var notifier notify.Notifier = notify.Multi{}
	if s.Notifier != nil {
		notifier = s.Notifier
	}
	d := dispatch.New(s.Settings, &clipboard.Buffer{}, notifier)

	res, err := d.Run(r.Context(), source, action)
	resp := copyResponse{Result: res}
	if err != nil {
		resp.Error = err.Error()
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Action %s finished: %s", action, res.Status))

	utils.RespondJSON(w, statusCode(err), resp)
}

func statusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, dispatch.ErrFieldMissing):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnsupportedPage):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dispatch.ErrPageUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
