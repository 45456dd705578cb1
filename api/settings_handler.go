package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/utils"
)

// GetSettingsHandler returns the copy-all toggles
func (s *Server) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.Load(r.Context())
	if err != nil {
		utils.RespondError(w, nil, fmt.Sprintf("Failed to load settings: %v", err), http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, settings)
}

// PutSettingsHandler saves the toggles. Missing keys take their defaults.
func (s *Server) PutSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Settings API]")

	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	settings = settings.WithDefaults()
	if err := s.Settings.Save(r.Context(), settings); err != nil {
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Failed to save settings: %v", err), http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Settings saved")
	utils.RespondJSON(w, http.StatusOK, settings)
}
