package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/utils"
)

// PreferencesHandler routes GET (fetch) and PUT (upsert) on
// /api/preferences. The first PUT creates the record, later PUTs merge
// into it; there is never more than one record per user.
func PreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Preferences API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		prefs, err := Preferences.Get(r.Context(), userID)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to fetch preferences: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Failed to fetch preferences", http.StatusInternalServerError)
			return
		}
		if prefs == nil {
			// Nothing saved yet; the client gets an empty record rather
			// than a 404 so the form can render defaults.
			prefs = &models.UserPreferences{UserID: userID}
		}
		utils.RespondJSON(w, http.StatusOK, prefs)

	case http.MethodPut:
		var prefs models.UserPreferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := Preferences.Save(r.Context(), userID, prefs); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to save preferences: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Failed to save preferences", http.StatusInternalServerError)
			return
		}

		utils.AddToLogMessage(&logMessageBuilder, "Preferences saved")
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Preferences saved"})

	default:
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
