package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/outfitly/outfit-planner/stylist"
	"github.com/outfitly/outfit-planner/utils"
)

// SuggestRequest represents the payload for an outfit suggestion
type SuggestRequest struct {
	Occasion string `json:"occasion"`
}

// SuggestHandler generates one outfit suggestion for the caller's
// wardrobe and occasion. A degraded (non-JSON) model response is still a
// 200; the client inspects the structured flag to decide whether to warn.
func SuggestHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Suggest API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Occasion == "" {
		utils.RespondError(w, &logMessageBuilder, "occasion is required", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generating suggestion for occasion %q", req.Occasion))

	suggestion, err := Stylist.Generate(r.Context(), userID, req.Occasion)
	if err != nil {
		switch {
		case errors.Is(err, stylist.ErrEmptyWardrobe):
			utils.RespondError(w, &logMessageBuilder, "Add some wardrobe items before asking for a suggestion", http.StatusBadRequest)
		case errors.Is(err, stylist.ErrAIUnavailable):
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("AI call failed: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Styling service is unavailable, please try again", http.StatusBadGateway)
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate suggestion: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Failed to generate suggestion", http.StatusInternalServerError)
		}
		return
	}

	if !suggestion.Structured {
		utils.AddToLogMessage(&logMessageBuilder, "Model response was not JSON, returning degraded suggestion")
	}
	utils.RespondJSON(w, http.StatusOK, suggestion)
}
