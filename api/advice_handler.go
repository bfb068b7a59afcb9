package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/stylist"
	"github.com/outfitly/outfit-planner/utils"
)

// ColorAdviceRequest asks how to combine specific colors.
type ColorAdviceRequest struct {
	Colors []string `json:"colors"`
	Style  string   `json:"style"`
}

// AccessoryAdviceRequest asks what accessories fit an outfit.
type AccessoryAdviceRequest struct {
	Outfit   models.SlotMap `json:"outfit"`
	Occasion string         `json:"occasion"`
	Style    string         `json:"style"`
}

// LayeringAdviceRequest asks how to layer an outfit for the weather.
type LayeringAdviceRequest struct {
	Outfit  models.SlotMap `json:"outfit"`
	Weather string         `json:"weather"`
}

// ColorAdviceHandler returns free-text color coordination tips
func ColorAdviceHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Color Advice API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := GetUserIDFromContext(r.Context()); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ColorAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Colors) == 0 {
		utils.RespondError(w, &logMessageBuilder, "colors are required", http.StatusBadRequest)
		return
	}

	advice, err := Stylist.ColorAdvice(r.Context(), req.Colors, req.Style)
	if err != nil {
		respondAdviceError(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

// AccessoryAdviceHandler returns accessory suggestions for an outfit
func AccessoryAdviceHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Accessory Advice API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := GetUserIDFromContext(r.Context()); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req AccessoryAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Occasion == "" {
		utils.RespondError(w, &logMessageBuilder, "occasion is required", http.StatusBadRequest)
		return
	}

	advice, err := Stylist.AccessoryAdvice(r.Context(), req.Outfit, req.Occasion, req.Style)
	if err != nil {
		respondAdviceError(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

// LayeringAdviceHandler returns weather-appropriate layering tips
func LayeringAdviceHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Layering Advice API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := GetUserIDFromContext(r.Context()); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req LayeringAdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Weather == "" {
		utils.RespondError(w, &logMessageBuilder, "weather is required", http.StatusBadRequest)
		return
	}

	advice, err := Stylist.LayeringTips(r.Context(), req.Outfit, req.Weather)
	if err != nil {
		respondAdviceError(w, &logMessageBuilder, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

func respondAdviceError(w http.ResponseWriter, logger *strings.Builder, err error) {
	if errors.Is(err, stylist.ErrAIUnavailable) {
		utils.AddToLogMessage(logger, fmt.Sprintf("AI call failed: %v", err))
		utils.RespondError(w, logger, "Styling service is unavailable, please try again", http.StatusBadGateway)
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Failed to generate advice: %v", err))
	utils.RespondError(w, logger, "Failed to generate advice", http.StatusInternalServerError)
}
