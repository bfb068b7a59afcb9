package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/store"
	"github.com/outfitly/outfit-planner/utils"
)

// SaveOutfitRequest wraps the suggestion snapshot the user chose to keep.
type SaveOutfitRequest struct {
	Outfit     models.OutfitSnapshot `json:"outfit"`
	Occasion   string                `json:"occasion"`
	Style      string                `json:"style"`
	IsFavorite bool                  `json:"isFavorite"`
	Rating     int                   `json:"rating"`
	Notes      string                `json:"notes"`
}

// OutfitsHandler routes POST (save) and GET (list) on /api/outfits.
// Outfits are only saved on explicit user action, never automatically
// after generation.
func OutfitsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		saveOutfit(w, r)
	case http.MethodGet:
		listOutfits(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func saveOutfit(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Save Outfit API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveOutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Outfit.Slots) == 0 && req.Outfit.RawText == "" {
		utils.RespondError(w, &logMessageBuilder, "outfit is required", http.StatusBadRequest)
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		utils.RespondError(w, &logMessageBuilder, "rating must be between 0 and 5", http.StatusBadRequest)
		return
	}

	saved, err := Outfits.Save(r.Context(), userID, models.SavedOutfit{
		Outfit:     req.Outfit,
		Occasion:   req.Occasion,
		Style:      req.Style,
		IsFavorite: req.IsFavorite,
		Rating:     req.Rating,
		Notes:      req.Notes,
	})
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to save outfit: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to save outfit", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved outfit %s", saved.ID.Hex()))
	utils.RespondJSON(w, http.StatusCreated, saved)
}

func listOutfits(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	outfits, err := Outfits.List(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to list outfits", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": outfits})
}

// WornRequest identifies the saved outfit the user wore.
type WornRequest struct {
	ID string `json:"id"`
}

// OutfitWornHandler bumps timesWorn for a saved outfit
func OutfitWornHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Outfit Worn API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req WornRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		utils.RespondError(w, &logMessageBuilder, "id is required", http.StatusBadRequest)
		return
	}

	// Scoped by owner: someone else's outfit id reads as missing.
	if err := Outfits.IncrementWorn(r.Context(), userID, req.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, &logMessageBuilder, "Outfit not found", http.StatusNotFound)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to increment worn count: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to update outfit", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Incremented worn count for %s", req.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Worn count updated"})
}

// DeleteOutfitHandler removes a saved outfit; deletion is hard and
// deleting a missing id succeeds
func DeleteOutfitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		utils.RespondError(w, nil, "id query parameter is required", http.StatusBadRequest)
		return
	}

	if err := Outfits.Delete(r.Context(), userID, id); err != nil {
		utils.RespondError(w, nil, "Failed to delete outfit", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Outfit deleted"})
}
