package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/store"
	"github.com/outfitly/outfit-planner/utils"
)

// WardrobeHandler routes POST (add) and GET (list) on /api/wardrobe
func WardrobeHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		addWardrobeItem(w, r)
	case http.MethodGet:
		listWardrobeItems(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func addWardrobeItem(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Add Wardrobe Item API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var item models.WardrobeItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	// UserID comes from the token, never from the payload.
	item.UserID = userID
	item.ImageKey = ""

	saved, err := Wardrobe.Add(r.Context(), item)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCategory) || errors.Is(err, models.ErrInvalidSeason) {
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to add item: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to add wardrobe item", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Added wardrobe item %s", saved.ID.Hex()))
	utils.RespondJSON(w, http.StatusCreated, saved)
}

func listWardrobeItems(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	filter := models.WardrobeFilter{
		Category: models.ClothingCategory(r.URL.Query().Get("category")),
		Color:    r.URL.Query().Get("color"),
		Season:   models.Season(r.URL.Query().Get("season")),
	}
	if fav := r.URL.Query().Get("isFavorite"); fav != "" {
		isFav := fav == "true"
		filter.IsFavorite = &isFav
	}

	items, err := Wardrobe.List(r.Context(), userID, filter)
	if err != nil {
		utils.RespondError(w, nil, "Failed to list wardrobe items", http.StatusInternalServerError)
		return
	}

	// Stored image keys become presigned URLs in the response.
	for i := range items {
		if items[i].ImageKey != "" {
			if url, err := utils.GetPresignedURL(r.Context(), items[i].ImageKey); err == nil {
				items[i].ImageKey = url
			}
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// UpdateWardrobeItemHandler applies a partial update to an item by id
func UpdateWardrobeItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Wardrobe Item API]")

	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		utils.RespondError(w, &logMessageBuilder, "id query parameter is required", http.StatusBadRequest)
		return
	}

	if !ownsWardrobeItem(r, id, userID) {
		utils.RespondError(w, &logMessageBuilder, "Item not found", http.StatusNotFound)
		return
	}

	var patch models.WardrobeItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := Wardrobe.Update(r.Context(), id, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.RespondError(w, &logMessageBuilder, "Item not found", http.StatusNotFound)
		case errors.Is(err, models.ErrInvalidCategory), errors.Is(err, models.ErrInvalidSeason):
			utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadRequest)
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to update item: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Failed to update wardrobe item", http.StatusInternalServerError)
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Updated wardrobe item %s", id))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item updated"})
}

// DeleteWardrobeItemHandler removes an item by id; missing ids succeed
func DeleteWardrobeItemHandler(w http.ResponseWriter, r *http.Request) {
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

	// Only delete what the caller owns; an id belonging to another user is
	// treated as missing, which delete tolerates.
	if ownsWardrobeItem(r, id, userID) {
		if err := Wardrobe.Delete(r.Context(), id); err != nil {
			utils.RespondError(w, nil, "Failed to delete wardrobe item", http.StatusInternalServerError)
			return
		}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// WardrobeImageHandler attaches an uploaded photo to an item
func WardrobeImageHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe Image API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		utils.RespondError(w, &logMessageBuilder, "id query parameter is required", http.StatusBadRequest)
		return
	}
	if !ownsWardrobeItem(r, id, userID) {
		utils.RespondError(w, &logMessageBuilder, "Item not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10 MB limit
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	objectKey := fmt.Sprintf("wardrobe/%s/%s%s", userID, uuid.New().String(), ext)

	key, err := utils.UploadFileToS3(r.Context(), file, objectKey, header.Header.Get("Content-Type"))
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Error uploading image: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Error uploading image", http.StatusInternalServerError)
		return
	}

	if err := Wardrobe.SetImage(r.Context(), id, key); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to attach image", http.StatusInternalServerError)
		return
	}

	url, err := utils.GetPresignedURL(r.Context(), key)
	if err != nil {
		url = key
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Attached image to item %s", id))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// ownsWardrobeItem reports whether the item exists and belongs to userID.
func ownsWardrobeItem(r *http.Request, id, userID string) bool {
	item, err := Wardrobe.Get(r.Context(), id)
	return err == nil && item.UserID == userID
}
