package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/outfitly/outfit-planner/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryWardrobe is an in-memory WardrobeStore implementation, used in
// tests and for local development without a MongoDB instance.
type MemoryWardrobe struct {
	mu    sync.RWMutex
	items []models.WardrobeItem
}

func NewMemoryWardrobe() *MemoryWardrobe { return &MemoryWardrobe{} }

func (s *MemoryWardrobe) Add(ctx context.Context, item models.WardrobeItem) (models.WardrobeItem, error) {
	if item.UserID == "" {
		return models.WardrobeItem{}, fmt.Errorf("userId is required")
	}
	if err := item.Validate(); err != nil {
		return models.WardrobeItem{}, err
	}

	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	return item, nil
}

func (s *MemoryWardrobe) Get(ctx context.Context, id string) (*models.WardrobeItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryWardrobe) List(ctx context.Context, userID string, filter models.WardrobeFilter) ([]models.WardrobeItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.WardrobeItem{}
	for _, item := range s.items {
		if item.UserID != userID {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Color != "" && item.Color != filter.Color {
			continue
		}
		if filter.Season != "" && item.Season != filter.Season {
			continue
		}
		if filter.IsFavorite != nil && item.IsFavorite != *filter.IsFavorite {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *MemoryWardrobe) Update(ctx context.Context, id string, patch models.WardrobeItemPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() != id {
			continue
		}
		item := &s.items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.Color != nil {
			item.Color = *patch.Color
		}
		if patch.Brand != nil {
			item.Brand = *patch.Brand
		}
		if patch.Size != nil {
			item.Size = *patch.Size
		}
		if patch.Season != nil {
			item.Season = *patch.Season
		}
		if patch.Tags != nil {
			item.Tags = *patch.Tags
		}
		if patch.IsFavorite != nil {
			item.IsFavorite = *patch.IsFavorite
		}
		item.UpdatedAt = time.Now()
		return nil
	}
	return ErrNotFound
}

func (s *MemoryWardrobe) SetImage(ctx context.Context, id string, imageKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items[i].ImageKey = imageKey
			s.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryWardrobe) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryPreferences is an in-memory PreferencesStore implementation.
type MemoryPreferences struct {
	mu    sync.RWMutex
	prefs map[string]models.UserPreferences
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{prefs: make(map[string]models.UserPreferences)}
}

func (s *MemoryPreferences) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prefs[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryPreferences) Save(ctx context.Context, userID string, prefs models.UserPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.prefs[userID]
	if !ok {
		existing = models.UserPreferences{UserID: userID, CreatedAt: time.Now()}
	}
	if prefs.Style != "" {
		existing.Style = prefs.Style
	}
	if prefs.FavoriteColors != nil {
		existing.FavoriteColors = prefs.FavoriteColors
	}
	if prefs.Sizes != nil {
		existing.Sizes = prefs.Sizes
	}
	if prefs.WeatherPreference != "" {
		existing.WeatherPreference = prefs.WeatherPreference
	}
	if prefs.Formality != "" {
		existing.Formality = prefs.Formality
	}
	existing.UpdatedAt = time.Now()
	s.prefs[userID] = existing
	return nil
}

// MemoryOutfits is an in-memory OutfitStore implementation.
type MemoryOutfits struct {
	mu      sync.RWMutex
	outfits []models.SavedOutfit
}

func NewMemoryOutfits() *MemoryOutfits { return &MemoryOutfits{} }

func (s *MemoryOutfits) Save(ctx context.Context, userID string, outfit models.SavedOutfit) (models.SavedOutfit, error) {
	if userID == "" {
		return models.SavedOutfit{}, fmt.Errorf("userId is required")
	}
	if outfit.Rating < 0 || outfit.Rating > 5 {
		return models.SavedOutfit{}, fmt.Errorf("rating must be between 0 and 5")
	}

	outfit.ID = primitive.NewObjectID()
	outfit.UserID = userID
	outfit.TimesWorn = 0
	outfit.LastWorn = nil
	outfit.CreatedAt = time.Now()

	s.mu.Lock()
	s.outfits = append(s.outfits, outfit)
	s.mu.Unlock()
	return outfit, nil
}

func (s *MemoryOutfits) List(ctx context.Context, userID string) ([]models.SavedOutfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.SavedOutfit{}
	for _, o := range s.outfits {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *MemoryOutfits) IncrementWorn(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outfits {
		if s.outfits[i].ID.Hex() == id && s.outfits[i].UserID == userID {
			now := time.Now()
			s.outfits[i].TimesWorn++
			s.outfits[i].LastWorn = &now
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryOutfits) Delete(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outfits {
		if s.outfits[i].ID.Hex() == id && s.outfits[i].UserID == userID {
			s.outfits = append(s.outfits[:i], s.outfits[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ WardrobeStore = (*MemoryWardrobe)(nil)
var _ PreferencesStore = (*MemoryPreferences)(nil)
var _ OutfitStore = (*MemoryOutfits)(nil)
