package store

import (
	"context"
	"errors"

	"github.com/outfitly/outfit-planner/models"
)

// ErrNotFound is returned when an operation targets an id that does not
// exist. Deletes are idempotent-on-missing and do not return it.
var ErrNotFound = errors.New("record not found")

// WardrobeStore is keyed CRUD over a user's clothing items.
type WardrobeStore interface {
	// Add validates the item and inserts it. UserID is fixed at creation.
	Add(ctx context.Context, item models.WardrobeItem) (models.WardrobeItem, error)
	// Get fetches a single item by id.
	Get(ctx context.Context, id string) (*models.WardrobeItem, error)
	// List returns the user's items matching filter, in insertion order.
	List(ctx context.Context, userID string, filter models.WardrobeFilter) ([]models.WardrobeItem, error)
	// Update applies the non-nil patch fields to the item.
	Update(ctx context.Context, id string, patch models.WardrobeItemPatch) error
	// SetImage records the stored image key for the item.
	SetImage(ctx context.Context, id string, imageKey string) error
	// Delete removes the item. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// PreferencesStore is one-record-per-user storage of style preferences.
type PreferencesStore interface {
	// Get returns the user's preferences, or nil when none were saved yet.
	Get(ctx context.Context, userID string) (*models.UserPreferences, error)
	// Save upserts: the first save creates the record, later saves merge
	// the provided fields into it. Exactly one record per user.
	Save(ctx context.Context, userID string, prefs models.UserPreferences) error
}

// OutfitStore persists user-confirmed outfits with usage tracking. All
// mutations are scoped to the owning user; another user's id behaves like
// a missing one.
type OutfitStore interface {
	// Save always inserts a new record; saving identical content twice
	// yields two independent records.
	Save(ctx context.Context, userID string, outfit models.SavedOutfit) (models.SavedOutfit, error)
	// List returns the user's saved outfits in insertion order.
	List(ctx context.Context, userID string) ([]models.SavedOutfit, error)
	// IncrementWorn atomically bumps timesWorn by 1 and sets lastWorn to
	// now. Returns ErrNotFound when the id does not exist for that user.
	IncrementWorn(ctx context.Context, userID, id string) error
	// Delete removes the user's record. Deleting a missing or foreign id
	// is not an error.
	Delete(ctx context.Context, userID, id string) error
}
