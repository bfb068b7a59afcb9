package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidCategory is returned when a wardrobe item carries a category
// outside the closed set. Invalid categories are rejected at the boundary
// and never stored.
var ErrInvalidCategory = errors.New("invalid clothing category")

// ErrInvalidSeason is returned for a season outside the closed set.
var ErrInvalidSeason = errors.New("invalid season")

// ClothingCategory is the closed set of wardrobe item categories.
type ClothingCategory string

const (
	CategoryTops        ClothingCategory = "tops"
	CategoryBottoms     ClothingCategory = "bottoms"
	CategoryDresses     ClothingCategory = "dresses"
	CategoryOuterwear   ClothingCategory = "outerwear"
	CategoryShoes       ClothingCategory = "shoes"
	CategoryAccessories ClothingCategory = "accessories"
)

// Valid reports whether c is one of the known categories.
func (c ClothingCategory) Valid() bool {
	switch c {
	case CategoryTops, CategoryBottoms, CategoryDresses, CategoryOuterwear, CategoryShoes, CategoryAccessories:
		return true
	}
	return false
}

// Season is the closed set of wear seasons.
type Season string

const (
	SeasonSpring    Season = "spring"
	SeasonSummer    Season = "summer"
	SeasonFall      Season = "fall"
	SeasonWinter    Season = "winter"
	SeasonAllSeason Season = "all-season"
)

// Valid reports whether s is one of the known seasons. The empty string is
// accepted and treated as all-season.
func (s Season) Valid() bool {
	switch s {
	case "", SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAllSeason:
		return true
	}
	return false
}

// WardrobeItem is one cataloged piece of clothing owned by a user.
// UserID is immutable after creation.
type WardrobeItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Category   ClothingCategory   `bson:"category" json:"category"`
	Color      string             `bson:"color" json:"color"`
	Brand      string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Size       string             `bson:"size,omitempty" json:"size,omitempty"`
	Season     Season             `bson:"season,omitempty" json:"season,omitempty"`
	ImageKey   string             `bson:"image_key,omitempty" json:"imageUrl,omitempty"` // S3 key in DB, presigned URL in responses
	Tags       []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	IsFavorite bool               `bson:"isFavorite" json:"isFavorite"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the closed enum fields and required fields.
func (w *WardrobeItem) Validate() error {
	if w.Name == "" {
		return errors.New("name is required")
	}
	if !w.Category.Valid() {
		return ErrInvalidCategory
	}
	if !w.Season.Valid() {
		return ErrInvalidSeason
	}
	return nil
}

// WardrobeFilter holds optional exact-match constraints for listing items.
// All set fields are ANDed with the mandatory userId constraint.
type WardrobeFilter struct {
	Category   ClothingCategory
	Color      string
	Season     Season
	IsFavorite *bool
}

// WardrobeItemPatch holds the updatable fields of a wardrobe item. Nil
// fields are left untouched. UserID is deliberately absent.
type WardrobeItemPatch struct {
	Name       *string           `json:"name,omitempty"`
	Category   *ClothingCategory `json:"category,omitempty"`
	Color      *string           `json:"color,omitempty"`
	Brand      *string           `json:"brand,omitempty"`
	Size       *string           `json:"size,omitempty"`
	Season     *Season           `json:"season,omitempty"`
	Tags       *[]string         `json:"tags,omitempty"`
	IsFavorite *bool             `json:"isFavorite,omitempty"`
}

// Validate rejects enum values outside the closed sets.
func (p *WardrobeItemPatch) Validate() error {
	if p.Category != nil && !p.Category.Valid() {
		return ErrInvalidCategory
	}
	if p.Season != nil && !p.Season.Valid() {
		return ErrInvalidSeason
	}
	return nil
}
