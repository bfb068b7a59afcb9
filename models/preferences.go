package models

import "time"

// UserPreferences holds a user's style settings, one record per user.
// Created lazily on first save; later saves merge into the same record.
type UserPreferences struct {
	UserID            string            `bson:"userId" json:"userId"`
	Style             string            `bson:"style,omitempty" json:"style,omitempty"`
	FavoriteColors    []string          `bson:"favoriteColors,omitempty" json:"favoriteColors,omitempty"`
	Sizes             map[string]string `bson:"sizes,omitempty" json:"sizes,omitempty"` // garment slot -> size, e.g. "top": "M"
	WeatherPreference string            `bson:"weatherPreference,omitempty" json:"weatherPreference,omitempty"`
	Formality         string            `bson:"formality,omitempty" json:"formality,omitempty"`
	CreatedAt         time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt         time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
