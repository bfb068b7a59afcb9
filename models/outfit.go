package models

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutfitItemRef is an informal reference to a wardrobe item as named by the
// styling model. It is matched by name, not guaranteed to resolve to a real
// WardrobeItem id.
type OutfitItemRef struct {
	Name  string `bson:"name" json:"name"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
	Brand string `bson:"brand,omitempty" json:"brand,omitempty"`
}

// UnmarshalJSON tolerates the shapes the model actually produces for a
// slot: a plain string, an object with a name, or an array of either
// (e.g. several accessories), which is collapsed into one reference.
func (r *OutfitItemRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		r.Name = s
		return nil
	case '[':
		var items []OutfitItemRef
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		names := make([]string, 0, len(items))
		for _, it := range items {
			if it.Name != "" {
				names = append(names, it.Name)
			}
		}
		r.Name = strings.Join(names, ", ")
		return nil
	default:
		type plain OutfitItemRef
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*r = OutfitItemRef(p)
		return nil
	}
}

// SlotMap maps an outfit slot (top, bottom, shoes, accessories, optionally
// dress or outerwear) to an item reference.
type SlotMap map[string]OutfitItemRef

// OutfitSnapshot is the value copy of an outfit embedded in a SavedOutfit
// at save time. Later edits to the referenced wardrobe items do not change
// the snapshot.
type OutfitSnapshot struct {
	Slots       SlotMap  `bson:"slots,omitempty" json:"slots,omitempty"`
	RawText     string   `bson:"rawText,omitempty" json:"rawText,omitempty"` // set when the suggestion was a degraded parse
	ColorScheme []string `bson:"colorScheme,omitempty" json:"colorScheme,omitempty"`
	Tips        []string `bson:"tips,omitempty" json:"tips,omitempty"`
}

// SavedOutfit is a persisted, user-confirmed outfit with usage tracking.
type SavedOutfit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Outfit     OutfitSnapshot     `bson:"outfit" json:"outfit"`
	Occasion   string             `bson:"occasion,omitempty" json:"occasion,omitempty"`
	Style      string             `bson:"style,omitempty" json:"style,omitempty"`
	IsFavorite bool               `bson:"isFavorite" json:"isFavorite"`
	Rating     int                `bson:"rating" json:"rating"` // 0-5
	Notes      string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TimesWorn  int                `bson:"timesWorn" json:"timesWorn"`
	LastWorn   *time.Time         `bson:"lastWorn,omitempty" json:"lastWorn,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
