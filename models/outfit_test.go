package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutfitItemRefFromString(t *testing.T) {
	var ref OutfitItemRef
	require.NoError(t, json.Unmarshal([]byte(`"Blue Shirt"`), &ref))
	require.Equal(t, "Blue Shirt", ref.Name)
}

func TestOutfitItemRefFromObject(t *testing.T) {
	var ref OutfitItemRef
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Black Jeans","color":"black","brand":"Levi's"}`), &ref))
	require.Equal(t, "Black Jeans", ref.Name)
	require.Equal(t, "black", ref.Color)
	require.Equal(t, "Levi's", ref.Brand)
}

func TestOutfitItemRefFromArrayCollapsesNames(t *testing.T) {
	var ref OutfitItemRef
	require.NoError(t, json.Unmarshal([]byte(`["Watch",{"name":"Leather Belt"}]`), &ref))
	require.Equal(t, "Watch, Leather Belt", ref.Name)
}

func TestWardrobeItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    WardrobeItem
		wantErr error
	}{
		{"valid", WardrobeItem{Name: "Tee", Category: CategoryTops}, nil},
		{"empty season ok", WardrobeItem{Name: "Tee", Category: CategoryTops, Season: ""}, nil},
		{"bad category", WardrobeItem{Name: "Tee", Category: "hats"}, ErrInvalidCategory},
		{"bad season", WardrobeItem{Name: "Tee", Category: CategoryTops, Season: "monsoon"}, ErrInvalidSeason},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
