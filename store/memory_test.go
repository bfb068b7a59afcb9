package store

import (
	"context"
	"testing"

	"github.com/outfitly/outfit-planner/models"
	"github.com/stretchr/testify/require"
)

func validItem(userID string) models.WardrobeItem {
	return models.WardrobeItem{
		UserID:   userID,
		Name:     "Blue Oxford Shirt",
		Category: models.CategoryTops,
		Color:    "blue",
		Season:   models.SeasonAllSeason,
	}
}

func TestWardrobeAddRejectsInvalidCategory(t *testing.T) {
	s := NewMemoryWardrobe()
	item := validItem("user-1")
	item.Category = "hats"

	_, err := s.Add(context.Background(), item)

	require.ErrorIs(t, err, models.ErrInvalidCategory)

	items, listErr := s.List(context.Background(), "user-1", models.WardrobeFilter{})
	require.NoError(t, listErr)
	require.Empty(t, items, "an invalid item must never be stored")
}

func TestWardrobeAddAssignsIDAndTimestamps(t *testing.T) {
	s := NewMemoryWardrobe()

	saved, err := s.Add(context.Background(), validItem("user-1"))

	require.NoError(t, err)
	require.False(t, saved.ID.IsZero())
	require.False(t, saved.CreatedAt.IsZero())
	require.Equal(t, "user-1", saved.UserID)
}

func TestWardrobeListFiltersAndScopesByUser(t *testing.T) {
	s := NewMemoryWardrobe()
	ctx := context.Background()

	_, err := s.Add(ctx, validItem("user-1"))
	require.NoError(t, err)

	jeans := validItem("user-1")
	jeans.Name = "Black Jeans"
	jeans.Category = models.CategoryBottoms
	_, err = s.Add(ctx, jeans)
	require.NoError(t, err)

	other := validItem("user-2")
	_, err = s.Add(ctx, other)
	require.NoError(t, err)

	all, err := s.List(ctx, "user-1", models.WardrobeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	tops, err := s.List(ctx, "user-1", models.WardrobeFilter{Category: models.CategoryTops})
	require.NoError(t, err)
	require.Len(t, tops, 1)
	require.Equal(t, "Blue Oxford Shirt", tops[0].Name)
}

func TestWardrobeUpdateAppliesOnlySetFields(t *testing.T) {
	s := NewMemoryWardrobe()
	ctx := context.Background()
	saved, err := s.Add(ctx, validItem("user-1"))
	require.NoError(t, err)

	newColor := "navy"
	require.NoError(t, s.Update(ctx, saved.ID.Hex(), models.WardrobeItemPatch{Color: &newColor}))

	got, err := s.Get(ctx, saved.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "navy", got.Color)
	require.Equal(t, "Blue Oxford Shirt", got.Name, "unset patch fields stay untouched")
	require.Equal(t, "user-1", got.UserID, "userId is immutable")
}

func TestWardrobeUpdateRejectsInvalidCategory(t *testing.T) {
	s := NewMemoryWardrobe()
	ctx := context.Background()
	saved, err := s.Add(ctx, validItem("user-1"))
	require.NoError(t, err)

	bad := models.ClothingCategory("hats")
	err = s.Update(ctx, saved.ID.Hex(), models.WardrobeItemPatch{Category: &bad})

	require.ErrorIs(t, err, models.ErrInvalidCategory)
}

func TestWardrobeDeleteIsIdempotent(t *testing.T) {
	s := NewMemoryWardrobe()
	ctx := context.Background()
	saved, err := s.Add(ctx, validItem("user-1"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, saved.ID.Hex()))
	require.NoError(t, s.Delete(ctx, saved.ID.Hex()), "deleting a missing id is not an error")
}

func TestPreferencesSaveUpsertsAndMerges(t *testing.T) {
	s := NewMemoryPreferences()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "user-1", models.UserPreferences{Style: "classic", FavoriteColors: []string{"navy"}}))
	require.NoError(t, s.Save(ctx, "user-1", models.UserPreferences{Style: "streetwear"}))

	got, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "streetwear", got.Style, "the latest style wins")
	require.Equal(t, []string{"navy"}, got.FavoriteColors, "untouched fields survive the merge")
}

func TestPreferencesGetMissingReturnsNil(t *testing.T) {
	s := NewMemoryPreferences()

	got, err := s.Get(context.Background(), "nobody")

	require.NoError(t, err)
	require.Nil(t, got)
}

func TestOutfitSaveNeverDedups(t *testing.T) {
	s := NewMemoryOutfits()
	ctx := context.Background()
	outfit := models.SavedOutfit{
		Outfit:   models.OutfitSnapshot{Slots: models.SlotMap{"top": {Name: "Polo"}}},
		Occasion: "work",
	}

	first, err := s.Save(ctx, "user-1", outfit)
	require.NoError(t, err)
	second, err := s.Save(ctx, "user-1", outfit)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestOutfitSaveStartsCountersAtZero(t *testing.T) {
	s := NewMemoryOutfits()

	saved, err := s.Save(context.Background(), "user-1", models.SavedOutfit{
		Outfit:    models.OutfitSnapshot{RawText: "wear blue"},
		TimesWorn: 7, // ignored: counters are owned by the store
	})

	require.NoError(t, err)
	require.Equal(t, 0, saved.TimesWorn)
	require.Nil(t, saved.LastWorn)
}

func TestOutfitSaveRejectsOutOfRangeRating(t *testing.T) {
	s := NewMemoryOutfits()

	_, err := s.Save(context.Background(), "user-1", models.SavedOutfit{Rating: 6})

	require.Error(t, err)
}

func TestIncrementWornBumpsByOneAndStampsLastWorn(t *testing.T) {
	s := NewMemoryOutfits()
	ctx := context.Background()
	saved, err := s.Save(ctx, "user-1", models.SavedOutfit{Outfit: models.OutfitSnapshot{RawText: "x"}})
	require.NoError(t, err)

	require.NoError(t, s.IncrementWorn(ctx, "user-1", saved.ID.Hex()))

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, list[0].TimesWorn)
	require.NotNil(t, list[0].LastWorn)
}

func TestIncrementWornMissingIDFails(t *testing.T) {
	s := NewMemoryOutfits()

	err := s.IncrementWorn(context.Background(), "user-1", "64f000000000000000000000")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestIncrementWornForeignUserIDLooksMissing(t *testing.T) {
	s := NewMemoryOutfits()
	ctx := context.Background()
	saved, err := s.Save(ctx, "user-1", models.SavedOutfit{Outfit: models.OutfitSnapshot{RawText: "x"}})
	require.NoError(t, err)

	err = s.IncrementWorn(ctx, "user-2", saved.ID.Hex())

	require.ErrorIs(t, err, ErrNotFound)

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 0, list[0].TimesWorn, "a foreign caller must not touch the counter")
}

func TestOutfitDeleteIsIdempotent(t *testing.T) {
	s := NewMemoryOutfits()
	ctx := context.Background()
	saved, err := s.Save(ctx, "user-1", models.SavedOutfit{Outfit: models.OutfitSnapshot{RawText: "x"}})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "user-1", saved.ID.Hex()))
	require.NoError(t, s.Delete(ctx, "user-1", saved.ID.Hex()))

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestOutfitDeleteScopedToOwner(t *testing.T) {
	s := NewMemoryOutfits()
	ctx := context.Background()
	saved, err := s.Save(ctx, "user-1", models.SavedOutfit{Outfit: models.OutfitSnapshot{RawText: "x"}})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "user-2", saved.ID.Hex()), "foreign delete is a no-op, not an error")

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1, "the owner's record survives a foreign delete")
}

func TestOutfitListPreservesInsertionOrder(t *testing.T) {
	s := NewMemoryOutfits()
	ctx := context.Background()

	for _, occasion := range []string{"work", "party", "date"} {
		_, err := s.Save(ctx, "user-1", models.SavedOutfit{
			Outfit:   models.OutfitSnapshot{RawText: occasion},
			Occasion: occasion,
		})
		require.NoError(t, err)
	}

	list, err := s.List(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"work", "party", "date"}, []string{list[0].Occasion, list[1].Occasion, list[2].Occasion})
}
