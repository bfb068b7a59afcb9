package stylist

import (
	"strings"
	"testing"

	"github.com/outfitly/outfit-planner/models"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.WardrobeItem {
	return []models.WardrobeItem{
		{Name: "Blue Oxford Shirt", Category: models.CategoryTops, Color: "blue"},
		{Name: "Black Chinos", Category: models.CategoryBottoms, Color: "black"},
		{Name: "White Sneakers", Category: models.CategoryShoes, Color: "white"},
	}
}

func TestBuildOutfitPromptContainsItemsAndOccasion(t *testing.T) {
	prefs := models.UserPreferences{Style: "minimalist"}

	prompt := BuildOutfitPrompt(sampleItems(), prefs, "work")

	require.NotEmpty(t, prompt)
	for _, item := range sampleItems() {
		require.Contains(t, prompt, item.Name)
	}
	require.Contains(t, prompt, "work")
	require.Contains(t, prompt, "minimalist")
	require.Contains(t, prompt, `keys: outfit, colorScheme, tips, alternatives`)
}

func TestBuildOutfitPromptDefaultsStyleToCasual(t *testing.T) {
	prompt := BuildOutfitPrompt(sampleItems(), models.UserPreferences{}, "party")

	require.Contains(t, prompt, "Style preference: casual")
}

func TestBuildOutfitPromptIsDeterministic(t *testing.T) {
	prefs := models.UserPreferences{Style: "classic", FavoriteColors: []string{"navy", "white"}}

	a := BuildOutfitPrompt(sampleItems(), prefs, "date")
	b := BuildOutfitPrompt(sampleItems(), prefs, "date")

	require.Equal(t, a, b)
}

func TestBuildOutfitPromptPreservesItemOrder(t *testing.T) {
	prompt := BuildOutfitPrompt(sampleItems(), models.UserPreferences{}, "casual")

	first := strings.Index(prompt, "Blue Oxford Shirt")
	second := strings.Index(prompt, "Black Chinos")
	third := strings.Index(prompt, "White Sneakers")
	require.True(t, first < second && second < third)
}

func TestBuildAccessoryAdvicePromptFallbacks(t *testing.T) {
	outfit := models.SlotMap{"top": {Name: "Linen Shirt"}}

	prompt := BuildAccessoryAdvicePrompt(outfit, "wedding", "classic")

	require.Contains(t, prompt, "Linen Shirt")
	require.Contains(t, prompt, "jeans")    // missing bottom falls back
	require.Contains(t, prompt, "sneakers") // missing shoes falls back
	require.Contains(t, prompt, "wedding")
}
