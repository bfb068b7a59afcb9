package stylist

import (
	"fmt"
	"strings"

	"github.com/outfitly/outfit-planner/models"
)

// DefaultStyle is assumed when the user never saved a style preference.
const DefaultStyle = "casual"

// BuildOutfitPrompt turns the user's wardrobe, preferences and occasion
// into a single styling instruction for the model. Pure and deterministic:
// items are listed in the order given, nothing is shuffled here. Callers
// must not invoke it with an empty wardrobe; the service short-circuits
// that case before building a prompt.
func BuildOutfitPrompt(items []models.WardrobeItem, prefs models.UserPreferences, occasion string) string {
	entries := make([]string, 0, len(items))
	for _, item := range items {
		entries = append(entries, fmt.Sprintf("%s: %s (%s)", item.Category, item.Name, item.Color))
	}
	itemList := strings.Join(entries, ", ")

	style := prefs.Style
	if style == "" {
		style = DefaultStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are a professional fashion stylist. Based on the following:
    Available wardrobe items: %s
    Style preference: %s
    Occasion: %s
`, itemList, style, occasion)

	if len(prefs.FavoriteColors) > 0 {
		fmt.Fprintf(&b, "    Favorite colors: %s\n", strings.Join(prefs.FavoriteColors, ", "))
	}
	if prefs.Formality != "" {
		fmt.Fprintf(&b, "    Formality: %s\n", prefs.Formality)
	}
	if prefs.WeatherPreference != "" {
		fmt.Fprintf(&b, "    Weather preference: %s\n", prefs.WeatherPreference)
	}

	fmt.Fprintf(&b, `
    Suggest the best complete outfit combination using only the wardrobe items listed above. Include:
    1. Specific items for top, bottom, shoes, and accessories
    2. Color coordination explanation
    3. Why this combination works for the %s occasion
    4. Styling tips and suggestions
    5. Alternative variations if items are similar

    Format your response as JSON with keys: outfit, colorScheme, tips, alternatives`, occasion)

	return b.String()
}

// BuildColorAdvicePrompt asks for tips on combining the given colors in
// the given style.
func BuildColorAdvicePrompt(colors []string, style string) string {
	return fmt.Sprintf(`Given these colors: %s and style preference: %s,
    provide 5 specific fashion tips for combining these colors effectively. Include color psychology and trendy combinations.`,
		strings.Join(colors, ", "), style)
}

// BuildAccessoryAdvicePrompt asks for accessories complementing an outfit.
// Missing slots fall back to generic garment names.
func BuildAccessoryAdvicePrompt(outfit models.SlotMap, occasion, style string) string {
	return fmt.Sprintf(`For a %s event with %s style preference, and given these outfit items:
    Top: %s,
    Bottom: %s,
    Shoes: %s,
    Please suggest 3-5 specific accessories that would complement this outfit. Include why each accessory works.`,
		occasion, style,
		slotName(outfit, "top", "casual top"),
		slotName(outfit, "bottom", "jeans"),
		slotName(outfit, "shoes", "sneakers"))
}

// BuildLayeringPrompt asks for weather-appropriate layering tips.
func BuildLayeringPrompt(outfit models.SlotMap, weather string) string {
	return fmt.Sprintf(`For %s weather and the following outfit items:
    Top: %s,
    Bottom: %s,
    Shoes: %s,
    Provide 3-4 specific layering tips to make this outfit weather-appropriate and stylish.`,
		weather,
		slotName(outfit, "top", "shirt"),
		slotName(outfit, "bottom", "pants"),
		slotName(outfit, "shoes", "shoes"))
}

func slotName(outfit models.SlotMap, slot, fallback string) string {
	if ref, ok := outfit[slot]; ok && ref.Name != "" {
		return ref.Name
	}
	return fallback
}
