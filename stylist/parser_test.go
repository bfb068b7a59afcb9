package stylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStructuredResponse(t *testing.T) {
	raw := `{"outfit":{"top":{"name":"Blue Shirt"}},"colorScheme":["#0000FF"],"tips":["wear it casually"],"alternatives":[]}`

	s := Parse(raw)

	require.True(t, s.Structured)
	require.Equal(t, "Blue Shirt", s.Outfit["top"].Name)
	require.Len(t, s.ColorScheme, 1)
	require.Equal(t, "#0000FF", s.ColorScheme[0])
	require.Len(t, s.Tips, 1)
	require.Empty(t, s.Alternatives)
	require.Empty(t, s.RawText)
}

func TestParsePlainTextDegrades(t *testing.T) {
	raw := "I think you should wear something blue."

	s := Parse(raw)

	require.False(t, s.Structured)
	require.Equal(t, raw, s.RawText)
	require.Empty(t, s.Outfit)
	require.Len(t, s.ColorScheme, 0)
	require.Equal(t, []string{raw}, s.Tips)
	require.Len(t, s.Alternatives, 0)
}

// The candidate span runs from the first '{' to the last '}', so a second
// object after the intended one makes the span invalid JSON and the parse
// must degrade rather than error.
func TestParseGreedySpanWithTrailingNoiseDegrades(t *testing.T) {
	raw := `prefix {"outfit":"x"} suffix {"noise":1}`

	s := Parse(raw)

	require.False(t, s.Structured)
	require.Equal(t, raw, s.RawText)
	require.Len(t, s.ColorScheme, 0)
	require.Equal(t, []string{raw}, s.Tips)
	require.Len(t, s.Alternatives, 0)
}

// A clean span whose outfit value is not a slot mapping fails the decode
// and degrades; it never yields a half-structured suggestion.
func TestParseNonMappingOutfitDegrades(t *testing.T) {
	raw := `{"outfit":"x"}`

	s := Parse(raw)

	require.False(t, s.Structured)
	require.Equal(t, raw, s.RawText)
	require.Equal(t, []string{raw}, s.Tips)
}

func TestParseSurroundingProseIsTolerated(t *testing.T) {
	raw := "Sure! Here is your outfit:\n" +
		`{"outfit":{"top":"White Tee","bottom":{"name":"Black Jeans","color":"black"},"shoes":"Sneakers","accessories":["Watch","Belt"]},"colorScheme":["white","black"],"tips":["keep it simple"],"alternatives":[{"top":"Striped Shirt"}]}` +
		"\nEnjoy!"

	s := Parse(raw)

	require.True(t, s.Structured)
	require.Equal(t, "White Tee", s.Outfit["top"].Name)
	require.Equal(t, "Black Jeans", s.Outfit["bottom"].Name)
	require.Equal(t, "black", s.Outfit["bottom"].Color)
	require.Equal(t, "Watch, Belt", s.Outfit["accessories"].Name)
	require.Len(t, s.Alternatives, 1)
	require.Equal(t, "Striped Shirt", s.Alternatives[0]["top"].Name)
}

func TestParseTipsAsBareString(t *testing.T) {
	raw := `{"outfit":{"top":"Polo"},"colorScheme":[],"tips":"tuck it in","alternatives":[]}`

	s := Parse(raw)

	require.True(t, s.Structured)
	require.Equal(t, []string{"tuck it in"}, s.Tips)
}

func TestParseMissingKeysYieldEmptySlices(t *testing.T) {
	raw := `{"outfit":{"top":"Polo"}}`

	s := Parse(raw)

	require.True(t, s.Structured)
	require.NotNil(t, s.ColorScheme)
	require.NotNil(t, s.Tips)
	require.NotNil(t, s.Alternatives)
	require.Len(t, s.ColorScheme, 0)
}

func TestSnapshotCopiesFields(t *testing.T) {
	s := Parse(`{"outfit":{"top":"Polo"},"colorScheme":["navy"],"tips":["roll the sleeves"],"alternatives":[]}`)

	snap := s.Snapshot()

	require.Equal(t, "Polo", snap.Slots["top"].Name)
	require.Equal(t, []string{"navy"}, snap.ColorScheme)
	require.Equal(t, []string{"roll the sleeves"}, snap.Tips)
	require.Empty(t, snap.RawText)
}
