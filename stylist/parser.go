package stylist

import (
	"encoding/json"
	"strings"

	"github.com/outfitly/outfit-planner/models"
)

// Suggestion is the result of one generation call. Structured reports
// which arm of the union is populated: when true the model followed the
// requested JSON format and Outfit holds the slot mapping; when false the
// whole response is kept verbatim in RawText and mirrored into Tips so
// there is always something displayable. A degraded suggestion is a valid
// value, not an error.
type Suggestion struct {
	Structured   bool             `json:"structured"`
	Outfit       models.SlotMap   `json:"outfit,omitempty"`
	RawText      string           `json:"rawText,omitempty"`
	ColorScheme  []string         `json:"colorScheme"`
	Tips         []string         `json:"tips"`
	Alternatives []models.SlotMap `json:"alternatives"`
}

// rawSuggestion mirrors the JSON shape requested from the model.
type rawSuggestion struct {
	Outfit       models.SlotMap   `json:"outfit"`
	ColorScheme  flexStrings      `json:"colorScheme"`
	Tips         flexStrings      `json:"tips"`
	Alternatives []models.SlotMap `json:"alternatives"`
}

// flexStrings accepts either a JSON array of strings or a bare string,
// which the model produces often enough to matter.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexStrings{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*f = flexStrings(items)
	return nil
}

// Parse extracts a structured suggestion from the model's free-text
// response. The candidate span runs from the first '{' to the last '}' in
// the text, matching the greedy extraction the prompt format was designed
// around. If no span exists or it fails to decode, Parse degrades: the raw
// text becomes the outfit and the single tip. Parse never fails.
//
// Extraneous braces outside the intended object make the greedy span
// invalid JSON and push the result down the degraded path; that sharp
// edge is deliberate and covered by tests. Likewise a span whose outfit
// value is not a slot mapping (e.g. a bare string) fails the decode and
// degrades rather than producing a half-structured result.
func Parse(text string) Suggestion {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var raw rawSuggestion
		if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err == nil {
			s := Suggestion{
				Structured:   true,
				Outfit:       raw.Outfit,
				ColorScheme:  raw.ColorScheme,
				Tips:         raw.Tips,
				Alternatives: raw.Alternatives,
			}
			if s.ColorScheme == nil {
				s.ColorScheme = []string{}
			}
			if s.Tips == nil {
				s.Tips = []string{}
			}
			if s.Alternatives == nil {
				s.Alternatives = []models.SlotMap{}
			}
			return s
		}
	}

	return Suggestion{
		Structured:   false,
		RawText:      text,
		ColorScheme:  []string{},
		Tips:         []string{text},
		Alternatives: []models.SlotMap{},
	}
}

// Snapshot converts the suggestion into the value copy persisted with a
// saved outfit.
func (s Suggestion) Snapshot() models.OutfitSnapshot {
	return models.OutfitSnapshot{
		Slots:       s.Outfit,
		RawText:     s.RawText,
		ColorScheme: s.ColorScheme,
		Tips:        s.Tips,
	}
}
