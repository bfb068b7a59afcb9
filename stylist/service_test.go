package stylist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/store"
	"github.com/stretchr/testify/require"
)

// fakeGenerator counts calls, records prompts and replays canned responses.
type fakeGenerator struct {
	calls     int
	prompts   []string
	responses []string
	errs      []error
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	idx := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", errors.New("no canned response")
}

func newTestService(gen TextGenerator) (*Service, *store.MemoryWardrobe, *store.MemoryPreferences) {
	wardrobe := store.NewMemoryWardrobe()
	prefs := store.NewMemoryPreferences()
	return NewService(wardrobe, prefs, gen), wardrobe, prefs
}

func addItem(t *testing.T, wardrobe *store.MemoryWardrobe, userID, name string, category models.ClothingCategory) {
	t.Helper()
	_, err := wardrobe.Add(context.Background(), models.WardrobeItem{
		UserID:   userID,
		Name:     name,
		Category: category,
		Color:    "blue",
	})
	require.NoError(t, err)
}

func TestGenerateEmptyWardrobeSkipsAICall(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _ := newTestService(gen)

	_, err := svc.Generate(context.Background(), "user-1", "party")

	require.ErrorIs(t, err, ErrEmptyWardrobe)
	require.Equal(t, 0, gen.calls, "no network call may happen for an empty wardrobe")
}

func TestGenerateReturnsParsedSuggestion(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		`{"outfit":{"top":{"name":"Blue Shirt"}},"colorScheme":["#0000FF"],"tips":["wear it casually"],"alternatives":[]}`,
	}}
	svc, wardrobe, prefs := newTestService(gen)
	addItem(t, wardrobe, "user-1", "Blue Shirt", models.CategoryTops)
	require.NoError(t, prefs.Save(context.Background(), "user-1", models.UserPreferences{Style: "classic"}))

	s, err := svc.Generate(context.Background(), "user-1", "work")

	require.NoError(t, err)
	require.True(t, s.Structured)
	require.Equal(t, "Blue Shirt", s.Outfit["top"].Name)
	require.Equal(t, 1, gen.calls)
}

func TestGenerateDegradedResponseIsNotAnError(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"wear something blue"}}
	svc, wardrobe, _ := newTestService(gen)
	addItem(t, wardrobe, "user-1", "Blue Shirt", models.CategoryTops)

	s, err := svc.Generate(context.Background(), "user-1", "work")

	require.NoError(t, err)
	require.False(t, s.Structured)
	require.Equal(t, "wear something blue", s.RawText)
	require.Equal(t, []string{"wear something blue"}, s.Tips)
}

func TestGenerateTransportFailureIsAIUnavailable(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("connection refused")}}
	svc, wardrobe, _ := newTestService(gen)
	addItem(t, wardrobe, "user-1", "Blue Shirt", models.CategoryTops)

	_, err := svc.Generate(context.Background(), "user-1", "work")

	require.ErrorIs(t, err, ErrAIUnavailable)
	require.Equal(t, 1, gen.calls, "a single attempt is the default; retries are opt-in")
}

func TestGenerateRetriesWhenConfigured(t *testing.T) {
	gen := &fakeGenerator{
		errs:      []error{errors.New("flaky"), errors.New("flaky"), nil},
		responses: []string{"", "", `{"outfit":{"top":"Polo"}}`},
	}
	svc, wardrobe, _ := newTestService(gen)
	svc.MaxAttempts = 3
	svc.Backoff = time.Millisecond
	addItem(t, wardrobe, "user-1", "Polo", models.CategoryTops)

	s, err := svc.Generate(context.Background(), "user-1", "work")

	require.NoError(t, err)
	require.True(t, s.Structured)
	require.Equal(t, 3, gen.calls)
}

func TestColorAdviceDefaultsStyleAndReturnsText(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"pair navy with white for contrast"}}
	svc, _, _ := newTestService(gen)

	advice, err := svc.ColorAdvice(context.Background(), []string{"navy", "white"}, "")

	require.NoError(t, err)
	require.Equal(t, "pair navy with white for contrast", advice)
	require.Equal(t, 1, gen.calls)
	require.Contains(t, gen.prompts[0], "navy, white")
	require.Contains(t, gen.prompts[0], "casual", "missing style falls back to the default")
}

func TestAccessoryAdviceUsesOutfitSlots(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"add a leather belt"}}
	svc, _, _ := newTestService(gen)
	outfit := models.SlotMap{"top": {Name: "Linen Shirt"}}

	advice, err := svc.AccessoryAdvice(context.Background(), outfit, "wedding", "classic")

	require.NoError(t, err)
	require.Equal(t, "add a leather belt", advice)
	require.Contains(t, gen.prompts[0], "Linen Shirt")
	require.Contains(t, gen.prompts[0], "wedding")
}

func TestLayeringTipsFailureIsAIUnavailable(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("connection refused")}}
	svc, _, _ := newTestService(gen)

	_, err := svc.LayeringTips(context.Background(), models.SlotMap{}, "rainy")

	require.ErrorIs(t, err, ErrAIUnavailable)
	require.Equal(t, 1, gen.calls)
}

func TestGenerateStopsOnCancelledContext(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("flaky"), errors.New("flaky")}}
	svc, wardrobe, _ := newTestService(gen)
	svc.MaxAttempts = 5
	svc.Backoff = 50 * time.Millisecond
	addItem(t, wardrobe, "user-1", "Polo", models.CategoryTops)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := svc.Generate(ctx, "user-1", "work")

	require.Error(t, err)
	require.Less(t, gen.calls, 5)
}
