package stylist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/store"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyWardrobe is returned when a user asks for a suggestion before
// cataloging any clothes. No AI call is made in that case.
var ErrEmptyWardrobe = errors.New("wardrobe is empty")

// ErrAIUnavailable wraps transport failures, timeouts and empty responses
// from the text-generation provider.
var ErrAIUnavailable = errors.New("ai provider unavailable")

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 30 * time.Second

// Service orchestrates prompt construction, the external AI call and
// response parsing. Generate mutates no local state; persisting a result
// is a separate, explicit OutfitStore call by the caller.
type Service struct {
	Wardrobe    store.WardrobeStore
	Preferences store.PreferencesStore
	Generator   TextGenerator

	// Timeout bounds one generation call; DefaultTimeout when zero.
	Timeout time.Duration
	// MaxAttempts is the number of generation calls before giving up.
	// Zero or one means a single fire-and-forget call; retries are the
	// caller's opt-in, not the default.
	MaxAttempts int
	// Backoff is the pause between attempts when MaxAttempts > 1.
	Backoff time.Duration
}

func NewService(wardrobe store.WardrobeStore, prefs store.PreferencesStore, gen TextGenerator) *Service {
	return &Service{Wardrobe: wardrobe, Preferences: prefs, Generator: gen}
}

// Generate produces an outfit suggestion for the user's occasion.
//
// Two calls with identical inputs are not guaranteed to return the same
// suggestion; the model is non-deterministic and that is expected.
func (s *Service) Generate(ctx context.Context, userID, occasion string) (Suggestion, error) {
	var (
		items []models.WardrobeItem
		prefs models.UserPreferences
	)

	// Wardrobe and preferences are independent reads; fetch them in
	// parallel and join before building the prompt.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.Wardrobe.List(gctx, userID, models.WardrobeFilter{})
		return err
	})
	g.Go(func() error {
		p, err := s.Preferences.Get(gctx, userID)
		if err != nil {
			return err
		}
		if p != nil {
			prefs = *p
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Suggestion{}, fmt.Errorf("failed to load user state: %w", err)
	}

	if len(items) == 0 {
		return Suggestion{}, ErrEmptyWardrobe
	}

	prompt := BuildOutfitPrompt(items, prefs, occasion)

	text, err := s.generateWithRetry(ctx, prompt)
	if err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	return Parse(text), nil
}

// ColorAdvice asks for tips on combining the given colors in the given
// style. The response is free text by design; no JSON is requested.
func (s *Service) ColorAdvice(ctx context.Context, colors []string, style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	text, err := s.generateWithRetry(ctx, BuildColorAdvicePrompt(colors, style))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	return text, nil
}

// AccessoryAdvice asks for accessories complementing the given outfit.
func (s *Service) AccessoryAdvice(ctx context.Context, outfit models.SlotMap, occasion, style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	text, err := s.generateWithRetry(ctx, BuildAccessoryAdvicePrompt(outfit, occasion, style))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	return text, nil
}

// LayeringTips asks for weather-appropriate layering of the given outfit.
func (s *Service) LayeringTips(ctx context.Context, outfit models.SlotMap, weather string) (string, error) {
	text, err := s.generateWithRetry(ctx, BuildLayeringPrompt(outfit, weather))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	return text, nil
}

func (s *Service) generateWithRetry(ctx context.Context, prompt string) (string, error) {
	attempts := s.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 && s.Backoff > 0 {
			select {
			case <-time.After(s.Backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		text, err := s.Generator.GenerateText(callCtx, prompt)
		cancel()
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", lastErr
}
