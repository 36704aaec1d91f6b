package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockGenerator is a mock implementation of the MessageGenerator interface.
type mockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return m.GenerateFunc(ctx, prompt)
}

// mockLimiter records whether the rate limiter gate was consulted.
type mockLimiter struct {
	waited int
}

func (m *mockLimiter) WaitIfNeeded() { m.waited++ }

func TestOutreachUsecase_GenerateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("successful generation", func(t *testing.T) {
		var gotPrompt string
		gen := &mockGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				gotPrompt = prompt
				return "Dear Dr. Rugare, ...", nil
			},
		}
		limiter := &mockLimiter{}

		uc := NewOutreachUsecase(gen, limiter)
		message, err := uc.GenerateMessage(ctx, "Dr. Chipo Rugare", "Head of IRO", "UNICEF Zimbabwe")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if message != "Dear Dr. Rugare, ..." {
			t.Errorf("unexpected message: %s", message)
		}
		if !strings.Contains(gotPrompt, "Dr. Chipo Rugare") || !strings.Contains(gotPrompt, "UNICEF Zimbabwe") {
			t.Errorf("prompt must carry the alumni details: %s", gotPrompt)
		}
		if limiter.waited != 1 {
			t.Errorf("rate limiter must gate each generation, waited %d times", limiter.waited)
		}
	})

	t.Run("generation error falls back to the canned message", func(t *testing.T) {
		gen := &mockGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		uc := NewOutreachUsecase(gen, nil)
		message, err := uc.GenerateMessage(ctx, "Gift Zulu", "Manager", "Antelope Park")

		if err != nil {
			t.Fatalf("fallback must not surface as an error: %v", err)
		}
		if !strings.Contains(message, "Gift Zulu") || !strings.Contains(message, "Antelope Park") {
			t.Errorf("fallback must mention the alumni and company: %s", message)
		}
	})

	t.Run("empty generation falls back", func(t *testing.T) {
		gen := &mockGenerator{
			GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", nil
			},
		}

		uc := NewOutreachUsecase(gen, nil)
		message, err := uc.GenerateMessage(ctx, "Gift Zulu", "Manager", "Antelope Park")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if message == "" {
			t.Error("fallback message must not be empty")
		}
	})

	t.Run("nil generator uses the canned message without waiting", func(t *testing.T) {
		limiter := &mockLimiter{}
		uc := NewOutreachUsecase(nil, limiter)

		message, err := uc.GenerateMessage(ctx, "Gift Zulu", "Manager", "Antelope Park")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if message == "" {
			t.Error("fallback message must not be empty")
		}
		if limiter.waited != 0 {
			t.Error("no generator, no rate limiter wait")
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := NewOutreachUsecase(nil, nil)

		tests := []struct {
			name    string
			alumni  string
			role    string
			company string
		}{
			{"empty alumni name", "", "Manager", "Antelope Park"},
			{"empty role", "Gift Zulu", "", "Antelope Park"},
			{"empty company", "Gift Zulu", "Manager", ""},
			{"over-long field", strings.Repeat("a", MaxFieldLength+1), "Manager", "Antelope Park"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := uc.GenerateMessage(ctx, tt.alumni, tt.role, tt.company); err == nil {
					t.Error("expected error but got nil")
				}
			})
		}
	})
}
