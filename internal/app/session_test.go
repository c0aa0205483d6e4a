package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/prompt"
)

// newTestSession строит сессию с mock-провайдером и счётчиком вызовов.
func newTestSession(t *testing.T, respond func(req llm.BriefRequest) (string, error)) (*Session, *int) {
	t.Helper()

	calls := 0
	factory := func(apiKey string) (llm.Provider, error) {
		return llm.ProviderFunc(func(_ context.Context, req llm.BriefRequest) (string, error) {
			calls++
			return respond(req)
		}), nil
	}

	s, err := NewSession(config.Default(), factory)
	require.NoError(t, err)
	return s, &calls
}

func TestSubmitCredential(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantErr   error
		wantReady bool
	}{
		{name: "valid key", raw: "abc123", wantReady: true},
		{name: "key with whitespace trimmed", raw: "  abc123  ", wantReady: true},
		{name: "empty key", raw: "", wantErr: ErrEmptyCredential},
		{name: "whitespace only key", raw: "   \t ", wantErr: ErrEmptyCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, func(llm.BriefRequest) (string, error) { return "ok", nil })

			err := s.SubmitCredential(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantReady, s.Ready())
		})
	}
}

func TestGenerateRequiresCredential(t *testing.T) {
	s, calls := newTestSession(t, func(llm.BriefRequest) (string, error) { return "ok", nil })

	_, err := s.Generate(context.Background(), "a recipe sharing app", "", "")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Equal(t, 0, *calls, "no remote call must be made without a client")
}

func TestGenerateRejectsEmptyIdea(t *testing.T) {
	s, calls := newTestSession(t, func(llm.BriefRequest) (string, error) { return "ok", nil })
	require.NoError(t, s.SubmitCredential("abc123"))

	for _, idea := range []string{"", "   ", "\n\t"} {
		_, err := s.Generate(context.Background(), idea, "f", "a")
		assert.ErrorIs(t, err, ErrEmptyIdea)
	}
	assert.Equal(t, 0, *calls, "no remote call must be made for an empty idea")
}

func TestGenerateBuildsRequest(t *testing.T) {
	var captured llm.BriefRequest
	s, calls := newTestSession(t, func(req llm.BriefRequest) (string, error) {
		captured = req
		return "### 1. App Overview\n...", nil
	})
	require.NoError(t, s.SubmitCredential("abc123"))

	brief, err := s.Generate(context.Background(), "a recipe sharing app", "", "home cooks")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "### 1. App Overview\n...", brief)

	assert.Equal(t, prompt.SystemInstruction, captured.SystemInstruction)
	assert.Contains(t, captured.UserPrompt, "App Idea: a recipe sharing app")
	assert.Contains(t, captured.UserPrompt, "Key Features to Include: "+prompt.PlaceholderFeatures)
	assert.Contains(t, captured.UserPrompt, "Target Audience: home cooks")
}

func TestGenerateStoresLastBrief(t *testing.T) {
	s, _ := newTestSession(t, func(llm.BriefRequest) (string, error) {
		return "```markdown\n# Brief\n```", nil
	})
	require.NoError(t, s.SubmitCredential("abc123"))

	_, ok := s.LastBrief()
	assert.False(t, ok, "no brief before first generation")

	brief, err := s.Generate(context.Background(), "idea", "", "")
	require.NoError(t, err)
	assert.Equal(t, "# Brief", brief, "fence wrapper must be stripped")

	last, ok := s.LastBrief()
	assert.True(t, ok)
	assert.Equal(t, "# Brief", last)
}

func TestGenerateFailureKeepsPreviousBrief(t *testing.T) {
	fail := false
	s, _ := newTestSession(t, func(llm.BriefRequest) (string, error) {
		if fail {
			return "", errors.New("quota exceeded")
		}
		return "# First", nil
	})
	require.NoError(t, s.SubmitCredential("abc123"))

	_, err := s.Generate(context.Background(), "idea", "", "")
	require.NoError(t, err)

	fail = true
	_, err = s.Generate(context.Background(), "idea", "", "")
	assert.EqualError(t, err, "quota exceeded")

	last, ok := s.LastBrief()
	assert.True(t, ok)
	assert.Equal(t, "# First", last, "failed generation must not clobber the last brief")
}

func TestExportHTML(t *testing.T) {
	s, _ := newTestSession(t, func(llm.BriefRequest) (string, error) {
		return "### 1. App Overview\n\nA recipe app.", nil
	})

	// Без брифа экспорт — ошибка
	_, err := s.ExportHTML()
	assert.ErrorIs(t, err, ErrNoBrief)

	require.NoError(t, s.SubmitCredential("abc123"))
	_, err = s.Generate(context.Background(), "idea", "", "")
	require.NoError(t, err)

	s.cfg.App.ExportDir = t.TempDir()
	path, err := s.ExportHTML()
	require.NoError(t, err)
	assert.Equal(t, s.cfg.App.ExportDir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.Contains(html, "<h3>1. App Overview</h3>"), "exported page must contain rendered brief")
	assert.True(t, strings.Contains(html, "<!DOCTYPE html>"))
}
