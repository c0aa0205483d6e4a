// Package gemini реализует адаптер LLM провайдера для Google Gemini API.
//
// В отличие от OpenAI-совместимых API, системный шаблон передаётся через
// GenerateContentConfig.SystemInstruction, а не отдельным сообщением.
package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/utils"
	"google.golang.org/genai"
)

// Client реализует интерфейс llm.Provider поверх google.golang.org/genai.
type Client struct {
	api   *genai.Client
	model string
}

// NewClient создает Gemini клиент с переданным credential.
//
// Конструктор не делает сетевых вызовов: невалидный ключ проявится
// только при первом Generate.
func NewClient(ctx context.Context, modelDef config.ModelDef, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		api:   client,
		model: modelDef.ModelName,
	}, nil
}

// Generate выполняет запрос к Gemini API и возвращает текст ответа.
func (c *Client) Generate(ctx context.Context, req llm.BriefRequest) (string, error) {
	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = c.model
	}

	utils.Debug("LLM request started",
		"provider", "gemini",
		"model", model,
		"prompt_length", len(req.UserPrompt))

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.UserPrompt}},
		},
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		},
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		genCfg.Temperature = &temp
	}
	if req.MaxTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := c.api.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"model", model,
			"duration_ms", time.Since(startTime).Milliseconds())
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	// Извлекаем текст первого кандидата
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no parts in gemini response")
	}

	text := candidate.Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("gemini response did not include any output text")
	}

	utils.Info("LLM response received",
		"model", model,
		"content_length", len(text),
		"duration_ms", time.Since(startTime).Milliseconds())

	return text, nil
}
