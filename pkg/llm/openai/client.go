// Package openai реализует адаптер LLM провайдера для OpenAI-совместимых API.
//
// Поддерживает custom BaseURL, поэтому через него работают также
// Zai, DeepSeek и другие совместимые сервисы.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
)

// Client реализует интерфейс llm.Provider для OpenAI-совместимых API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient создает OpenAI клиент на основе конфигурации модели и credential.
//
// Credential передаётся отдельно от ModelDef: ключ вводится пользователем
// в рантайме и не обязан присутствовать в конфиге.
//
// Никаких проверок ключа здесь нет — невалидный credential проявится
// только при первом запросе.
func NewClient(modelDef config.ModelDef, apiKey string) *Client {
	// Поддержка custom BaseURL для non-OpenAI провайдеров (Zai, DeepSeek и т.д.)
	cfg := openai.DefaultConfig(apiKey)
	if modelDef.BaseURL != "" {
		cfg.BaseURL = modelDef.BaseURL
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: modelDef.ModelName,
	}
}

// Generate выполняет запрос к API и возвращает текст ответа.
//
// Алгоритм:
//  1. SystemInstruction уходит system-сообщением, UserPrompt — user-сообщением
//  2. Вызываем Chat Completions API
//  3. Возвращаем content первого choice
//
// Все ошибки возвращаются, никаких panic.
func (c *Client) Generate(ctx context.Context, req llm.BriefRequest) (string, error) {
	startTime := time.Now()

	model := req.Model
	if model == "" {
		model = c.model
	}

	utils.Debug("LLM request started",
		"provider", "openai",
		"model", model,
		"prompt_length", len(req.UserPrompt))

	apiReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	}
	if req.Temperature > 0 {
		apiReq.Temperature = float32(req.Temperature)
	}
	if req.MaxTokens > 0 {
		apiReq.MaxTokens = req.MaxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"model", model,
			"duration_ms", time.Since(startTime).Milliseconds())
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content

	utils.Info("LLM response received",
		"model", model,
		"content_length", len(content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return content, nil
}
