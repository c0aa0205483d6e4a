package factory

import (
	"context"
	"fmt"

	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/llm/gemini"
	"github.com/ilkoid/blueprint-ai/pkg/llm/openai"
)

// NewProvider создает провайдера на основе конфигурации модели и credential.
//
// Credential (API ключ) приходит из интерактивного ввода, не из конфига.
// Ни один из конструкторов не проверяет ключ против сервиса —
// невалидный ключ падает при первом запросе.
func NewProvider(ctx context.Context, modelDef config.ModelDef, apiKey string) (llm.Provider, error) {
	switch modelDef.Provider {
	case "gemini":
		return gemini.NewClient(ctx, modelDef, apiKey)

	case "openai", "zai", "deepseek":
		return openai.NewClient(modelDef, apiKey), nil

	default:
		return nil, fmt.Errorf("unknown provider type: %s", modelDef.Provider)
	}
}
