// brief-cli - одноразовая генерация брифа без TUI.
//
// Удобно для скриптов и проверки промптов:
//
//	brief-cli -key $GEMINI_API_KEY -idea "a recipe sharing app" -audience "home cooks"
//	brief-cli -key $GEMINI_API_KEY -idea "..." -html brief.html
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/factory"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/markdown"
	"github.com/ilkoid/blueprint-ai/pkg/prompt"
	"github.com/ilkoid/blueprint-ai/pkg/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "config.yaml", "путь к config.yaml")
		modelAlias = flag.String("model", "", "алиас модели из конфига")
		apiKey     = flag.String("key", "", "API ключ (обязателен)")
		idea       = flag.String("idea", "", "идея приложения (обязательна)")
		features   = flag.String("features", "", "желаемые фичи (опционально)")
		audience   = flag.String("audience", "", "целевая аудитория (опционально)")
		htmlOut    = flag.String("html", "", "записать HTML в файл вместо вывода markdown в stdout")
	)
	flag.Parse()

	if strings.TrimSpace(*apiKey) == "" {
		return fmt.Errorf("-key is required")
	}
	if strings.TrimSpace(*idea) == "" {
		return fmt.Errorf("-idea is required")
	}

	// 1. Конфигурация (опциональная - есть дефолты)
	cfg := config.Default()
	if _, err := os.Stat(*configPath); err == nil {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	modelDef, ok := cfg.GetModel(*modelAlias)
	if !ok {
		return fmt.Errorf("model '%s' is not defined in config", *modelAlias)
	}

	// 2. Провайдер и запрос
	ctx := context.Background()
	provider, err := factory.NewProvider(ctx, modelDef, strings.TrimSpace(*apiKey))
	if err != nil {
		return err
	}

	if modelDef.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, modelDef.Timeout)
		defer cancel()
	}

	raw, err := provider.Generate(ctx, llm.BriefRequest{
		Model:             modelDef.ModelName,
		SystemInstruction: prompt.SystemInstruction,
		UserPrompt:        prompt.BuildBriefPrompt(*idea, *features, *audience),
		Temperature:       modelDef.Temperature,
		MaxTokens:         modelDef.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	brief := utils.CleanMarkdownFence(raw)

	// 3. Вывод: markdown в stdout или HTML в файл
	if *htmlOut == "" {
		fmt.Println(brief)
		return nil
	}

	page, err := markdown.RenderDocument("App Development Brief", brief)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*htmlOut, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *htmlOut, err)
	}
	fmt.Printf("Brief saved to %s\n", *htmlOut)
	return nil
}
