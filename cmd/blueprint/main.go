// Blueprint AI TUI Application
// Превращает короткую идею приложения в структурированный бриф разработки
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ilkoid/blueprint-ai/internal/app"
	"github.com/ilkoid/blueprint-ai/internal/ui"
	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/factory"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "путь к config.yaml")
	modelAlias := flag.String("model", "", "алиас модели из конфига (по умолчанию models.default)")
	flag.Parse()

	// 0. Инициализируем логгер (TUI занимает терминал, логи идут в файл)
	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logger: %v\n", err)
	}
	defer utils.Close()

	// 1. Конфигурация. Отсутствующий config.yaml - не ошибка:
	// приложение работает и на дефолтах, вся остальная настройка интерактивная.
	cfg, err := loadConfig(*configPath)
	if err != nil {
		utils.Error("Failed to load config", "error", err, "path", *configPath)
		return err
	}
	if *modelAlias != "" {
		if _, ok := cfg.GetModel(*modelAlias); !ok {
			return fmt.Errorf("model '%s' is not defined in config", *modelAlias)
		}
		cfg.Models.Default = *modelAlias
	}
	utils.SetDebug(cfg.App.Debug)
	utils.Info("Blueprint AI started", "model", cfg.Models.Default)

	// 2. Сессия. Провайдер появится после прохождения Session Gate:
	// ключ вводится в UI и не проверяется против сервиса до первой генерации.
	modelDef, _ := cfg.GetModel("")
	session, err := app.NewSession(cfg, func(apiKey string) (llm.Provider, error) {
		return factory.NewProvider(context.Background(), modelDef, apiKey)
	})
	if err != nil {
		return err
	}

	// 3. Запускаем TUI
	p := tea.NewProgram(ui.InitialModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		utils.Error("TUI terminated with error", "error", err)
		return fmt.Errorf("tui error: %w", err)
	}

	utils.Info("Blueprint AI finished")
	return nil
}

// loadConfig читает конфиг или возвращает дефолты, если файла нет.
func loadConfig(path string) (*config.AppConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		utils.Warn("Config file not found, using defaults", "path", path)
		return config.Default(), nil
	}
	return config.Load(path)
}
