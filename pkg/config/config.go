package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру config.yaml.
type AppConfig struct {
	Models ModelsConfig `yaml:"models"`
	App    AppSpecific  `yaml:"app"`
}

// ModelsConfig — настройки AI моделей.
type ModelsConfig struct {
	Default     string              `yaml:"default"`     // Алиас по умолчанию (например, "gemini-flash")
	Definitions map[string]ModelDef `yaml:"definitions"` // Словарь определений моделей
}

// ModelDef — параметры конкретной модели.
type ModelDef struct {
	Provider    string        `yaml:"provider"`   // "gemini", "openai", "zai", "deepseek"
	ModelName   string        `yaml:"model_name"` // Реальное имя в API
	APIKey      string        `yaml:"api_key"`    // Поддерживает ${VAR}; только pre-fill, ключ вводится в UI
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`  // Go умеет парсить строки вида "60s", "2m"
	BaseURL     string        `yaml:"base_url"` // Для OpenAI-совместимых endpoint'ов
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug     bool   `yaml:"debug"`
	ExportDir string `yaml:"export_dir"` // Куда сохранять HTML экспорт ("" = текущая директория)
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// 5. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default возвращает конфигурацию без файла: одна Gemini модель.
//
// Позволяет запускать приложение вообще без config.yaml —
// вся остальная конфигурация интерактивная.
func Default() *AppConfig {
	return &AppConfig{
		Models: ModelsConfig{
			Default: "gemini-flash",
			Definitions: map[string]ModelDef{
				"gemini-flash": {
					Provider:    "gemini",
					ModelName:   "gemini-2.5-flash",
					Temperature: 0.7,
					Timeout:     120 * time.Second,
				},
			},
		},
	}
}

// validate проверяет обязательные поля.
func (c *AppConfig) validate() error {
	if len(c.Models.Definitions) == 0 {
		return fmt.Errorf("models.definitions is empty")
	}
	if c.Models.Default == "" {
		return fmt.Errorf("models.default is required")
	}
	if _, ok := c.Models.Definitions[c.Models.Default]; !ok {
		return fmt.Errorf("default model '%s' is not defined in definitions", c.Models.Default)
	}
	for alias, def := range c.Models.Definitions {
		if def.Provider == "" {
			return fmt.Errorf("model '%s': provider is required", alias)
		}
		if def.ModelName == "" {
			return fmt.Errorf("model '%s': model_name is required", alias)
		}
	}
	return nil
}

// Helper методы для удобства доступа (Syntactic sugar)

// GetModel возвращает конфигурацию модели по алиасу или модель по умолчанию.
func (c *AppConfig) GetModel(name string) (ModelDef, bool) {
	if name == "" {
		name = c.Models.Default
	}
	m, ok := c.Models.Definitions[name]
	return m, ok
}
