// Package app предоставляет состояние сессии (Session).
//
// Session — единственное место, где живут credential, провайдер и последний
// сгенерированный бриф. Никаких глобальных переменных: UI владеет Session
// и мутирует её только из своих event handler'ов (single-writer).
//
// Credential и результат живут только в памяти процесса — без персистентности.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ilkoid/blueprint-ai/pkg/config"
	"github.com/ilkoid/blueprint-ai/pkg/llm"
	"github.com/ilkoid/blueprint-ai/pkg/markdown"
	"github.com/ilkoid/blueprint-ai/pkg/prompt"
	"github.com/ilkoid/blueprint-ai/pkg/utils"
)

// Локально обнаруживаемые ошибки. Все recoverable: пользователь
// исправляет ввод и пробует снова.
var (
	ErrEmptyCredential = errors.New("API key is empty")
	ErrEmptyIdea       = errors.New("app idea is empty")
	ErrNotInitialized  = errors.New("client is not initialized, enter API key first")
	ErrNoBrief         = errors.New("no brief has been generated yet")
)

// ProviderFactory строит провайдера из credential.
//
// В продакшене это замыкание над pkg/factory.NewProvider; в тестах —
// функция, возвращающая mock.
type ProviderFactory func(apiKey string) (llm.Provider, error)

// Session хранит состояние одной пользовательской сессии.
//
// Мутируется только из tea.Cmd / Update хендлеров UI, которые выполняются
// без пересечения друг с другом. Мьютекс защищает чтения из фоновых
// горутин (tea.Cmd выполняется вне основного цикла).
type Session struct {
	mu sync.RWMutex

	cfg      *config.AppConfig
	modelDef config.ModelDef

	newProvider ProviderFactory
	provider    llm.Provider

	lastBrief string // Сырой markdown последнего успешного ответа
}

// NewSession создает сессию без провайдера: до SubmitCredential
// генерация недоступна.
func NewSession(cfg *config.AppConfig, newProvider ProviderFactory) (*Session, error) {
	modelDef, ok := cfg.GetModel("")
	if !ok {
		return nil, fmt.Errorf("default model is not defined in config")
	}

	return &Session{
		cfg:         cfg,
		modelDef:    modelDef,
		newProvider: newProvider,
	}, nil
}

// ModelName возвращает имя модели для отображения в UI.
func (s *Session) ModelName() string {
	return s.modelDef.ModelName
}

// DefaultCredential возвращает api_key из конфига (после ENV-подстановки).
//
// Используется только как pre-fill поля ввода: Session Gate всё равно
// проходится явно, без проверки ключа против сервиса.
func (s *Session) DefaultCredential() string {
	return s.modelDef.APIKey
}

// SubmitCredential принимает введённый пользователем ключ и строит провайдера.
//
// Пробельный/пустой ввод — единственная локально обнаруживаемая ошибка;
// невалидный ключ обнаружится при первой генерации.
func (s *Session) SubmitCredential(raw string) error {
	key := strings.TrimSpace(raw)
	if key == "" {
		return ErrEmptyCredential
	}

	provider, err := s.newProvider(key)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	s.mu.Lock()
	s.provider = provider
	s.mu.Unlock()

	utils.Info("Session: client initialized", "model", s.modelDef.ModelName)
	return nil
}

// Ready сообщает, прошла ли сессия через Session Gate.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider != nil
}

// Generate собирает промпт из трёх полей формы и выполняет один запрос.
//
// Валидация до запроса: провайдер должен существовать, idea после trim
// непустая. При пустых features/audience в шаблон подставляются
// placeholder-фразы (см. pkg/prompt).
//
// Успешный результат сохраняется как последний бриф (перезаписывая
// предыдущий); при ошибке предыдущий бриф не трогается.
func (s *Session) Generate(ctx context.Context, idea, features, audience string) (string, error) {
	s.mu.RLock()
	provider := s.provider
	s.mu.RUnlock()

	if provider == nil {
		return "", ErrNotInitialized
	}
	if strings.TrimSpace(idea) == "" {
		return "", ErrEmptyIdea
	}

	if s.modelDef.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.modelDef.Timeout)
		defer cancel()
	}

	req := llm.BriefRequest{
		Model:             s.modelDef.ModelName,
		SystemInstruction: prompt.SystemInstruction,
		UserPrompt:        prompt.BuildBriefPrompt(idea, features, audience),
		Temperature:       s.modelDef.Temperature,
		MaxTokens:         s.modelDef.MaxTokens,
	}

	startTime := time.Now()
	raw, err := provider.Generate(ctx, req)
	if err != nil {
		utils.Error("Session: generation failed", "error", err)
		return "", err
	}

	brief := utils.CleanMarkdownFence(raw)

	s.mu.Lock()
	s.lastBrief = brief
	s.mu.Unlock()

	utils.Info("Session: brief generated",
		"length", len(brief),
		"duration_ms", time.Since(startTime).Milliseconds())

	return brief, nil
}

// LastBrief возвращает сырой markdown последнего успешного брифа.
func (s *Session) LastBrief() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastBrief, s.lastBrief != ""
}

// ExportHTML рендерит последний бриф в самостоятельную HTML страницу
// и записывает её в export_dir. Возвращает путь созданного файла.
func (s *Session) ExportHTML() (string, error) {
	brief, ok := s.LastBrief()
	if !ok {
		return "", ErrNoBrief
	}

	page, err := markdown.RenderDocument("App Development Brief", brief)
	if err != nil {
		return "", err
	}

	dir := s.cfg.App.ExportDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	filename := fmt.Sprintf("brief_%s.html", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	utils.Info("Session: brief exported", "path", path)
	return path, nil
}
