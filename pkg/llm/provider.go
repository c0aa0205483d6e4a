// Интерфейс Провайдера через который работает всё приложение.

package llm

import "context"

// Provider — контракт для любого генеративного AI-сервиса
type Provider interface {
	// Generate отправляет запрос и возвращает сырой текст ответа (markdown)
	Generate(ctx context.Context, req BriefRequest) (string, error)
}

// ProviderFunc адаптирует функцию к интерфейсу Provider.
//
// Используется в тестах и для mock-провайдеров без внешних вызовов.
type ProviderFunc func(ctx context.Context, req BriefRequest) (string, error)

func (f ProviderFunc) Generate(ctx context.Context, req BriefRequest) (string, error) {
	return f(ctx, req)
}
