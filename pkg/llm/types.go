// Базовые типы - определяем универсальный язык общения с генеративными моделями
package llm

// BriefRequest — унифицированный запрос на генерацию брифа.
//
// SystemInstruction и UserPrompt собираются в pkg/prompt и передаются
// провайдеру как есть. Wire-формат (роли сообщений, поля API) — забота
// конкретного адаптера.
type BriefRequest struct {
	Model             string  // Имя модели в API провайдера
	SystemInstruction string  // Фиксированный системный шаблон (структура брифа)
	UserPrompt        string  // Составленный пользовательский промпт
	Temperature       float64 // 0 = дефолт провайдера
	MaxTokens         int     // 0 = без ограничения
}
