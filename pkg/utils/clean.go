// Package utils предоставляет вспомогательные функции для обработки данных.
//
// Включает утилиты для очистки ответов LLM от markdown-обёртки.
package utils

import "strings"

// CleanMarkdownFence удаляет кодовую обёртку вокруг целого markdown-документа.
//
// Несмотря на инструкцию "respond with the markdown document only", модели
// периодически оборачивают весь ответ в код-блок:
//
//	```markdown
//	### 1. App Overview
//	...
//	```
//
// Эта функция снимает такую обёртку. Код-блоки внутри документа не трогает:
// обёртка снимается только если ответ начинается и заканчивается fence'ом.
func CleanMarkdownFence(s string) string {
	trimmed := strings.TrimSpace(s)

	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return trimmed
	}

	// Отрезаем первую строку (``` или ```markdown) и закрывающий fence
	body := trimmed
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		// Первая строка должна быть fence'ом без содержимого после языка
		if firstLine != "```" && firstLine != "```markdown" && firstLine != "```md" {
			return trimmed
		}
		body = body[idx+1:]
	} else {
		return trimmed
	}

	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
