// Package prompt собирает промпты для генерации брифа приложения.
//
// Шаблоны фиксированные: системная инструкция задаёт структуру документа,
// пользовательский промпт интерполирует три поля формы. Пустые опциональные
// поля независимо заменяются placeholder-фразами, чтобы модель явно знала,
// что пользователь их не указал.
package prompt

import (
	"fmt"
	"strings"
)

// Placeholder-фразы для незаполненных опциональных полей.
const (
	PlaceholderFeatures = "User has not specified any particular features."
	PlaceholderAudience = "User has not specified a target audience."
)

// SystemInstruction — фиксированный системный шаблон.
//
// Определяет секции итогового брифа. Модель отвечает чистым markdown,
// без вступлений и пояснений.
const SystemInstruction = `You are an expert product manager and software architect. Given a short, informal app idea, produce a clear, well-structured app development brief in markdown.

The brief must contain exactly these sections, in this order:

### 1. App Overview
A concise name suggestion, a one-paragraph summary of the app, and the core problem it solves.

### 2. User Stories & Key Features
A bulleted list of the most important user stories ("As a <user>, I want <goal> so that <benefit>") followed by a prioritized feature list (MVP vs. later).

### 3. UI/UX Considerations
The main screens, the navigation flow between them, and notable design or accessibility considerations.

### 4. Recommended Technical Stack
Frontend, backend, data storage and third-party services, each with a one-line justification.

### 5. Monetization Strategy
Two or three realistic monetization options for this kind of app and audience.

Respond with the markdown document only. Do not add any preamble, closing remarks, or code fences around the whole document.`

// BuildBriefPrompt интерполирует поля формы в фиксированный шаблон.
//
// idea передаётся как есть (валидация на пустоту — забота вызывающего),
// features и audience при пустом (после trim) значении заменяются
// на placeholder-фразы.
func BuildBriefPrompt(idea, features, audience string) string {
	idea = strings.TrimSpace(idea)

	features = strings.TrimSpace(features)
	if features == "" {
		features = PlaceholderFeatures
	}

	audience = strings.TrimSpace(audience)
	if audience == "" {
		audience = PlaceholderAudience
	}

	return fmt.Sprintf(`Based on the following details, generate a complete app development brief.

App Idea: %s
Key Features to Include: %s
Target Audience: %s`, idea, features, audience)
}
