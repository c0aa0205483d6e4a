// Package markdown оборачивает внешний markdown → HTML рендерер (goldmark).
//
// Рендерер — чистая функция: текст на входе, HTML на выходе,
// никакого состояния между вызовами.
package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
)

// RenderHTML конвертирует markdown в HTML фрагмент.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("markdown convert failed: %w", err)
	}
	return buf.String(), nil
}

// RenderDocument конвертирует markdown в самостоятельную HTML страницу.
//
// Используется для экспорта брифа в файл, который можно открыть в браузере.
func RenderDocument(title, md string) (string, error) {
	body, err := RenderHTML(md)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("<style>body{max-width:48rem;margin:2rem auto;padding:0 1rem;font-family:sans-serif;line-height:1.6}</style>\n")
	buf.WriteString("</head>\n<body>\n")
	buf.WriteString(body)
	buf.WriteString("</body>\n</html>\n")

	return buf.String(), nil
}
