package markdown

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "heading",
			md:   "### 1. App Overview",
			want: "<h3>1. App Overview</h3>",
		},
		{
			name: "bullet list",
			md:   "- first\n- second",
			want: "<li>second</li>",
		},
		{
			name: "bold text",
			md:   "**important**",
			want: "<strong>important</strong>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderHTML(tt.md)
			if err != nil {
				t.Fatalf("RenderHTML() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RenderHTML() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestRenderDocument(t *testing.T) {
	got, err := RenderDocument("My <App> Brief", "# Title")
	if err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>My &lt;App&gt; Brief</title>",
		"<h1>Title</h1>",
		"</html>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderDocument() missing %q", want)
		}
	}
}
