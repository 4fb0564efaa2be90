package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/techhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	in := "Empowering developers with cutting-edge knowledge"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_FooterMarkup(t *testing.T) {
	in := "<p>Built by <strong>TechHub</strong></p>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected safe footer markup preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Footer</p><script>alert(1)</script>")
	if got != "<p>Footer</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesEventHandlers(t *testing.T) {
	in := `<a href="https://example.com" onclick="steal()">Docs</a>`
	got := htmlsanitize.Sanitize(in)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick removed, got %q", got)
	}
	if !strings.Contains(got, "https://example.com") {
		t.Errorf("expected safe href preserved, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="javascript:alert(1)">Click</a>`)
	if strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestSanitize_KeepsClass(t *testing.T) {
	got := htmlsanitize.Sanitize(`<span class="text-slate-400">Muted</span>`)
	if !strings.Contains(got, `class="text-slate-400"`) {
		t.Errorf("expected class preserved, got %q", got)
	}
}

func TestSanitizeToHTML(t *testing.T) {
	got := htmlsanitize.SanitizeToHTML("<p>Hello</p><iframe src=\"https://evil.example\"></iframe>")
	if got != template.HTML("<p>Hello</p>") {
		t.Errorf("expected iframe removed, got %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"Hello", true},
		{"<p>Hello</p>", false},
		{"a < b", false},
	}
	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.in); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeToHTML_PlainText(t *testing.T) {
	tests := []struct {
		in   string
		want template.HTML
	}{
		{"", ""},
		{"© 2025 TechHub", "© 2025 TechHub"},
		{"Docs & Guides", "Docs &amp; Guides"},
		{`Say "hi"`, "Say &#34;hi&#34;"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.SanitizeToHTML(tt.in); got != tt.want {
			t.Errorf("SanitizeToHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
