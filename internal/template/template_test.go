package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
)

func TestExtractPlaceholders(t *testing.T) {
	html := `<html><body>
		<h1>{{ title_text|default('Certificado') }}</h1>
		<p>{{ nome }} participou de {{ evento }} em {{ cidade }}.</p>
		<p>{{ nome }}</p>
	</body></html>`

	names := ExtractPlaceholders(html)

	assert.Equal(t, []string{"cidade", "evento", "nome", "title_text"}, names)
}

func TestExtractPlaceholdersEmpty(t *testing.T) {
	assert.Empty(t, ExtractPlaceholders("<html><body>static</body></html>"))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		ctx      placeholder.Set
		expected string
	}{
		{
			name:     "substitutes values",
			html:     "<p>{{ nome }} - {{ evento }}</p>",
			ctx:      placeholder.Set{"nome": "Maria Silva", "evento": "Workshop Go"},
			expected: "<p>Maria Silva - Workshop Go</p>",
		},
		{
			name:     "missing key with default renders literal",
			html:     "<h1>{{ title_text|default('Certificado') }}</h1>",
			ctx:      placeholder.Set{},
			expected: "<h1>Certificado</h1>",
		},
		{
			name:     "present key wins over default",
			html:     "<h1>{{ title_text|default('Certificado') }}</h1>",
			ctx:      placeholder.Set{"title_text": "Diploma"},
			expected: "<h1>Diploma</h1>",
		},
		{
			name:     "missing key without default renders empty",
			html:     "<p>[{{ cidade }}]</p>",
			ctx:      placeholder.Set{},
			expected: "<p>[]</p>",
		},
		{
			name:     "empty value beats default",
			html:     "<h1>{{ title_text|default('Certificado') }}</h1>",
			ctx:      placeholder.Set{"title_text": ""},
			expected: "<h1></h1>",
		},
		{
			name:     "whitespace variants",
			html:     "<p>{{nome}} {{  nome  }}</p>",
			ctx:      placeholder.Set{"nome": "Ana"},
			expected: "<p>Ana Ana</p>",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Render(test.html, test.ctx))
		})
	}
}

func TestSampleContext(t *testing.T) {
	ctx := SampleContext([]string{"nome", "evento"})

	assert.Equal(t, placeholder.Set{
		"nome":   "Exemplo de nome",
		"evento": "Exemplo de evento",
	}, ctx)
}

func TestApplyThemeReplacesStyleBlock(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head><body></body></html>`

	styled := ApplyTheme(html, placeholder.Set{"heading_color": "#123456"})

	assert.NotContains(t, styled, "color: red;")
	assert.Contains(t, styled, "#123456")
	assert.Equal(t, 1, strings.Count(styled, "<style>"))
}

func TestApplyThemeInjectsAfterHead(t *testing.T) {
	html := `<html><head><title>x</title></head><body></body></html>`

	styled := ApplyTheme(html, placeholder.Set{})

	assert.Contains(t, styled, "<style>")
	assert.Contains(t, styled, "<title>x</title>")
	assert.Less(t, strings.Index(styled, "<style>"), strings.Index(styled, "<title>"))
}

func TestApplyThemeGeometryIsFixed(t *testing.T) {
	styled := ApplyTheme("<html><head></head></html>", placeholder.Set{
		"font_family":   "Georgia, serif",
		"heading_color": "#8e44ad",
	})

	assert.Contains(t, styled, "size: A4 landscape;")
	assert.Contains(t, styled, "font-size: 48px;")
	assert.Contains(t, styled, "Georgia, serif")
}

func TestApplyThemeBackgroundImage(t *testing.T) {
	styled := ApplyTheme("<html><head></head></html>", placeholder.Set{
		"background_image": "https://static.example.org/bg.png",
	})

	assert.Contains(t, styled, "url('https://static.example.org/bg.png')")
	assert.NotContains(t, styled, "background-color:")
}

func TestCheckCompatibility(t *testing.T) {
	html := `<html><body>
		<iframe src="x"></iframe>
		<style>.x { position: fixed; animation: spin 1s; }</style>
	</body></html>`

	warnings := CheckCompatibility(html)

	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "iframe")
}

func TestCheckCompatibilityClean(t *testing.T) {
	assert.Empty(t, CheckCompatibility("<html><body><p>{{ nome }}</p></body></html>"))
}
