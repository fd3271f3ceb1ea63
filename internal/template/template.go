// Package template handles the HTML certificate templates: token
// extraction, substitution and theme styling.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
)

// tokenPattern matches {{ name }} tokens with an optional
// |default('literal') fallback.
var tokenPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*(?:\|\s*default\('([^']*)'\)\s*)?\}\}`)

var styleBlockPattern = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)

var headPattern = regexp.MustCompile(`(?i)<head[^>]*>`)

// ExtractPlaceholders returns the unique token names of a template,
// sorted for stable display.
func ExtractPlaceholders(html string) []string {
	matches := tokenPattern.FindAllStringSubmatch(html, -1)

	seen := make(map[string]bool)
	var names []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}

	sort.Strings(names)
	return names
}

// Render substitutes tokens with values from the resolved context. A
// key absent from the context renders its default('...') literal when
// one is declared, otherwise empty; the resolver never invents values.
func Render(html string, ctx placeholder.Set) string {
	return tokenPattern.ReplaceAllStringFunc(html, func(token string) string {
		m := tokenPattern.FindStringSubmatch(token)
		if value, ok := ctx[m[1]]; ok {
			return value
		}
		return m[2]
	})
}

// SampleContext builds a preview context filling every token with a
// recognizable sample value.
func SampleContext(names []string) placeholder.Set {
	ctx := make(placeholder.Set, len(names))
	for _, name := range names {
		ctx[name] = "Exemplo de " + name
	}
	return ctx
}

// Layout geometry is fixed; themes may only change decoration and copy.
const (
	pageMargin      = "15mm"
	titleFontSize   = "48px"
	contentFontSize = "24px"
	nameFontSize    = "36px"
)

func themeValue(theme placeholder.Set, key, fallback string) string {
	if v, ok := theme[key]; ok && v != "" {
		return v
	}
	return fallback
}

// ApplyTheme renders the certificate stylesheet from a theme and
// replaces the template's <style> block with it (or injects one after
// <head> when the template has none). The theme must already be
// validated against the allow-list.
func ApplyTheme(html string, theme placeholder.Set) string {
	css := buildStylesheet(theme)
	styled := "<style>\n" + css + "\n</style>"

	if styleBlockPattern.MatchString(html) {
		return styleBlockPattern.ReplaceAllString(html, styled)
	}

	if headPattern.MatchString(html) {
		return headPattern.ReplaceAllStringFunc(html, func(head string) string {
			return head + "\n" + styled
		})
	}

	return styled + "\n" + html
}

func buildStylesheet(theme placeholder.Set) string {
	fontFamily := themeValue(theme, "font_family", "Helvetica, Arial, sans-serif")
	headingColor := themeValue(theme, "heading_color", "#2c3e50")
	textColor := themeValue(theme, "text_color", "#333333")
	backgroundColor := themeValue(theme, "background_color", "#ffffff")
	borderColor := themeValue(theme, "border_color", "#cccccc")
	borderWidth := themeValue(theme, "border_width", "4px")
	borderStyle := themeValue(theme, "border_style", "solid")
	nameColor := themeValue(theme, "name_color", headingColor)
	titleColor := themeValue(theme, "title_color", headingColor)
	eventNameColor := themeValue(theme, "event_name_color", headingColor)
	linkColor := themeValue(theme, "link_color", headingColor)
	signatureColor := themeValue(theme, "signature_color", textColor)

	background := fmt.Sprintf("background-color: %s;", backgroundColor)
	if image := theme["background_image"]; image != "" {
		background = fmt.Sprintf("background: url('%s') no-repeat center center; background-size: cover;", image)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `@page {
	size: A4 landscape;
	margin: 0;
}
body {
	font-family: %s;
	color: %s;
	%s
	margin: 0;
	padding: 0;
}
.certificate {
	border: %s %s %s;
	margin: %s;
	padding: %s;
	text-align: center;
}
.title {
	color: %s;
	font-size: %s;
}
.content {
	font-size: %s;
}
.participant-name {
	color: %s;
	font-size: %s;
	font-weight: bold;
}
.event-name {
	color: %s;
}
.signature {
	color: %s;
}
a {
	color: %s;
}`,
		fontFamily, textColor, background,
		borderWidth, borderStyle, borderColor, pageMargin, pageMargin,
		titleColor, titleFontSize,
		contentFontSize,
		nameColor, nameFontSize,
		eventNameColor,
		signatureColor,
		linkColor,
	)

	return b.String()
}

// compatibilityChecks flags constructs the PDF renderers handle badly.
var compatibilityChecks = []struct {
	pattern *regexp.Regexp
	warning string
}{
	{regexp.MustCompile(`(?i)<iframe`), "iframe elements are not rendered in PDF output"},
	{regexp.MustCompile(`(?i)<canvas`), "canvas elements are not rendered in PDF output"},
	{regexp.MustCompile(`(?i)<video|<audio`), "media elements are not rendered in PDF output"},
	{regexp.MustCompile(`(?i)position\s*:\s*fixed`), "fixed positioning behaves inconsistently in PDF output"},
	{regexp.MustCompile(`(?i)animation\s*:|@keyframes`), "CSS animations have no effect in PDF output"},
	{regexp.MustCompile(`(?i)<script`), "scripts are not executed during PDF rendering"},
}

// CheckCompatibility returns renderer-compatibility warnings for a
// template. An empty slice means no known problems.
func CheckCompatibility(html string) []string {
	var warnings []string
	for _, check := range compatibilityChecks {
		if check.pattern.MatchString(html) {
			warnings = append(warnings, check.warning)
		}
	}
	return warnings
}
