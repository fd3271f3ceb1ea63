// Package placeholder resolves the per-certificate substitution values
// from the four configured sources: defaults, institutional values,
// theme values and the participant row.
package placeholder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Set maps placeholder names to their values. Keys are case-sensitive
// and match {{ name }} tokens in templates.
type Set map[string]string

// themeAllowedKeys lists every key a theme may override. Themes control
// decoration and copy only; layout geometry (font sizes, margins,
// spacing) is fixed by the template stylesheet.
var themeAllowedKeys = map[string]bool{
	"font_family":        true,
	"heading_color":      true,
	"text_color":         true,
	"background_color":   true,
	"border_color":       true,
	"border_width":       true,
	"border_style":       true,
	"name_color":         true,
	"title_color":        true,
	"event_name_color":   true,
	"link_color":         true,
	"signature_color":    true,
	"title_text":         true,
	"intro_text":         true,
	"participation_text": true,
	"footer_style":       true,
	"background_image":   true,
}

// ThemeValidationError reports theme keys outside the allow-list.
type ThemeValidationError struct {
	Keys []string
}

func (e *ThemeValidationError) Error() string {
	return fmt.Sprintf("theme contains forbidden keys: %s", strings.Join(e.Keys, ", "))
}

// ValidateTheme checks every key of a theme set against the allow-list.
// All offending keys are reported at once, never silently dropped.
func ValidateTheme(theme Set) error {
	var violations []string
	for key := range theme {
		if !themeAllowedKeys[key] {
			violations = append(violations, key)
		}
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		return &ThemeValidationError{Keys: violations}
	}

	return nil
}

// IsThemeKeyAllowed reports whether a single key may appear in a theme.
func IsThemeKeyAllowed(key string) bool {
	return themeAllowedKeys[key]
}

// FromAny coerces a generic JSON-ish mapping into a Set. Numbers are
// formatted without exponent notation so CSV cell values survive intact.
func FromAny(values map[string]any) Set {
	set := make(Set, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case nil:
			set[key] = ""
		case string:
			set[key] = v
		case bool:
			set[key] = strconv.FormatBool(v)
		case float64:
			set[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			set[key] = strconv.Itoa(v)
		case int64:
			set[key] = strconv.FormatInt(v, 10)
		default:
			set[key] = fmt.Sprint(v)
		}
	}
	return set
}

// Resolve merges the four sources into one fresh certificate context.
// Precedence, lowest to highest: defaults, institutional, theme, row.
// A key present in several sets takes the whole value from the highest
// one. The theme is validated first; a violating theme aborts the merge
// before any key is applied.
//
// Resolve is a pure function: inputs are never mutated and identical
// inputs always produce an identical result.
func Resolve(defaults, institutional, theme, row Set) (Set, error) {
	if err := ValidateTheme(theme); err != nil {
		return nil, err
	}

	resolved := make(Set, len(defaults)+len(institutional)+len(theme)+len(row))
	for _, set := range []Set{defaults, institutional, theme, row} {
		for key, value := range set {
			resolved[key] = value
		}
	}

	return resolved, nil
}
