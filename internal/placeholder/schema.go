package placeholder

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// themeDocumentSchema constrains imported theme files to a flat JSON
// object of scalar values before the allow-list pass runs.
const themeDocumentSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": {
		"type": ["string", "number", "boolean", "null"]
	}
}`

// ParseThemeJSON parses an uploaded theme document, checking document
// shape against the JSON schema and keys against the theme allow-list.
func ParseThemeJSON(data []byte) (Set, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(themeDocumentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("theme document is not valid JSON: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("theme document rejected by schema: %s", strings.Join(problems, "; "))
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode theme document: %w", err)
	}

	theme := FromAny(raw)
	if err := ValidateTheme(theme); err != nil {
		return nil, err
	}

	return theme, nil
}
