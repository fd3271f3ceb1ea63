package placeholder_test

import (
	"errors"
	"testing"

	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	defaults := placeholder.Set{
		"title_text": "Certificado de Participação",
		"cidade":     "Florianópolis",
	}
	institutional := placeholder.Set{
		"coordenador": "Prof. Ana Souza",
		"cidade":      "Curitiba",
	}
	theme := placeholder.Set{
		"title_text":    "Certificado de Excelência",
		"heading_color": "#003366",
	}
	row := placeholder.Set{
		"nome": "Maria Silva",
	}

	resolved, err := placeholder.Resolve(defaults, institutional, theme, row)
	require.NoError(t, err)

	assert.Equal(t, "Certificado de Excelência", resolved["title_text"], "theme overrides default")
	assert.Equal(t, "Maria Silva", resolved["nome"])
	assert.Equal(t, "#003366", resolved["heading_color"])
	assert.Equal(t, "Curitiba", resolved["cidade"], "institutional overrides default")
	assert.Equal(t, "Prof. Ana Souza", resolved["coordenador"])
}

func TestResolve_RowWinsOverEverything(t *testing.T) {
	defaults := placeholder.Set{"evento": "padrão"}
	institutional := placeholder.Set{"evento": "institucional"}
	theme := placeholder.Set{"title_text": "tema"}
	row := placeholder.Set{"evento": "Semana Acadêmica", "title_text": "da linha"}

	resolved, err := placeholder.Resolve(defaults, institutional, theme, row)
	require.NoError(t, err)

	assert.Equal(t, "Semana Acadêmica", resolved["evento"])
	assert.Equal(t, "da linha", resolved["title_text"])
}

func TestResolve_IsPure(t *testing.T) {
	defaults := placeholder.Set{"a": "1"}
	institutional := placeholder.Set{"b": "2"}
	theme := placeholder.Set{"title_text": "T"}
	row := placeholder.Set{"a": "override"}

	first, err := placeholder.Resolve(defaults, institutional, theme, row)
	require.NoError(t, err)
	second, err := placeholder.Resolve(defaults, institutional, theme, row)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Inputs must be untouched
	assert.Equal(t, placeholder.Set{"a": "1"}, defaults)
	assert.Equal(t, placeholder.Set{"a": "override"}, row)

	// The result is a fresh map, not an alias of an input
	first["a"] = "mutated"
	assert.Equal(t, "1", defaults["a"])
	assert.Equal(t, "override", row["a"])
}

func TestResolve_EmptySets(t *testing.T) {
	resolved, err := placeholder.Resolve(nil, nil, nil, placeholder.Set{"nome": "João"})
	require.NoError(t, err)
	assert.Equal(t, placeholder.Set{"nome": "João"}, resolved)
}

func TestResolve_ForbiddenThemeKeyAbortsMerge(t *testing.T) {
	theme := placeholder.Set{
		"heading_color":   "#000000",
		"title_font_size": "48px",
	}

	resolved, err := placeholder.Resolve(placeholder.Set{"a": "1"}, nil, theme, nil)
	assert.Nil(t, resolved)

	var themeErr *placeholder.ThemeValidationError
	require.True(t, errors.As(err, &themeErr))
	assert.Equal(t, []string{"title_font_size"}, themeErr.Keys)
}

func TestValidateTheme_ReportsAllViolations(t *testing.T) {
	theme := placeholder.Set{
		"margin":          "10px",
		"title_font_size": "48px",
		"heading_color":   "#003366",
	}

	err := placeholder.ValidateTheme(theme)
	var themeErr *placeholder.ThemeValidationError
	require.True(t, errors.As(err, &themeErr))
	assert.Equal(t, []string{"margin", "title_font_size"}, themeErr.Keys)
	assert.Contains(t, themeErr.Error(), "margin")
	assert.Contains(t, themeErr.Error(), "title_font_size")
}

func TestValidateTheme_AllowsDecorationAndCopyKeys(t *testing.T) {
	theme := placeholder.Set{
		"font_family":        "Times, 'Times New Roman', serif",
		"heading_color":      "#003366",
		"border_style":       "double",
		"title_text":         "Certificado de Excelência",
		"intro_text":         "Certifica-se que",
		"participation_text": "participou com distinção do evento",
		"background_image":   "",
	}

	assert.NoError(t, placeholder.ValidateTheme(theme))
}

func TestFromAny_Coercion(t *testing.T) {
	set := placeholder.FromAny(map[string]any{
		"nome":          "Maria",
		"carga_horaria": float64(40),
		"fracao":        2.5,
		"ativo":         true,
		"vazio":         nil,
	})

	assert.Equal(t, placeholder.Set{
		"nome":          "Maria",
		"carga_horaria": "40",
		"fracao":        "2.5",
		"ativo":         "true",
		"vazio":         "",
	}, set)
}

func TestParseThemeJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		want    placeholder.Set
	}{
		{
			name:  "valid theme",
			input: `{"heading_color": "#003366", "title_text": "Certificado"}`,
			want:  placeholder.Set{"heading_color": "#003366", "title_text": "Certificado"},
		},
		{
			name:    "forbidden key",
			input:   `{"margin": "10px"}`,
			wantErr: "margin",
		},
		{
			name:    "nested object rejected by schema",
			input:   `{"heading_color": {"hex": "#003366"}}`,
			wantErr: "schema",
		},
		{
			name:    "not json",
			input:   `not json`,
			wantErr: "JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := placeholder.ParseThemeJSON([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, set)
		})
	}
}
