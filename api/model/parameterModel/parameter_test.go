package parameterModel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepemufsc/nepemcert-api/api/model/parameterModel"
)

func TestSaveThemeRejectsMongoPathCharacters(t *testing.T) {
	// Theme names become Mongo field paths under theme_placeholders,
	// so dots and dollars would silently nest sub-documents.
	for _, name := range []string{"Tema v1.2", "tema$especial", "."} {
		theme, err := parameterModel.SaveTheme(name, map[string]any{"heading_color": "#123456"})

		require.Error(t, err, name)
		assert.Nil(t, theme)
		assert.ErrorIs(t, err, parameterModel.ErrInvalidThemeName)
		assert.Contains(t, err.Error(), name)
	}
}

func TestDeleteThemeProtectsPredefined(t *testing.T) {
	err := parameterModel.DeleteTheme("Acadêmico Clássico")
	assert.ErrorIs(t, err, parameterModel.ErrPredefinedTheme)
}
