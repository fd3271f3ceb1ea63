// Package parameterModel stores the placeholder configuration document:
// default, theme and institutional placeholder sections in Mongo.
package parameterModel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/internal/placeholder"
)

const (
	collectionName = "parameters"
	documentID     = "parameters"
)

var ErrPredefinedTheme = errors.New("predefined themes cannot be deleted")
var ErrThemeNotFound = errors.New("theme not found")
var ErrInvalidThemeName = errors.New("theme name cannot contain '.' or '$'")

// ParameterDocument is the single configuration document.
type ParameterDocument struct {
	ID                        string                    `bson:"_id"`
	DefaultPlaceholders       map[string]any            `bson:"default_placeholders"`
	ThemePlaceholders         map[string]map[string]any `bson:"theme_placeholders"`
	InstitutionalPlaceholders map[string]any            `bson:"institutional_placeholders"`
}

// PredefinedThemes ships with the system and survives deletion.
var PredefinedThemes = map[string]placeholder.Set{
	"Acadêmico Clássico": {
		"font_family":        "Times, 'Times New Roman', serif",
		"heading_color":      "#003366",
		"text_color":         "#333333",
		"background_color":   "#fffff8",
		"border_color":       "#8c7853",
		"border_width":       "4px",
		"border_style":       "double",
		"name_color":         "#003366",
		"title_color":        "#003366",
		"event_name_color":   "#003366",
		"link_color":         "#003366",
		"title_text":         "Certificado de Excelência",
		"intro_text":         "Certifica-se que",
		"participation_text": "participou com distinção do evento",
		"footer_style":       "classic",
		"signature_color":    "#000033",
	},
	"Executivo Premium": {
		"font_family":        "Helvetica, Arial, sans-serif",
		"heading_color":      "#1c2a48",
		"text_color":         "#2c3e50",
		"background_color":   "#ffffff",
		"border_color":       "#c9a84b",
		"border_width":       "4px",
		"border_style":       "solid",
		"name_color":         "#1c2a48",
		"title_color":        "#1c2a48",
		"event_name_color":   "#1c2a48",
		"link_color":         "#c9a84b",
		"title_text":         "Certificado Profissional",
		"intro_text":         "Este documento certifica que",
		"participation_text": "participou e concluiu com sucesso",
		"footer_style":       "modern",
		"signature_color":    "#333333",
	},
	"Contemporâneo Elegante": {
		"font_family":        "Helvetica, Arial, sans-serif",
		"heading_color":      "#2e3c50",
		"text_color":         "#34495e",
		"background_color":   "#f9f9f9",
		"border_color":       "#cbd5e0",
		"border_width":       "4px",
		"border_style":       "solid",
		"name_color":         "#5260c9",
		"title_color":        "#2e3c50",
		"event_name_color":   "#2e3c50",
		"link_color":         "#5260c9",
		"title_text":         "Certificado",
		"intro_text":         "Conferimos este certificado a",
		"participation_text": "pela participação no evento",
		"footer_style":       "minimalist",
		"signature_color":    "#2e3c50",
	},
	"Diplomático Oficial": {
		"font_family":        "Palatino, 'Times New Roman', serif",
		"heading_color":      "#1a3a5f",
		"text_color":         "#333333",
		"background_color":   "#f8f8f0",
		"border_color":       "#8d734a",
		"border_width":       "4px",
		"border_style":       "double",
		"name_color":         "#1a3a5f",
		"title_color":        "#1a3a5f",
		"event_name_color":   "#1a3a5f",
		"link_color":         "#1a3a5f",
		"title_text":         "Certificado Oficial",
		"intro_text":         "A instituição certifica que",
		"participation_text": "participou oficialmente do evento",
		"footer_style":       "formal",
		"signature_color":    "#333333",
	},
	"Minimalista Moderno": {
		"font_family":        "Helvetica, Arial, sans-serif",
		"heading_color":      "#202020",
		"text_color":         "#404040",
		"background_color":   "#ffffff",
		"border_color":       "#e0e0e0",
		"border_width":       "4px",
		"border_style":       "solid",
		"name_color":         "#202020",
		"title_color":        "#202020",
		"event_name_color":   "#202020",
		"link_color":         "#404040",
		"title_text":         "Certificado de Conclusão",
		"intro_text":         "Este documento certifica que",
		"participation_text": "participou e concluiu",
		"footer_style":       "clean",
		"signature_color":    "#404040",
	},
}

func IsPredefined(name string) bool {
	_, ok := PredefinedThemes[name]
	return ok
}

func collection() *mongo.Collection {
	return common.Mongo.Collection(collectionName)
}

func queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Seed creates the configuration document on first startup and backfills
// predefined themes that a partial document is missing.
func Seed() error {
	ctx, cancel := queryContext()
	defer cancel()

	var doc ParameterDocument
	err := collection().FindOne(ctx, bson.M{"_id": documentID}).Decode(&doc)

	if errors.Is(err, mongo.ErrNoDocuments) {
		doc = ParameterDocument{
			ID:                        documentID,
			DefaultPlaceholders:       map[string]any{},
			ThemePlaceholders:         map[string]map[string]any{},
			InstitutionalPlaceholders: map[string]any{},
		}
		for name, theme := range PredefinedThemes {
			doc.ThemePlaceholders[name] = themeToDocument(theme)
		}

		if _, insertErr := collection().InsertOne(ctx, doc); insertErr != nil {
			slog.Error("Parameter Seed insert failed", "error", insertErr)
			return insertErr
		}

		slog.Info("Parameter document seeded", "themes", len(PredefinedThemes))
		return nil
	}

	if err != nil {
		slog.Error("Parameter Seed lookup failed", "error", err)
		return err
	}

	missing := bson.M{}
	for name, theme := range PredefinedThemes {
		if _, ok := doc.ThemePlaceholders[name]; !ok {
			missing["theme_placeholders."+name] = themeToDocument(theme)
		}
	}

	if len(missing) > 0 {
		if _, updateErr := collection().UpdateOne(ctx, bson.M{"_id": documentID}, bson.M{"$set": missing}); updateErr != nil {
			slog.Error("Parameter Seed backfill failed", "error", updateErr)
			return updateErr
		}
		slog.Info("Parameter document backfilled", "restored_themes", len(missing))
	}

	return nil
}

func themeToDocument(theme placeholder.Set) map[string]any {
	doc := make(map[string]any, len(theme))
	for key, value := range theme {
		doc[key] = value
	}
	return doc
}

func Get() (*ParameterDocument, error) {
	ctx, cancel := queryContext()
	defer cancel()

	var doc ParameterDocument
	err := collection().FindOne(ctx, bson.M{"_id": documentID}).Decode(&doc)
	if err != nil {
		slog.Error("Parameter Get failed", "error", err)
		return nil, err
	}

	return &doc, nil
}

// GetDefaults returns the default placeholder section as a Set.
func GetDefaults() (placeholder.Set, error) {
	doc, err := Get()
	if err != nil {
		return nil, err
	}
	return placeholder.FromAny(doc.DefaultPlaceholders), nil
}

// GetInstitutional returns the institutional placeholder section as a Set.
func GetInstitutional() (placeholder.Set, error) {
	doc, err := Get()
	if err != nil {
		return nil, err
	}
	return placeholder.FromAny(doc.InstitutionalPlaceholders), nil
}

func UpdateDefaults(values map[string]any) error {
	return updateSection("default_placeholders", values)
}

func UpdateInstitutional(values map[string]any) error {
	return updateSection("institutional_placeholders", values)
}

func updateSection(section string, values map[string]any) error {
	ctx, cancel := queryContext()
	defer cancel()

	_, err := collection().UpdateOne(ctx,
		bson.M{"_id": documentID},
		bson.M{"$set": bson.M{section: values}})

	if err != nil {
		slog.Error("Parameter updateSection failed", "error", err, "section", section)
		return err
	}

	slog.Info("Parameter section updated", "section", section, "keys", len(values))
	return nil
}

// ListThemes returns all theme names, sorted.
func ListThemes() ([]string, error) {
	doc, err := Get()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(doc.ThemePlaceholders))
	for name := range doc.ThemePlaceholders {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// GetTheme returns a named theme as a validated Set.
func GetTheme(name string) (placeholder.Set, error) {
	doc, err := Get()
	if err != nil {
		return nil, err
	}

	values, ok := doc.ThemePlaceholders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}

	theme := placeholder.FromAny(values)
	if err := placeholder.ValidateTheme(theme); err != nil {
		return nil, err
	}

	return theme, nil
}

// SaveTheme validates and stores a theme under its name. Dots and
// dollars are rejected because the name becomes a Mongo field path.
func SaveTheme(name string, values map[string]any) (placeholder.Set, error) {
	if strings.ContainsAny(name, ".$") {
		return nil, fmt.Errorf("%w: %s", ErrInvalidThemeName, name)
	}

	theme := placeholder.FromAny(values)
	if err := placeholder.ValidateTheme(theme); err != nil {
		return nil, err
	}

	ctx, cancel := queryContext()
	defer cancel()

	_, err := collection().UpdateOne(ctx,
		bson.M{"_id": documentID},
		bson.M{"$set": bson.M{"theme_placeholders." + name: themeToDocument(theme)}})

	if err != nil {
		slog.Error("Parameter SaveTheme failed", "error", err, "theme", name)
		return nil, err
	}

	slog.Info("Theme saved", "theme", name, "keys", len(theme))
	return theme, nil
}

// DeleteTheme removes a custom theme. Predefined themes are protected.
func DeleteTheme(name string) error {
	if IsPredefined(name) {
		return ErrPredefinedTheme
	}

	doc, err := Get()
	if err != nil {
		return err
	}
	if _, ok := doc.ThemePlaceholders[name]; !ok {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}

	ctx, cancel := queryContext()
	defer cancel()

	_, err = collection().UpdateOne(ctx,
		bson.M{"_id": documentID},
		bson.M{"$unset": bson.M{"theme_placeholders." + name: ""}})

	if err != nil {
		slog.Error("Parameter DeleteTheme failed", "error", err, "theme", name)
		return err
	}

	slog.Info("Theme deleted", "theme", name)
	return nil
}
