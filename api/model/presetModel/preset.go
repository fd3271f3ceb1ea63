// Package presetModel stores named generation presets in Mongo.
package presetModel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/payload"
)

const collectionName = "presets"

var ErrPresetNotFound = errors.New("preset not found")

// Preset bundles template, theme and event metadata for reuse.
type Preset struct {
	Slug       string    `bson:"_id" json:"slug"`
	Name       string    `bson:"name" json:"name"`
	TemplateID string    `bson:"template_id" json:"template_id"`
	ThemeName  string    `bson:"theme_name" json:"theme_name"`
	Local      string    `bson:"local" json:"local"`
	City       string    `bson:"city" json:"city"`
	Workload   string    `bson:"workload" json:"workload"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

func collection() *mongo.Collection {
	return common.Mongo.Collection(collectionName)
}

func queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Save upserts a preset under its slugified name.
func Save(data payload.SavePresetPayload) (*Preset, error) {
	preset := &Preset{
		Slug:       util.Slugify(data.Name),
		Name:       data.Name,
		TemplateID: data.TemplateID,
		ThemeName:  data.ThemeName,
		Local:      data.Local,
		City:       data.City,
		Workload:   data.Workload,
		UpdatedAt:  time.Now(),
	}

	ctx, cancel := queryContext()
	defer cancel()

	_, err := collection().ReplaceOne(ctx,
		bson.M{"_id": preset.Slug},
		preset,
		options.Replace().SetUpsert(true))

	if err != nil {
		slog.Error("Preset Save failed", "error", err, "slug", preset.Slug)
		return nil, err
	}

	slog.Info("Preset saved", "slug", preset.Slug)
	return preset, nil
}

func Get(slug string) (*Preset, error) {
	ctx, cancel := queryContext()
	defer cancel()

	var preset Preset
	err := collection().FindOne(ctx, bson.M{"_id": slug}).Decode(&preset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		slog.Error("Preset Get failed", "error", err, "slug", slug)
		return nil, err
	}

	return &preset, nil
}

func List() ([]*Preset, error) {
	ctx, cancel := queryContext()
	defer cancel()

	cursor, err := collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		slog.Error("Preset List failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var presets []*Preset
	if err := cursor.All(ctx, &presets); err != nil {
		slog.Error("Preset List cursor failed", "error", err)
		return nil, err
	}

	return presets, nil
}

func Delete(slug string) error {
	ctx, cancel := queryContext()
	defer cancel()

	result, err := collection().DeleteOne(ctx, bson.M{"_id": slug})
	if err != nil {
		slog.Error("Preset Delete failed", "error", err, "slug", slug)
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPresetNotFound
	}

	slog.Info("Preset deleted", "slug", slug)
	return nil
}
