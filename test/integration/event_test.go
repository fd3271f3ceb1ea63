package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepemufsc/nepemcert-api/test/helpers"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

// TestEvent_CreateAndRetrieve tests basic CRUD operations
func TestEvent_CreateAndRetrieve(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)

	var retrieved model.Event
	err := db.Where("id = ?", event.ID).First(&retrieved).Error
	require.NoError(t, err, "Failed to retrieve event")

	assert.Equal(t, event.ID, retrieved.ID)
	assert.Equal(t, "Workshop de Análise de Dados", retrieved.Name)
	assert.Equal(t, "Florianópolis", retrieved.City)
	assert.Equal(t, "20 horas", retrieved.Workload)
}

// TestEvent_GetByUser tests filtering events by user
func TestEvent_GetByUser(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	seeded := helpers.SeedTestEvent(t, db)

	other := &model.User{
		ID:        "user-2",
		Username:  "outro",
		Email:     "outro@nepemufsc.com",
		Password:  "hashed",
		Firstname: "João",
		Lastname:  "Souza",
	}
	require.NoError(t, db.Create(other).Error)

	events := []model.Event{
		{ID: "event-2", UserID: seeded.UserID, TemplateID: seeded.TemplateID, Name: "Curso de Extensão"},
		{ID: "event-3", UserID: other.ID, TemplateID: seeded.TemplateID, Name: "Palestra"},
	}
	for _, event := range events {
		require.NoError(t, db.Create(&event).Error)
	}

	var owned []model.Event
	err := db.Where("user_id = ?", seeded.UserID).Find(&owned).Error
	require.NoError(t, err)

	assert.Len(t, owned, 2)
}

// TestEvent_UpdateArchiveURL tests the archive URL update after a batch run
func TestEvent_UpdateArchiveURL(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)

	err := db.Model(&model.Event{}).
		Where("id = ?", event.ID).
		Update("archive_url", "https://minio.local/certificates/event-1/certificados.zip").Error
	require.NoError(t, err)

	var updated model.Event
	require.NoError(t, db.Where("id = ?", event.ID).First(&updated).Error)
	assert.Contains(t, updated.ArchiveURL, "certificados.zip")
}

// TestEvent_DeleteCascadesNothing tests that deleting an event leaves
// other users' rows alone
func TestEvent_Delete(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)

	helpers.AssertRecordExists(t, db, &model.Event{}, "id = ?", event.ID)

	err := db.Where("id = ?", event.ID).Delete(&model.Event{}).Error
	require.NoError(t, err)

	helpers.AssertRecordNotExists(t, db, &model.Event{}, "id = ?", event.ID)
}
