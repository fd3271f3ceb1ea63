package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/internal/ingest"
	"github.com/nepemufsc/nepemcert-api/test/helpers"
	"github.com/nepemufsc/nepemcert-api/type/shared/query"
)

// TestParticipantRepository_AddAndList exercises the repository against
// a real database: upload rows, read them back in line order.
func TestParticipantRepository_AddAndList(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)
	repo := participantModel.NewParticipantRepository(query.Use(db))

	rows := []ingest.Row{
		{Line: 1, Name: "Ana Costa"},
		{Line: 2, Name: "Bruno Lima"},
		{Line: 3, Name: "Carla Mendes"},
	}

	created, err := repo.AddParticipants(event.ID, rows)
	require.NoError(t, err)
	assert.Len(t, created, 3)

	listed, err := repo.GetByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, "Ana Costa", listed[0].Name)
	assert.Equal(t, int32(1), listed[0].Line)
	assert.Equal(t, "pending", listed[0].Status)
	assert.Equal(t, "Carla Mendes", listed[2].Name)
}

// TestParticipantRepository_ReplaceOnReupload verifies a second upload
// replaces the first one's rows
func TestParticipantRepository_ReplaceOnReupload(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)
	repo := participantModel.NewParticipantRepository(query.Use(db))

	_, err := repo.AddParticipants(event.ID, []ingest.Row{
		{Line: 1, Name: "Ana Costa"},
		{Line: 2, Name: "Bruno Lima"},
	})
	require.NoError(t, err)

	deleted, err := repo.DeleteByEvent(event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = repo.AddParticipants(event.ID, []ingest.Row{
		{Line: 1, Name: "Daniel Rocha"},
	})
	require.NoError(t, err)

	listed, err := repo.GetByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Daniel Rocha", listed[0].Name)
}

// TestParticipantRepository_StatusTransitions covers the pending →
// success/failed transitions the batch pipeline drives
func TestParticipantRepository_StatusTransitions(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)
	repo := participantModel.NewParticipantRepository(query.Use(db))

	created, err := repo.AddParticipants(event.ID, []ingest.Row{
		{Line: 1, Name: "Ana Costa"},
		{Line: 2, Name: "Bruno Lima"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.MarkDone(created[0].ID, "A7KPQ2XWMN5B", "https://minio.local/certificates/event-1/a.pdf"))
	require.NoError(t, repo.MarkFailed(created[1].ID, "render failed"))

	listed, err := repo.GetByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	assert.Equal(t, "success", listed[0].Status)
	assert.Equal(t, "A7KPQ2XWMN5B", listed[0].Code)
	assert.Equal(t, "failed", listed[1].Status)
	assert.Equal(t, "render failed", listed[1].FailReason)

	require.NoError(t, repo.ResetStatuses(event.ID))

	listed, err = repo.GetByEvent(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", listed[0].Status)
	assert.Empty(t, listed[0].Code)
	assert.Equal(t, "pending", listed[1].Status)
	assert.Empty(t, listed[1].FailReason)
}

// TestParticipantRepository_DeleteById removes a single participant
func TestParticipantRepository_DeleteById(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	event := helpers.SeedTestEvent(t, db)
	repo := participantModel.NewParticipantRepository(query.Use(db))

	created, err := repo.AddParticipants(event.ID, []ingest.Row{
		{Line: 1, Name: "Ana Costa"},
		{Line: 2, Name: "Bruno Lima"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteById(created[0].ID))

	listed, err := repo.GetByEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Bruno Lima", listed[0].Name)
}
