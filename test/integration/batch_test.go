package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nepemufsc/nepemcert-api/api/model/batchModel"
	"github.com/nepemufsc/nepemcert-api/api/model/verificationModel"
	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/test/helpers"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
	"github.com/nepemufsc/nepemcert-api/type/shared/query"
)

// TestBatchRun_Lifecycle drives a batch run row through its states via
// the model package, with the package-level query bound to the test
// database.
func TestBatchRun_Lifecycle(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	common.Gorm = query.Use(db)

	event := helpers.SeedTestEvent(t, db)

	batch, err := batchModel.Create(event.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, "running", batch.Status)
	assert.Equal(t, int32(3), batch.Total)

	running, err := batchModel.HasRunning(event.ID)
	require.NoError(t, err)
	assert.True(t, running)

	err = batchModel.Finalize(batch.ID, 2, 1, "https://minio.local/certificates/event-1/certificados.zip", "")
	require.NoError(t, err)

	finalized, err := batchModel.GetById(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", finalized.Status)
	assert.Equal(t, int32(2), finalized.Succeeded)
	assert.Equal(t, int32(1), finalized.Failed)
	assert.NotNil(t, finalized.FinishedAt)

	running, err = batchModel.HasRunning(event.ID)
	require.NoError(t, err)
	assert.False(t, running)
}

// TestBatchRun_FailedRun records a batch-fatal failure reason
func TestBatchRun_FailedRun(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	common.Gorm = query.Use(db)

	event := helpers.SeedTestEvent(t, db)

	batch, err := batchModel.Create(event.ID, 5)
	require.NoError(t, err)

	err = batchModel.Finalize(batch.ID, 0, 5, "", "invalid theme: forbidden keys: margin")
	require.NoError(t, err)

	finalized, err := batchModel.GetById(batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", finalized.Status)
	assert.Contains(t, finalized.FailReason, "margin")
}

// TestVerificationRecord_UpsertAndLookup covers the code lookup the
// public verify endpoint serves
func TestVerificationRecord_UpsertAndLookup(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)

	common.Gorm = query.Use(db)

	event := helpers.SeedTestEvent(t, db)

	record := &model.VerificationRecord{
		ID:              "record-1",
		Code:            "A7KPQ2XWMN5B",
		ParticipantID:   "participant-1",
		ParticipantName: "Ana Costa",
		EventName:       event.Name,
		EmissionDate:    "30/08/2026",
		VerifyURL:       "https://certificados.nepemufsc.com/verificar-certificados?codigo=A7KPQ2XWMN5B",
	}
	require.NoError(t, verificationModel.SaveRecord(record))

	found, err := verificationModel.GetByCode("A7KPQ2XWMN5B")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana Costa", found.ParticipantName)
	assert.Equal(t, event.Name, found.EventName)

	// Re-issuing the same code updates the record instead of duplicating it
	record.ParticipantName = "Ana C. Costa"
	require.NoError(t, verificationModel.SaveRecord(record))

	found, err = verificationModel.GetByCode("A7KPQ2XWMN5B")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana C. Costa", found.ParticipantName)

	missing, err := verificationModel.GetByCode("ZZZZZZZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
