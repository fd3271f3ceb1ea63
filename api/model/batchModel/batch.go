package batchModel

import (
	"errors"
	"log/slog"
	"time"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
	"gorm.io/gorm"
)

func Create(eventId string, total int32) (*model.BatchRun, error) {
	run := &model.BatchRun{
		EventID: eventId,
		Status:  "running",
		Total:   total,
	}

	createErr := common.Gorm.BatchRun.Create(run)

	if createErr != nil {
		slog.Error("BatchRun Create", "error", createErr, "event_id", eventId)
		return nil, createErr
	}

	return run, nil
}

func GetById(batchId string) (*model.BatchRun, error) {
	run, queryErr := common.Gorm.BatchRun.Where(common.Gorm.BatchRun.ID.Eq(batchId)).First()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("BatchRun GetById", "error", queryErr, "batch_id", batchId)
		return nil, queryErr
	}

	return run, nil
}

func GetByEvent(eventId string) ([]*model.BatchRun, error) {
	runs, queryErr := common.Gorm.BatchRun.
		Where(common.Gorm.BatchRun.EventID.Eq(eventId)).
		Order(common.Gorm.BatchRun.StartedAt.Desc()).
		Find()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("BatchRun GetByEvent", "error", queryErr, "event_id", eventId)
		return nil, queryErr
	}

	return runs, nil
}

// HasRunning reports whether the event already has a batch in flight.
func HasRunning(eventId string) (bool, error) {
	count, queryErr := common.Gorm.BatchRun.
		Where(common.Gorm.BatchRun.EventID.Eq(eventId)).
		Where(common.Gorm.BatchRun.Status.Eq("running")).
		Count()

	if queryErr != nil {
		slog.Error("BatchRun HasRunning", "error", queryErr, "event_id", eventId)
		return false, queryErr
	}

	return count > 0, nil
}

func Finalize(batchId string, succeeded int32, failed int32, archiveURL string, failReason string) error {
	status := "completed"
	if failReason != "" {
		status = "failed"
	}

	now := time.Now()
	_, updateErr := common.Gorm.BatchRun.
		Where(common.Gorm.BatchRun.ID.Eq(batchId)).
		Updates(map[string]any{
			"status":      status,
			"succeeded":   succeeded,
			"failed":      failed,
			"archive_url": archiveURL,
			"fail_reason": failReason,
			"finished_at": &now,
		})

	if updateErr != nil {
		slog.Error("BatchRun Finalize", "error", updateErr, "batch_id", batchId)
		return updateErr
	}

	return nil
}
