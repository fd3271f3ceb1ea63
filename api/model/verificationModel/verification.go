package verificationModel

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
)

// SaveRecord stores the public lookup row for an issued code. Codes are
// unique, so a re-run of the same batch updates the existing row.
func SaveRecord(record *model.VerificationRecord) error {
	createErr := common.Gorm.VerificationRecord.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).
		Create(record)

	if createErr != nil {
		slog.Error("Verification SaveRecord", "error", createErr, "code", record.Code)
		return createErr
	}

	return nil
}

func GetByCode(code string) (*model.VerificationRecord, error) {
	record, queryErr := common.Gorm.VerificationRecord.
		Where(common.Gorm.VerificationRecord.Code.Eq(code)).
		First()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Verification GetByCode", "error", queryErr, "code", code)
		return nil, queryErr
	}

	return record, nil
}

func DeleteByParticipant(participantId string) error {
	_, deleteErr := common.Gorm.VerificationRecord.
		Where(common.Gorm.VerificationRecord.ParticipantID.Eq(participantId)).
		Delete()

	if deleteErr != nil {
		slog.Error("Verification DeleteByParticipant", "error", deleteErr, "participant_id", participantId)
		return deleteErr
	}

	return nil
}
