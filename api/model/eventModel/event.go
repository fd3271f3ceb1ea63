package eventModel

import (
	"errors"
	"log/slog"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
	"gorm.io/gorm"
)

func Create(data payload.CreateEventPayload, userId string) (*model.Event, error) {
	event := &model.Event{
		UserID:     userId,
		TemplateID: data.TemplateID,
		Name:       data.Name,
		Local:      data.Local,
		City:       data.City,
		EventDate:  data.EventDate,
		Workload:   data.Workload,
		ThemeName:  data.ThemeName,
	}

	createErr := common.Gorm.Event.Create(event)

	if createErr != nil {
		slog.Error("Event Create", "error", createErr, "user_id", userId)
		return nil, createErr
	}

	return event, nil
}

func GetByUser(userId string) ([]*model.Event, error) {
	events, queryErr := common.Gorm.Event.Where(common.Gorm.Event.UserID.Eq(userId)).Find()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetByUser", "error", queryErr, "user_id", userId)
		return nil, queryErr
	}

	return events, nil
}

func GetById(eventId string) (*model.Event, error) {
	event, queryErr := common.Gorm.Event.Where(common.Gorm.Event.ID.Eq(eventId)).First()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Event GetById", "error", queryErr, "event_id", eventId)
		return nil, queryErr
	}

	return event, nil
}

func Update(eventId string, data payload.UpdateEventPayload) (*model.Event, error) {
	updates := make(map[string]any)
	if data.Name != "" {
		updates["name"] = data.Name
	}
	if data.TemplateID != "" {
		updates["template_id"] = data.TemplateID
	}
	if data.Local != "" {
		updates["local"] = data.Local
	}
	if data.City != "" {
		updates["city"] = data.City
	}
	if data.EventDate != "" {
		updates["event_date"] = data.EventDate
	}
	if data.Workload != "" {
		updates["workload"] = data.Workload
	}
	if data.ThemeName != "" {
		updates["theme_name"] = data.ThemeName
	}

	if len(updates) > 0 {
		_, updateErr := common.Gorm.Event.Where(common.Gorm.Event.ID.Eq(eventId)).Updates(updates)
		if updateErr != nil {
			slog.Error("Event Update", "error", updateErr, "event_id", eventId)
			return nil, updateErr
		}
	}

	return GetById(eventId)
}

func SetArchiveURL(eventId string, archiveURL string) error {
	_, updateErr := common.Gorm.Event.
		Where(common.Gorm.Event.ID.Eq(eventId)).
		Update(common.Gorm.Event.ArchiveURL, archiveURL)

	if updateErr != nil {
		slog.Error("Event SetArchiveURL", "error", updateErr, "event_id", eventId)
		return updateErr
	}

	return nil
}

func Delete(eventId string) error {
	_, deleteErr := common.Gorm.Event.Where(common.Gorm.Event.ID.Eq(eventId)).Delete()

	if deleteErr != nil {
		slog.Error("Event Delete", "error", deleteErr, "event_id", eventId)
		return deleteErr
	}

	return nil
}
