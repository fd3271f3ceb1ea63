package templateModel

import (
	"errors"
	"log/slog"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/type/payload"
	"github.com/nepemufsc/nepemcert-api/type/shared/model"
	"gorm.io/gorm"
)

func Create(data payload.CreateTemplatePayload, userId string) (*model.Template, error) {
	template := &model.Template{
		UserID: userId,
		Name:   data.Name,
		HTML:   data.HTML,
	}

	createErr := common.Gorm.Template.Create(template)

	if createErr != nil {
		slog.Error("Template Create", "error", createErr, "user_id", userId)
		return nil, createErr
	}

	return template, nil
}

func GetByUser(userId string) ([]*model.Template, error) {
	templates, queryErr := common.Gorm.Template.Where(common.Gorm.Template.UserID.Eq(userId)).Find()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Template GetByUser", "error", queryErr, "user_id", userId)
		return nil, queryErr
	}

	return templates, nil
}

func GetById(templateId string) (*model.Template, error) {
	template, queryErr := common.Gorm.Template.Where(common.Gorm.Template.ID.Eq(templateId)).First()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Template GetById", "error", queryErr, "template_id", templateId)
		return nil, queryErr
	}

	return template, nil
}

func Update(templateId string, data payload.UpdateTemplatePayload) (*model.Template, error) {
	updates := make(map[string]any)
	if data.Name != "" {
		updates["name"] = data.Name
	}
	if data.HTML != "" {
		updates["html"] = data.HTML
	}

	if len(updates) > 0 {
		_, updateErr := common.Gorm.Template.Where(common.Gorm.Template.ID.Eq(templateId)).Updates(updates)
		if updateErr != nil {
			slog.Error("Template Update", "error", updateErr, "template_id", templateId)
			return nil, updateErr
		}
	}

	return GetById(templateId)
}

func Delete(templateId string) error {
	_, deleteErr := common.Gorm.Template.Where(common.Gorm.Template.ID.Eq(templateId)).Delete()

	if deleteErr != nil {
		slog.Error("Template Delete", "error", deleteErr, "template_id", templateId)
		return deleteErr
	}

	return nil
}
