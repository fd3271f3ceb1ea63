package file_controller

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func DeleteResource(c *fiber.Ctx) error {
	resourceType := c.Params("type")

	if resourceType != "background" && resourceType != "logo" {
		return response.SendFailed(c, "Invalid resource type")
	}

	type DeleteRequest struct {
		URL        string `json:"url"`
		ObjectName string `json:"object_name"`
	}

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.SendFailed(c, "Invalid request body")
	}

	if req.URL == "" && req.ObjectName == "" {
		return response.SendFailed(c, "Either 'url' or 'object_name' must be provided")
	}

	var objectName string
	if req.URL != "" {
		extracted, err := util.ExtractObjectNameFromURL(req.URL, *common.Config.BucketResource)
		if err != nil {
			return response.SendFailed(c, "Invalid URL format")
		}
		objectName = extracted
	} else {
		objectName = req.ObjectName
	}

	// Object names are prefixed with their resource type on upload
	if !strings.HasPrefix(objectName, resourceType) {
		return response.SendFailed(c, "Object does not match the specified resource type")
	}

	ctx := context.Background()

	if err := util.DeleteFile(ctx, *common.Config.BucketResource, objectName); err != nil {
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Resource deleted successfully", fiber.Map{
		"object_name": objectName,
		"type":        resourceType,
	})
}
