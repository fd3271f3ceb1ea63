package file_controller

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func UploadResource(c *fiber.Ctx) error {
	resourceType := c.Params("type")

	if resourceType != "background" && resourceType != "logo" {
		return response.SendFailed(c, "Invalid resource type")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.SendFailed(c, "No file provided")
	}

	if file.Size > 15*1024*1024 {
		return response.SendFailed(c, fmt.Sprintf("File size too large (%dMB out of 15MB)", file.Size/(1024*1024)))
	}

	ext := filepath.Ext(file.Filename)
	uniqueID := uuid.New().String()
	timeStamp := time.Now().Unix()
	objName := fmt.Sprintf("%s_%d_%s%s", resourceType, timeStamp, uniqueID, ext)

	ctx := context.Background()

	fileURL, err := util.UploadFile(ctx, *common.Config.BucketResource, objName, file)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	// Hand out the backend proxy URL, never the raw MinIO one
	proxyURL, err := util.ConvertToProxyURL(fileURL, *common.Config.BucketResource)
	if err != nil {
		proxyURL = fileURL
	}

	return response.SendSuccess(c, "Resource uploaded successfully", fiber.Map{
		"filename":    file.Filename,
		"object_name": objName,
		"url":         proxyURL,
		"size":        file.Size,
	})
}
