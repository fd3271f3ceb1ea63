package file_controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

func GetAllResourceByType(c *fiber.Ctx) error {
	resourceType := c.Params("type")

	if resourceType != "background" && resourceType != "logo" {
		return response.SendFailed(c, "Invalid resource type")
	}

	ctx := context.Background()

	minioURLs, err := util.ListFilesByPrefix(ctx, *common.Config.BucketResource, resourceType, 0)
	if err != nil {
		return response.SendInternalError(c, err)
	}

	proxyURLs := make([]string, len(minioURLs))
	for i, minioURL := range minioURLs {
		proxyURL, convertErr := util.ConvertToProxyURL(minioURL, *common.Config.BucketResource)
		if convertErr != nil {
			proxyURLs[i] = minioURL
		} else {
			proxyURLs[i] = proxyURL
		}
	}

	return response.SendSuccess(c, "Resources retrieved successfully", fiber.Map{
		"type":  resourceType,
		"count": len(proxyURLs),
		"files": proxyURLs,
	})
}
