package file_controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// DownloadFile proxies bucket objects through the backend so MinIO is
// never exposed directly.
func DownloadFile(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	objectPath := c.Params("*")

	if bucket == "" || objectPath == "" {
		slog.Warn("File download attempt with missing parameters", "bucket", bucket, "object_path", objectPath)
		return response.SendFailed(c, "Invalid file path")
	}

	validBuckets := map[string]bool{
		*common.Config.BucketCertificate: true,
		*common.Config.BucketResource:    true,
	}

	if !validBuckets[bucket] {
		slog.Warn("File download attempt with invalid bucket", "bucket", bucket)
		return response.SendFailed(c, "Invalid bucket")
	}

	ctx := context.Background()

	object, err := util.DownloadFile(ctx, bucket, objectPath)
	if err != nil {
		slog.Error("File download failed", "error", err, "bucket", bucket, "object_path", objectPath)
		return response.SendError(c, "File not found")
	}
	defer object.Close()

	objectInfo, err := object.Stat()
	if err != nil {
		slog.Error("Failed to get file stats", "error", err, "bucket", bucket, "object_path", objectPath)
		return response.SendInternalError(c, err)
	}

	contentType := "application/octet-stream"
	switch {
	case strings.HasSuffix(objectPath, ".pdf"):
		contentType = "application/pdf"
	case strings.HasSuffix(objectPath, ".zip"):
		contentType = "application/zip"
	case strings.HasSuffix(objectPath, ".png"):
		contentType = "image/png"
	case strings.HasSuffix(objectPath, ".jpg"), strings.HasSuffix(objectPath, ".jpeg"):
		contentType = "image/jpeg"
	case strings.HasSuffix(objectPath, ".svg"):
		contentType = "image/svg+xml"
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Length", fmt.Sprintf("%d", objectInfo.Size))
	c.Set("Content-Disposition", "inline")

	if _, err := io.Copy(c.Response().BodyWriter(), object); err != nil {
		slog.Error("Failed to stream file", "error", err, "bucket", bucket, "object_path", objectPath)
		return response.SendInternalError(c, err)
	}

	slog.Info("File downloaded", "bucket", bucket, "object_path", objectPath, "size", objectInfo.Size)
	return nil
}
