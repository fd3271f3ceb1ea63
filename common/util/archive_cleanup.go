package util

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/nepemufsc/nepemcert-api/common"
)

const defaultArchiveRetentionDays = 30

// StartArchiveCleanupJob starts a background job that removes old ZIP
// archives from the certificate bucket. Individual certificate PDFs are
// kept so verification links stay valid.
func StartArchiveCleanupJob() {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic occurred in archive cleanup job", "panic", r)
			}
		}()

		slog.Info("Archive cleanup job: Initial run starting")
		CleanupOldArchives()

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			slog.Info("Archive cleanup job: Scheduled run starting")
			CleanupOldArchives()
		}
	}()

	slog.Info("Archive cleanup job started successfully")
}

// CleanupOldArchives removes certificate-bucket archives older than the
// configured retention window.
func CleanupOldArchives() {
	if minioClient == nil {
		slog.Error("CleanupOldArchives: MinIO client not initialized")
		return
	}

	retentionDays := defaultArchiveRetentionDays
	if common.Config.ArchiveRetention != nil && *common.Config.ArchiveRetention > 0 {
		retentionDays = *common.Config.ArchiveRetention
	}
	maxAge := time.Duration(retentionDays) * 24 * time.Hour
	cutoff := time.Now().Add(-maxAge)

	startTime := time.Now()
	bucketName := *common.Config.BucketCertificate

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	objectCh := minioClient.ListObjects(ctx, bucketName, minio.ListObjectsOptions{
		Recursive: true,
	})

	deletedCount := 0
	failedCount := 0
	for object := range objectCh {
		if object.Err != nil {
			slog.Warn("CleanupOldArchives: error listing objects", "error", object.Err)
			continue
		}

		if !strings.HasSuffix(object.Key, ".zip") {
			continue
		}

		if object.LastModified.After(cutoff) {
			continue
		}

		if err := minioClient.RemoveObject(ctx, bucketName, object.Key, minio.RemoveObjectOptions{}); err != nil {
			slog.Warn("CleanupOldArchives: failed to delete archive", "error", err, "object", object.Key)
			failedCount++
			continue
		}
		deletedCount++
	}

	slog.Info("CleanupOldArchives: Completed",
		"deleted", deletedCount,
		"failed", failedCount,
		"retention_days", retentionDays,
		"duration", time.Since(startTime))
}
