package renderer

import (
	"context"

	"github.com/nepemufsc/nepemcert-api/common/util"
)

// MinioStorage stores batch artifacts in a MinIO bucket.
type MinioStorage struct {
	Bucket string
}

func (s *MinioStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	return util.UploadBytes(ctx, s.Bucket, objectName, data, contentType)
}
