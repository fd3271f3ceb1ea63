package file_controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nepemufsc/nepemcert-api/api/model/participantModel"
	"github.com/nepemufsc/nepemcert-api/common"
	"github.com/nepemufsc/nepemcert-api/common/util"
	"github.com/nepemufsc/nepemcert-api/type/response"
)

// FileController carries the participant repository for the public
// certificate download.
type FileController struct {
	participantRepo participantModel.IParticipantRepository
}

func NewFileController(participantRepo participantModel.IParticipantRepository) *FileController {
	return &FileController{participantRepo: participantRepo}
}

// PublicDownloadCertificate serves a generated certificate to its
// participant without authentication. The participant id is the only
// credential, so only successfully generated certificates are served.
func (fc *FileController) PublicDownloadCertificate(c *fiber.Ctx) error {
	participantId := c.Params("participantId")

	if participantId == "" {
		slog.Warn("Public certificate download attempt without participant ID")
		return response.SendFailed(c, "Participant ID is required")
	}

	participant, err := fc.participantRepo.GetById(participantId)
	if err != nil {
		return response.SendInternalError(c, err)
	}
	if participant == nil {
		slog.Warn("Public certificate download: participant not found", "participant_id", participantId)
		return response.SendError(c, "Certificate not found")
	}

	if participant.Status != "success" || participant.CertificateURL == "" {
		slog.Warn("Public certificate download: certificate not available",
			"participant_id", participantId,
			"status", participant.Status)
		return response.SendError(c, "Certificate not available")
	}

	objectPath, extractErr := certificateObjectPath(participant.CertificateURL)
	if extractErr != nil {
		slog.Error("Failed to extract object path from certificate URL",
			"error", extractErr,
			"participant_id", participantId,
			"certificate_url", participant.CertificateURL)
		return response.SendInternalError(c, extractErr)
	}

	ctx := context.Background()

	object, downloadErr := util.DownloadFile(ctx, *common.Config.BucketCertificate, objectPath)
	if downloadErr != nil {
		slog.Error("Public certificate download failed",
			"error", downloadErr,
			"participant_id", participantId,
			"object_path", objectPath)
		return response.SendError(c, "Certificate file not found")
	}
	defer object.Close()

	objectInfo, statErr := object.Stat()
	if statErr != nil {
		return response.SendInternalError(c, statErr)
	}

	parts := strings.Split(objectPath, "/")
	filename := parts[len(parts)-1]

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Length", fmt.Sprintf("%d", objectInfo.Size))
	c.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")

	if _, copyErr := io.Copy(c.Response().BodyWriter(), object); copyErr != nil {
		slog.Error("Failed to stream certificate file",
			"error", copyErr,
			"participant_id", participantId,
			"object_path", objectPath)
		return response.SendInternalError(c, copyErr)
	}

	slog.Info("Public certificate downloaded", "participant_id", participantId, "object_path", objectPath)
	return nil
}

// certificateObjectPath handles both proxy URLs and direct MinIO URLs
// stored on the participant row.
func certificateObjectPath(certificateURL string) (string, error) {
	if strings.Contains(certificateURL, "/files/download/") {
		parts := strings.Split(certificateURL, "/files/download/")
		if len(parts) != 2 {
			return "", fmt.Errorf("invalid proxy URL format")
		}

		bucketPrefix := *common.Config.BucketCertificate + "/"
		if !strings.HasPrefix(parts[1], bucketPrefix) {
			return "", fmt.Errorf("proxy URL bucket mismatch")
		}

		return strings.TrimPrefix(parts[1], bucketPrefix), nil
	}

	return util.ExtractObjectNameFromURL(certificateURL, *common.Config.BucketCertificate)
}
