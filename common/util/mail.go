package util

import (
	"fmt"
	"log/slog"

	"github.com/nepemufsc/nepemcert-api/common"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// SendBatchSummary mails the event owner a summary of a finished batch run.
func SendBatchSummary(recipient string, eventName string, succeeded int, failed int, archiveURL string) error {
	if common.Dialer == nil {
		return fmt.Errorf("mail dialer not initialized")
	}

	body := fmt.Sprintf(`
		<p>A geração de certificados do evento <b>%s</b> foi concluída.</p>
		<p>Certificados gerados: %d<br>Falhas: %d</p>`, eventName, succeeded, failed)

	if archiveURL != "" {
		body += fmt.Sprintf(`<p>Arquivo ZIP com todos os certificados: <a href="%s">download</a></p>`, archiveURL)
	}

	body += `<p>Equipe NEPEMCERT</p>`

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", *common.Config.MailUser)
	mailer.SetHeader("To", recipient)
	mailer.SetHeader("Subject", fmt.Sprintf("Certificados gerados: %s", eventName))
	mailer.SetBody("text/html", body)

	if err := common.Dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error sending batch summary mail", "error", err, "recipient", recipient)
		return err
	}

	slog.Info("Batch summary mail sent", "recipient", recipient, "event", eventName)
	return nil
}
