package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional mail through SendGrid
type Mailer struct {
	client      *sendgrid.Client
	senderEmail string
	systemName  string
}

func New(apiKey, senderEmail, systemName string) *Mailer {
	return &Mailer{
		client:      sendgrid.NewSendClient(apiKey),
		senderEmail: senderEmail,
		systemName:  systemName,
	}
}

// SendRecoveryKey mails the account recovery key to the user
func (m *Mailer) SendRecoveryKey(email string, recoveryKey int) error {
	from := mail.NewEmail(m.systemName, m.senderEmail)
	to := mail.NewEmail(email, email)
	subject := fmt.Sprintf("%s Account Recovery Key", m.systemName)

	plainText := "This is your recovery key. Please do not share it with anyone."
	htmlContent := fmt.Sprintf(`<div>
        <h3>Dear %s,</h3>
        <p>Here is your recovery key: <strong>%d</strong></p>
        <p>Please use this key to recover your account. Keep it secure and do not share with anyone.</p>
        <p>If you did not request for a recovery key, please ignore this email or contact our support team.</p>
        <p>Best regards,</p>
        <p>%s</p>
    </div>`, email, recoveryKey, m.systemName)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send recovery mail: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected recovery mail: status %d", resp.StatusCode)
	}

	return nil
}
