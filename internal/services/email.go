package services

import (
	"fmt"
	"net/smtp"

	"meetline/internal/config"
	"meetline/internal/domain"
	"meetline/internal/meeting"
)

// EmailService handles sending emails
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendMeetingConfirmation sends a confirmation for a booked meeting request.
func (s *EmailService) SendMeetingConfirmation(m *domain.Meeting) error {
	if !s.cfg.Enabled {
		// In development mode, just log
		fmt.Printf("[EMAIL] Confirmation would be sent to %s for meeting #%d\n", m.Email, m.ID)
		return nil
	}

	date := m.ScheduleDate.Format("January 2, 2006")
	slot := meeting.SlotLabel(m.ScheduleTime)

	subject := "Your Meeting Request Confirmation"
	textBody := fmt.Sprintf(`Hello %s,

Your meeting request has been received.

Date: %s
Time: %s

We will reach you via your preferred contact method (%s).

Best regards,
The Meetline Team
`, m.FirstName, date, slot, m.ContactValue)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Meeting Request Confirmation</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #1C5D99;">Meeting Request Received</h2>
        <p>Hello %s,</p>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Date:</strong> %s</p>
            <p><strong>Time:</strong> %s</p>
            <p><strong>Contact:</strong> %s</p>
        </div>
        <p>We will reach you via your preferred contact method.</p>
        <p style="color: #64748B; font-size: 14px;">Meeting Request ID: #%d</p>
    </div>
</body>
</html>`, m.FirstName, date, slot, m.ContactValue, m.ID)

	return s.SendHTMLEmail(m.Email, subject, htmlBody, textBody)
}

// SendHTMLEmail sends an HTML email with plain text fallback
func (s *EmailService) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Would send to %s: %s\n", to, subject)
		return nil
	}

	// Validate configuration
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	// Set up authentication
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	// Build multipart message
	boundary := "----=_NextPart_1234567890"

	message := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	// Plain text part
	message += fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		textBody + "\r\n"

	// HTML part (if provided)
	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	// Send email
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsEnabled returns whether email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}
