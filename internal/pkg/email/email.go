package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendWelcomeEmail(toEmail, toName string) error
	SendApprovalEmail(toEmail, toName string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// PortalURL is linked from the mail body.
	PortalURL string
}

// Enabled reports whether enough is configured to talk to a server.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// sendFunc matches smtp.SendMail so tests can capture outgoing mail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	send   sendFunc
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
		send:   smtp.SendMail,
	}
}

var mailTemplate = template.Must(template.New("mail").Parse(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #2e7d32;">{{.Heading}}</h2>
		<p>Hello {{.Name}},</p>
		<p>{{.Body}}</p>
		{{if .PortalURL}}<p><a href="{{.PortalURL}}">Open the ZP School Portal</a></p>{{end}}
		<p>Regards,<br>Konaseema ZP Schools</p>
	</div>
</body>
</html>`))

type mailData struct {
	Heading   string
	Name      string
	Body      string
	PortalURL string
}

// SendWelcomeEmail greets a newly registered member.
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, toName string) error {
	return s.deliver(toEmail, "Welcome to the ZP School Portal", mailData{
		Heading: "Welcome!",
		Name:    toName,
		Body:    "Your registration was received. Alumni accounts become visible in the network once an administrator approves them.",
	})
}

// SendApprovalEmail tells an alumni member that their account was approved.
func (s *EmailServiceImpl) SendApprovalEmail(toEmail, toName string) error {
	return s.deliver(toEmail, "Your alumni account has been approved", mailData{
		Heading: "Account approved",
		Name:    toName,
		Body:    "An administrator approved your alumni account. You now appear in the alumni network of your school.",
	})
}

func (s *EmailServiceImpl) deliver(toEmail, subject string, data mailData) error {
	if !s.config.Enabled() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	data.PortalURL = s.config.PortalURL
	var body bytes.Buffer
	if err := mailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	return s.sendHTMLEmail(toEmail, subject, body.String())
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	var message bytes.Buffer
	fmt.Fprintf(&message, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&message, "To: %s\r\n", toEmail)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	message.WriteString(htmlBody)

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	if err := s.send(serverAddress, auth, s.config.FromEmail, []string{toEmail}, message.Bytes()); err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
