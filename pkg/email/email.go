package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-jobboard-backend/config"
)

// EmailService handles sending transactional emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

const baseTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .code { font-size: 28px; letter-spacing: 6px; font-weight: bold; text-align: center; padding: 15px; background: white; }
        .button { display: inline-block; padding: 12px 24px; background: #0066cc; color: white; text-decoration: none; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>{{.Title}}</h1></div>
        <div class="content">{{.Body}}</div>
        <div class="footer"><p>If you did not request this, you can safely ignore this email.</p></div>
    </div>
</body>
</html>`

type templateData struct {
	Title string
	Body  template.HTML
}

// SendTwoFactorCode emails a login verification code. Callers treat
// failures as best-effort: a send error never fails challenge creation.
func (s *EmailService) SendTwoFactorCode(to, name, code string) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your login verification code is:</p><div class="code">%s</div><p>The code expires in 5 minutes.</p>`,
		template.HTMLEscapeString(name), template.HTMLEscapeString(code))
	return s.send(to, "Your verification code", body)
}

// SendActivationLink emails the account activation link after registration.
func (s *EmailService) SendActivationLink(to, name, link string) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Welcome! Activate your account by clicking the button below.</p><p><a class="button" href="%s">Activate account</a></p><p>The link expires in 24 hours.</p>`,
		template.HTMLEscapeString(name), link)
	return s.send(to, "Activate your account", body)
}

// SendPasswordResetLink emails a password reset link.
func (s *EmailService) SendPasswordResetLink(to, name, link string) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>We received a request to reset your password.</p><p><a class="button" href="%s">Reset password</a></p><p>The link expires in 1 hour.</p>`,
		template.HTMLEscapeString(name), link)
	return s.send(to, "Reset your password", body)
}

func (s *EmailService) send(to, subject, bodyHTML string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	tmpl, err := template.New("email").Parse(baseTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, templateData{Title: subject, Body: template.HTML(bodyHTML)}); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail, to, subject, body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
