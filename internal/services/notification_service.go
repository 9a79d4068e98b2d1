// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/autovista/dealership-backend/internal/config"
	"github.com/autovista/dealership-backend/internal/models"
)

// NotificationService sends transactional mail. Delivery failures are
// logged, never surfaced: a lost notification must not fail the request
// that triggered it.
type NotificationService struct {
	cfg *config.EmailConfig
}

func NewNotificationService(cfg *config.EmailConfig) *NotificationService {
	return &NotificationService{cfg: cfg}
}

var contactAlertTemplate = template.Must(template.New("contact_alert").Parse(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>New contact message</h2>
	<p><strong>Name:</strong> {{.Name}}</p>
	<p><strong>Email:</strong> {{.Email}}</p>
	{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
	<p><strong>Message:</strong></p>
	<p>{{.Message}}</p>
	<p><strong>Received:</strong> {{.Date.Format "2006-01-02 15:04"}}</p>
</body>
</html>
`))

var welcomeTemplate = template.Must(template.New("subscriber_welcome").Parse(`
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Welcome to {{.FromName}}</h2>
	<p>Thanks for subscribing. You will hear from us when new vehicles and promotions arrive.</p>
</body>
</html>
`))

// NotifyContactMessage alerts the sales inbox about a new contact message.
func (s *NotificationService) NotifyContactMessage(msg *models.ContactMessage) {
	var body bytes.Buffer
	if err := contactAlertTemplate.Execute(&body, msg); err != nil {
		logrus.WithError(err).Error("Failed to render contact alert email")
		return
	}

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	if err := s.send(s.cfg.ContactInbox, subject, body.String()); err != nil {
		logrus.WithError(err).WithField("email", msg.Email).Error("Failed to send contact alert")
	}
}

// SendWelcome greets a new subscriber.
func (s *NotificationService) SendWelcome(sub *models.Subscriber) {
	var body bytes.Buffer
	data := struct{ FromName string }{FromName: s.cfg.FromName}
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		logrus.WithError(err).Error("Failed to render welcome email")
		return
	}

	if err := s.send(sub.Email, "Welcome to "+s.cfg.FromName, body.String()); err != nil {
		logrus.WithError(err).WithField("email", sub.Email).Error("Failed to send welcome email")
	}
}

func (s *NotificationService) send(to, subject, htmlBody string) error {
	if s.cfg.SMTPUsername == "" {
		logrus.WithField("to", to).Debug("SMTP not configured, skipping email")
		return nil
	}

	from := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	msg := []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody,
	)

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	return smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, msg)
}
