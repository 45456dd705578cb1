package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/raushankrgupta/product-clipper/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGrid mails notifications at or above a minimum severity
type SendGrid struct {
	APIKey      string
	FromName    string
	FromEmail   string
	ToName      string
	ToEmail     string
	MinSeverity Severity
}

// NewSendGrid builds the mail notifier from the configuration
func NewSendGrid(cfg *config.Config) *SendGrid {
	return &SendGrid{
		APIKey:      cfg.SendGridAPIKey,
		FromName:    "Product Clipper",
		FromEmail:   cfg.FromEmail,
		ToName:      cfg.NotifyName,
		ToEmail:     cfg.NotifyEmail,
		MinSeverity: Severity(cfg.NotifyLevel),
	}
}

func severityRank(s Severity) int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeveritySuccess:
		return 1
	default:
		return 0
	}
}

// Wants reports whether the notification passes the severity filter
func (s *SendGrid) Wants(n Notification) bool {
	return severityRank(n.Severity) >= severityRank(s.MinSeverity)
}

func (s *SendGrid) Notify(ctx context.Context, n Notification) error {
	if !s.Wants(n) {
		return nil
	}
	if s.APIKey == "" {
		return fmt.Errorf("sendgrid: API key is not set")
	}

	from := mail.NewEmail(s.FromName, s.FromEmail)
	to := mail.NewEmail(s.ToName, s.ToEmail)
	subject := fmt.Sprintf("%s %s", n.Severity.Icon(), n.Title)
	htmlContent := fmt.Sprintf("<strong>%s</strong><p>%s</p>", html.EscapeString(n.Title), html.EscapeString(n.Message))
	message := mail.NewSingleEmail(from, subject, to, n.Message, htmlContent)

	client := sendgrid.NewSendClient(s.APIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", s.ToEmail, err)
		return err
	}

	if response.StatusCode >= 400 {
		log.Printf("SendGrid API Error: Status Code %d, Body: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid: failed to send notification, status code: %d", response.StatusCode)
	}

	return nil
}
