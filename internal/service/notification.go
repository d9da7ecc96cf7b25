package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// NotificationService emails the owner when a study goal is reached.
// In development, or without an API key, messages are only logged.
type NotificationService struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	isDev     bool
	appURL    string
	appName   string
}

func NewNotificationService(apiKey, fromEmail, toEmail, appURL, appName string, isDev bool) *NotificationService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &NotificationService{
		client:    client,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

// Notify implements view.Notifier.
func (s *NotificationService) Notify(ctx context.Context, subject, message string) error {
	emailSubject, body := goalCompletedEmailTemplate(subject, message, s.appURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "goal_completed", "to", s.toEmail, "subject", emailSubject)
		return nil
	}

	if s.toEmail == "" {
		slog.Debug("goal completed, no notification address configured", "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		Subject: emailSubject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "goal_completed", "to", s.toEmail)
	}
	return err
}

func goalCompletedEmailTemplate(subject, message, appURL, appName string) (string, string) {
	emailSubject := fmt.Sprintf("Study goal reached: %s", subject)
	body := fmt.Sprintf(`%s

Keep going, or set a new goal:
%s

Best,
The %s Team`, message, appURL, appName)

	return emailSubject, body
}
