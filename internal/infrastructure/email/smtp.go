package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/kolhub/kolhub/internal/application/subscription/usecases"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/config"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/services/markdown"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPReminderSender mails expiry reminders to brand contacts.
type SMTPReminderSender struct {
	config   config.EmailConfig
	dialer   dialer
	renderer *markdown.Renderer
	logger   logger.Interface
}

func NewSMTPReminderSender(cfg config.EmailConfig, log logger.Interface) *SMTPReminderSender {
	return &SMTPReminderSender{
		config:   cfg,
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		renderer: markdown.NewRenderer(),
		logger:   log,
	}
}

func (s *SMTPReminderSender) SendExpiryReminder(ctx context.Context, msg usecases.ReminderMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("expiry reminder sent", "to", msg.To, "days_remaining", msg.DaysRemaining)
	return nil
}

func (s *SMTPReminderSender) buildMessage(msg usecases.ReminderMessage) (*gomail.Message, error) {
	htmlBody, err := s.renderer.Render(s.markdownBody(msg))
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", reminderSubject(msg))
	m.SetBody("text/plain", s.plainBody(msg))
	m.AddAlternative("text/html", htmlBody)
	return m, nil
}

func reminderSubject(msg usecases.ReminderMessage) string {
	if msg.DaysRemaining <= 0 {
		return fmt.Sprintf("[KOLHub] %s: subscription expired", msg.BrandName)
	}
	return fmt.Sprintf("[KOLHub] %s: subscription expires in %d days", msg.BrandName, msg.DaysRemaining)
}

func (s *SMTPReminderSender) markdownBody(msg usecases.ReminderMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Subscription reminder for %s\n\n", escapeMarkdown(msg.BrandName))
	fmt.Fprintf(&b, "%s\n\n", msg.Text)
	fmt.Fprintf(&b, "Plan: **%s**\n", msg.PlanType)
	fmt.Fprintf(&b, "Expires: %s\n\n", formatExpiry(msg))
	if s.config.RenewURL != "" {
		fmt.Fprintf(&b, "[Renew your subscription](%s)\n", s.config.RenewURL)
	}
	return b.String()
}

func (s *SMTPReminderSender) plainBody(msg usecases.ReminderMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subscription reminder for %s\n\n", msg.BrandName)
	fmt.Fprintf(&b, "%s\n\n", msg.Text)
	fmt.Fprintf(&b, "Plan: %s\n", msg.PlanType)
	fmt.Fprintf(&b, "Expires: %s\n", formatExpiry(msg))
	if s.config.RenewURL != "" {
		fmt.Fprintf(&b, "\nRenew your subscription: %s\n", s.config.RenewURL)
	}
	return b.String()
}

func formatExpiry(msg usecases.ReminderMessage) string {
	return msg.ExpiresAt.In(biztime.Location()).Format("2006-01-02 15:04 MST")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`, "`", "\\`", "#", `\#`,
)

// escapeMarkdown keeps brand names from being read as markup.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
