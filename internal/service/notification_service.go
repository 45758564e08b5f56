package service

import (
	"context"
	"fmt"

	"maternal-care-backend/config"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

const credentialsSubject = "Your Midwife Account Credentials"

// Notifier delivers account notifications to staff
type Notifier interface {
	SendMidwifeCredentials(ctx context.Context, to, fullName, username, password string) error
}

type smtpNotifier struct {
	cfg config.SMTPConfig
	log *logrus.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, log *logrus.Logger) Notifier {
	return &smtpNotifier{cfg: cfg, log: log}
}

func (n *smtpNotifier) SendMidwifeCredentials(ctx context.Context, to, fullName, username, password string) error {
	if n.cfg.Host == "" {
		n.log.Warnf("SMTP is not configured, credentials email to %s not sent", to)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := newCredentialsMessage(n.cfg.From, to, fullName, username, password)
	if err != nil {
		return err
	}

	client, err := newMailClient(n.cfg)
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send credentials email to %s: %w", to, err)
	}

	n.log.Infof("Credentials email sent to %s", to)
	return nil
}

func newCredentialsMessage(from, to, fullName, username, password string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := msg.AddToFormat(fullName, to); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(credentialsSubject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Dear %s,\n\nYour midwife account has been created.\n\nUsername: %s\nPassword: %s\n\nPlease change your password after your first login.\n",
		fullName, username, password,
	))
	return msg, nil
}

func newMailClient(cfg config.SMTPConfig) (*mail.Client, error) {
	var opts []mail.Option
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	switch cfg.TLSPolicy {
	case "ssl":
		opts = append(opts, mail.WithSSL())
	case "opportunistic":
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	case "none":
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client for %s: %w", cfg.Host, err)
	}
	return client, nil
}
