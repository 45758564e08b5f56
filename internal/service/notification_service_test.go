package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"maternal-care-backend/config"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCredentialsMessage(t *testing.T) {
	msg, err := newCredentialsMessage("noreply@moh.lk", "kumari@example.com", "Kumari Perera", "kumari01", "s3cret")
	if err != nil {
		t.Fatalf("newCredentialsMessage() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"noreply@moh.lk",
		"kumari@example.com",
		"Subject: " + credentialsSubject,
		"Username: kumari01",
		"Message-ID:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("message missing %q:\n%s", want, out)
		}
	}
}

func TestCredentialsMessageEncodesNames(t *testing.T) {
	msg, err := newCredentialsMessage("noreply@moh.lk", "nimali@example.com", "නිමාලි", "nimali", "pw")
	if err != nil {
		t.Fatalf("newCredentialsMessage() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if !strings.Contains(strings.ToLower(buf.String()), "=?utf-8?") {
		t.Errorf("non-ASCII recipient name not encoded:\n%s", buf.String())
	}
}

func TestCredentialsMessageRejectsBadAddresses(t *testing.T) {
	if _, err := newCredentialsMessage("noreply@moh.lk", "not an address", "A", "u", "p"); err == nil {
		t.Error("bad recipient accepted")
	}
	if _, err := newCredentialsMessage("", "a@example.com", "A", "u", "p"); err == nil {
		t.Error("empty sender accepted")
	}
}

func TestNewMailClient(t *testing.T) {
	for _, policy := range []string{"", "mandatory", "opportunistic", "ssl", "none"} {
		cfg := config.SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", TLSPolicy: policy}
		if _, err := newMailClient(cfg); err != nil {
			t.Errorf("newMailClient(%q) error = %v", policy, err)
		}
	}

	if _, err := newMailClient(config.SMTPConfig{Host: "smtp.example.com", Port: 70000}); err == nil {
		t.Error("out of range port accepted")
	}
}

func TestSMTPNotifierSkipsWhenUnconfigured(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{}, newTestLogger())
	if err := n.SendMidwifeCredentials(context.Background(), "a@b.c", "A", "u", "p"); err != nil {
		t.Errorf("SendMidwifeCredentials() without SMTP host = %v, want nil", err)
	}
}

func TestSMTPNotifierHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := NewSMTPNotifier(config.SMTPConfig{Host: "127.0.0.1", Port: 2525, From: "noreply@moh.lk"}, newTestLogger())
	err := n.SendMidwifeCredentials(ctx, "a@example.com", "A", "u", "p")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("SendMidwifeCredentials() error = %v, want context.Canceled", err)
	}
}
