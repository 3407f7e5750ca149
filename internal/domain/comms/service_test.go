package comms

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeMailer struct {
	sent   []string
	broken map[string]bool
}

func (m *fakeMailer) Send(ctx context.Context, from, to, subject, body string) error {
	if m.broken[to] {
		return errors.New("smtp refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
}

func TestSendEmailAppendsSentLog(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewService(NewStore(), mailer, nil, "no-reply@company.com", WithClock(fixedClock))

	entry, err := svc.SendEmail(context.Background(), SendRequest{
		Recipients: []string{"a@company.com", "b@company.com"},
		Subject:    "Company Newsletter",
		Message:    "Monthly newsletter",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if entry.Status != StatusSent {
		t.Fatalf("expected sent, got %s", entry.Status)
	}
	if entry.Type != ChannelEmail || entry.Subject != "Company Newsletter" {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
	if entry.Timestamp != "2024-03-01T09:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", entry.Timestamp)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(mailer.sent))
	}
}

func TestSendEmailRecordsFailure(t *testing.T) {
	mailer := &fakeMailer{broken: map[string]bool{"bad@company.com": true}}
	svc := NewService(NewStore(), mailer, nil, "no-reply@company.com", WithClock(fixedClock))

	entry, err := svc.SendEmail(context.Background(), SendRequest{
		Recipients: []string{"good@company.com", "bad@company.com"},
		Message:    "hello",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if entry.Status != StatusFailed {
		t.Fatalf("expected failed status when any delivery fails, got %s", entry.Status)
	}
}

func TestSendWhatsAppUsesNoopGatewayByDefault(t *testing.T) {
	svc := NewService(NewStore(), &fakeMailer{}, nil, "no-reply@company.com", WithClock(fixedClock))

	entry, err := svc.SendWhatsApp(context.Background(), SendRequest{
		Recipients: []string{"Engineering"},
		Message:    "Team meeting reminder",
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if entry.Type != ChannelWhatsApp || entry.Status != StatusSent {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
	if entry.Subject != "" {
		t.Fatalf("whatsapp entries carry no subject, got %q", entry.Subject)
	}
}

func TestLogsFilterByChannel(t *testing.T) {
	svc := NewService(NewStore(), &fakeMailer{}, nil, "no-reply@company.com", WithClock(fixedClock))
	ctx := context.Background()
	if _, err := svc.SendEmail(ctx, SendRequest{Recipients: []string{"a@company.com"}, Message: "m1"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := svc.SendWhatsApp(ctx, SendRequest{Recipients: []string{"Sales"}, Message: "m2"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	all, err := svc.Logs(ctx, "")
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(all))
	}

	emails, err := svc.Logs(ctx, ChannelEmail)
	if err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if len(emails) != 1 || emails[0].Type != ChannelEmail {
		t.Fatalf("unexpected email filter result: %+v", emails)
	}
}
