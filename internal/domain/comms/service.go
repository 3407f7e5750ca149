package comms

import (
	"context"
	"log/slog"
	"time"
)

// Mailer delivers one email message.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// WhatsAppGateway delivers one WhatsApp message.
type WhatsAppGateway interface {
	Send(ctx context.Context, to, message string) error
}

// NoopGateway logs instead of delivering; the default when no provider is
// configured.
type NoopGateway struct{}

func (NoopGateway) Send(ctx context.Context, to, message string) error {
	slog.Info("whatsapp delivery skipped, no gateway configured", "to", to)
	return nil
}

type Service struct {
	Store    *Store
	Mailer   Mailer
	WhatsApp WhatsAppGateway
	From     string
	now      func() time.Time
}

type ServiceOption func(*Service)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

func NewService(store *Store, mailer Mailer, whatsapp WhatsAppGateway, from string, opts ...ServiceOption) *Service {
	s := &Service{Store: store, Mailer: mailer, WhatsApp: whatsapp, From: from, now: time.Now}
	if s.WhatsApp == nil {
		s.WhatsApp = NoopGateway{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendEmail dispatches to every recipient and appends a single log entry
// whose status reflects the overall outcome.
func (s *Service) SendEmail(ctx context.Context, req SendRequest) (Log, error) {
	status := StatusSent
	for _, to := range req.Recipients {
		if err := s.Mailer.Send(ctx, s.From, to, req.Subject, req.Message); err != nil {
			slog.Warn("email delivery failed", "to", to, "err", err)
			status = StatusFailed
		}
	}
	return s.Store.Append(ctx, Log{
		Type:       ChannelEmail,
		Recipients: req.Recipients,
		Message:    req.Message,
		Subject:    req.Subject,
		Status:     status,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) SendWhatsApp(ctx context.Context, req SendRequest) (Log, error) {
	status := StatusSent
	for _, to := range req.Recipients {
		if err := s.WhatsApp.Send(ctx, to, req.Message); err != nil {
			slog.Warn("whatsapp delivery failed", "to", to, "err", err)
			status = StatusFailed
		}
	}
	return s.Store.Append(ctx, Log{
		Type:       ChannelWhatsApp,
		Recipients: req.Recipients,
		Message:    req.Message,
		Status:     status,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) Logs(ctx context.Context, channel Channel) ([]Log, error) {
	return s.Store.List(ctx, channel)
}
