package comms

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

type DeliveryStatus string

const (
	StatusSent    DeliveryStatus = "sent"
	StatusFailed  DeliveryStatus = "failed"
	StatusPending DeliveryStatus = "pending"
)

// Log is one entry of the append-only communication log.
type Log struct {
	ID         string         `json:"id"`
	Type       Channel        `json:"type"`
	Recipients []string       `json:"recipients"`
	Message    string         `json:"message"`
	Subject    string         `json:"subject,omitempty"`
	Status     DeliveryStatus `json:"status"`
	Timestamp  string         `json:"timestamp"`
}

type SendRequest struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
}
