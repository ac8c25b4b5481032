// Package qrpayload builds and parses the JSON carried by ticket QR codes.
package qrpayload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventTicketing/internal/models"

	"github.com/skip2/go-qrcode"
)

var (
	ErrInvalidFormat = errors.New("invalid QR code format")
	ErrMissingTicket = errors.New("QR code does not contain ticket data")
)

const DefaultSize = 256

type Payload struct {
	Ticket    string    `json:"ticket"`
	Name      string    `json:"name"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
}

func New(t models.Ticket, now time.Time) Payload {
	return Payload{
		Ticket:    t.ID,
		Name:      t.FullName,
		Event:     t.EventTitle,
		Timestamp: now,
	}
}

func (p Payload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// Parse accepts any JSON object with a non-empty "ticket" string.
// Other fields are informational and may be absent.
func Parse(raw []byte) (Payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Payload{}, ErrInvalidFormat
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var p Payload

	rawTicket, ok := fields["ticket"]
	if !ok {
		return Payload{}, ErrMissingTicket
	}
	if err := json.Unmarshal(rawTicket, &p.Ticket); err != nil || strings.TrimSpace(p.Ticket) == "" {
		return Payload{}, ErrMissingTicket
	}

	if v, ok := fields["name"]; ok {
		_ = json.Unmarshal(v, &p.Name)
	}
	if v, ok := fields["event"]; ok {
		_ = json.Unmarshal(v, &p.Event)
	}
	if v, ok := fields["timestamp"]; ok {
		_ = json.Unmarshal(v, &p.Timestamp)
	}

	return p, nil
}

// PNG renders the encoded payload as a QR image with medium error correction.
func PNG(p Payload, size int) ([]byte, error) {
	content, err := p.Encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(string(content), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return png, nil
}
