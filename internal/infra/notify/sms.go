package notify

import (
	"context"
	"log/slog"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
)

// SMS bodies above 80 bytes (EUC-KR) must be sent as LMS.
const smsMaxBytes = 80

type smsRequest struct {
	Type        string       `json:"type"`
	ContentType string       `json:"contentType"`
	CountryCode string       `json:"countryCode"`
	From        string       `json:"from"`
	Content     string       `json:"content"`
	Messages    []smsMessage `json:"messages"`
}

type smsMessage struct {
	To      string `json:"to"`
	Content string `json:"content,omitempty"`
}

// SMSSender alerts the operator numbers about every new order.
type SMSSender struct {
	sens      *sensClient
	serviceID string
	from      string
	to        []string
	loc       *time.Location
}

func NewSMSSender(cfg config.Config, clk clock.Clock, logger *slog.Logger) *SMSSender {
	return &SMSSender{
		sens:      newSENSClient(cfg, clk, logger),
		serviceID: cfg.SMS.ServiceID,
		from:      digits(cfg.SMS.From),
		to:        cfg.SMS.To,
		loc:       cfg.Ledger.Location(),
	}
}

func (s *SMSSender) Name() string { return "sms" }

func (s *SMSSender) Send(ctx context.Context, n order.Notification) error {
	content := OrderText(n, s.loc)

	messages := make([]smsMessage, 0, len(s.to))
	for _, to := range s.to {
		messages = append(messages, smsMessage{To: digits(to), Content: content})
	}

	return s.sens.post(ctx, "/sms/v2/services/"+s.serviceID+"/messages", smsRequest{
		Type:        smsType(content),
		ContentType: "COMM",
		CountryCode: "82",
		From:        s.from,
		Content:     content,
		Messages:    messages,
	})
}

func smsType(content string) string {
	size := 0
	for _, r := range content {
		if r < 0x80 {
			size++
		} else {
			size += 2
		}
	}
	if size > smsMaxBytes {
		return "LMS"
	}
	return "SMS"
}

// digits strips separators such as dashes from a phone number.
func digits(phone string) string {
	out := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			out = append(out, phone[i])
		}
	}
	return string(out)
}
