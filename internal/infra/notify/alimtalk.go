package notify

import (
	"context"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
)

type alimTalkRequest struct {
	PlusFriendID string            `json:"plusFriendId"`
	TemplateCode string            `json:"templateCode"`
	Messages     []alimTalkMessage `json:"messages"`
}

type alimTalkMessage struct {
	To      string           `json:"to"`
	Content string           `json:"content"`
	Buttons []alimTalkButton `json:"buttons,omitempty"`
}

type alimTalkButton struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	LinkMobile string `json:"linkMobile,omitempty"`
	LinkPC     string `json:"linkPc,omitempty"`
}

// alimTalkData is what the content template sees.
type alimTalkData struct {
	order.Notification
	OrderDateText string
}

// AlimTalkSender sends the buyer a KakaoTalk template message.
type AlimTalkSender struct {
	sens         *sensClient
	serviceID    string
	plusFriendID string
	templateCode string
	content      *template.Template
	buttons      []alimTalkButton
	loc          *time.Location
}

func NewAlimTalkSender(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*AlimTalkSender, error) {
	tmpl, err := template.New("alimtalk").Option("missingkey=error").Parse(cfg.AlimTalk.Content)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse ALIMTALK_CONTENT"), errs.ErrInvalidConfig)
	}

	var buttons []alimTalkButton
	if cfg.AlimTalk.ButtonName != "" && cfg.AlimTalk.ButtonURL != "" {
		pc := cfg.AlimTalk.ButtonPCURL
		if pc == "" {
			pc = cfg.AlimTalk.ButtonURL
		}
		buttons = append(buttons, alimTalkButton{
			Type:       "WL",
			Name:       cfg.AlimTalk.ButtonName,
			LinkMobile: cfg.AlimTalk.ButtonURL,
			LinkPC:     pc,
		})
	}

	return &AlimTalkSender{
		sens:         newSENSClient(cfg, clk, logger),
		serviceID:    cfg.AlimTalk.ServiceID,
		plusFriendID: cfg.AlimTalk.PlusFriendID,
		templateCode: cfg.AlimTalk.TemplateCode,
		content:      tmpl,
		buttons:      buttons,
		loc:          cfg.Ledger.Location(),
	}, nil
}

func (s *AlimTalkSender) Name() string { return "alimtalk" }

func (s *AlimTalkSender) Send(ctx context.Context, n order.Notification) error {
	to := digits(n.OrdererTel)
	if to == "" {
		return errs.Newf("order %s has no orderer phone number", n.ProductOrderID)
	}

	var content strings.Builder
	if err := s.content.Execute(&content, alimTalkData{
		Notification:  n,
		OrderDateText: formatOrderDate(n.OrderDate, s.loc),
	}); err != nil {
		return errs.Wrap(err, "render alimtalk content")
	}

	return s.sens.post(ctx, "/alimtalk/v2/services/"+s.serviceID+"/messages", alimTalkRequest{
		PlusFriendID: s.plusFriendID,
		TemplateCode: s.templateCode,
		Messages: []alimTalkMessage{{
			To:      to,
			Content: content.String(),
			Buttons: s.buttons,
		}},
	})
}
