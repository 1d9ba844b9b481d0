package notify

import (
	"fmt"
	"time"

	"order-notifier/internal/domain/order"
	"order-notifier/internal/usecase"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// Message is a Slack incoming webhook payload.
type Message struct {
	Text   string  `json:"text,omitempty"`
	Blocks []Block `json:"blocks,omitempty"`
}

type Block struct {
	Type     string       `json:"type"`
	Text     *TextObject  `json:"text,omitempty"`
	Elements []TextObject `json:"elements,omitempty"`
}

type TextObject struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

func header(text string) Block {
	return Block{Type: "header", Text: &TextObject{Type: "plain_text", Text: text, Emoji: true}}
}

func section(text string) Block {
	return Block{Type: "section", Text: &TextObject{Type: "mrkdwn", Text: text}}
}

func contextLine(text string) Block {
	return Block{Type: "context", Elements: []TextObject{{Type: "mrkdwn", Text: text}}}
}

func StartupMessage() Message {
	return Message{Blocks: []Block{
		header("🚀 주문 관리 프로그램 시작"),
		section("주문 모니터링이 시작되었습니다.\n주문이 들어오면 알림을 보내드리겠습니다."),
		contextLine("✅ 시스템이 정상적으로 실행 중입니다."),
	}}
}

func ShutdownMessage(at time.Time, loc *time.Location) Message {
	return Message{Blocks: []Block{
		header("🛑 주문 관리 프로그램 종료"),
		section("주문 모니터링이 종료되었습니다."),
		contextLine("종료 시각: " + at.In(loc).Format(displayTimeLayout)),
	}}
}

func TokenRefreshMessage(ev usecase.RefreshEvent, loc *time.Location) Message {
	if ev.Success {
		return Message{Blocks: []Block{
			section("🔄 *토큰 갱신 완료*\n토큰이 성공적으로 갱신되었습니다."),
			contextLine("갱신 시각: " + ev.At.In(loc).Format(displayTimeLayout)),
		}}
	}

	detail := "unknown"
	if ev.Err != nil {
		detail = ev.Err.Error()
	}
	return Message{Blocks: []Block{
		section("⚠️ *토큰 갱신 실패*\n토큰 갱신 중 오류가 발생했습니다."),
		section("오류 메시지: " + detail),
		contextLine("발생 시각: " + ev.At.In(loc).Format(displayTimeLayout)),
	}}
}

// OrderText renders the operator facing order summary shared by Slack and SMS.
func OrderText(n order.Notification, loc *time.Location) string {
	return fmt.Sprintf("주문ID: %s\n주문일자: %s\n주문자: %s \n전화번호: (%s)\n상품명: %s\n옵션: %s",
		n.ProductOrderID,
		formatOrderDate(n.OrderDate, loc),
		n.OrdererName,
		n.OrdererTel,
		n.ProductName,
		n.ProductOption,
	)
}

func OrderMessage(n order.Notification, loc *time.Location) Message {
	return Message{Text: OrderText(n, loc)}
}

func formatOrderDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.In(loc).Format(displayTimeLayout)
}
