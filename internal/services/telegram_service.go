package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chronos/internal/models"
)

// TelegramService pushes dashboard events to a single operations chat.
// All sends are fire-and-forget: a delivery failure is logged and never
// affects the state change that triggered it.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramService returns nil when the integration is not configured;
// a nil receiver is safe to call.
func NewTelegramService(botToken string, chatID int64) *TelegramService {
	if botToken == "" || chatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init][err] %v", err)
		return nil
	}
	return &TelegramService{bot: bot, chatID: chatID}
}

func (t *TelegramService) send(text string) {
	if t == nil || t.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send][err] %v", err)
	}
}

func (t *TelegramService) NotifyTaskCompleted(task *models.Task) {
	if t == nil || task == nil {
		return
	}
	t.send(fmt.Sprintf("✅ Task completed\n• <b>%s</b>\n• Category: <code>%s</code>\n• Actual: <code>%.1f min</code> (est. %.0f)",
		task.Title, task.Category, task.ActualTime, task.EstimatedTime))
}

func (t *TelegramService) NotifyOverdueBills(bills []models.UtilityBill) {
	if t == nil || len(bills) == 0 {
		return
	}
	text := "⚠️ Overdue bills\n"
	var total float64
	for _, b := range bills {
		text += fmt.Sprintf("• %s (%s) — <code>%.0f</code>, due %s\n", b.Type, b.Location, b.Amount, b.DueDate)
		total += b.Amount
	}
	text += fmt.Sprintf("Total: <code>%.0f</code>", total)
	t.send(text)
}
