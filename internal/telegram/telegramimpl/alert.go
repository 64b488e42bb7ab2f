package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/whispr-campus/whispr/pkg/formatter"
)

// SendAlert formats the alert as MarkdownV2 and sends it to the configured
// user, or to the channel when no user is set.
func (tg *TelegramImpl) SendAlert(title, details string) {
	if tg.TgBot == nil {
		tg.Logger.Warn("Alert not delivered, telegram disabled", "title", title, "details", details)
		return
	}

	text := fmt.Sprintf("*%s*\n%s", formatter.EscapeMarkdownV2(title), formatter.EscapeMarkdownV2(details))

	var msg tgbotapi.MessageConfig
	switch {
	case tg.Config.Telegram.User != 0:
		msg = tgbotapi.NewMessage(tg.Config.Telegram.User, text)
	case tg.Config.Telegram.Channel != "":
		msg = tgbotapi.NewMessageToChannel("@"+tg.Config.Telegram.Channel, text)
	default:
		tg.Logger.Warn("Alert not delivered, no telegram recipient configured", "title", title)
		return
	}
	msg.ParseMode = tgbotapi.ModeMarkdownV2

	sent, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending alert", "title", title, "error", err)
		return
	}

	tg.Logger.Info("Alert sent", "title", title, "messageID", sent.MessageID)
}
