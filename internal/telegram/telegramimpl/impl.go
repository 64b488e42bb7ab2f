package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/whispr-campus/whispr/internal/telegram"
	"github.com/whispr-campus/whispr/pkg/config"
	"github.com/whispr-campus/whispr/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// TelegramImpl sends alerts through a bot. TgBot is nil when no token is
// configured, in which case alerts are only logged.
type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) *TelegramImpl {
	log := opts.Logger.WithComponent("Telegram")

	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram token not configured, alerts will only be logged")
		return &TelegramImpl{Logger: log, Config: opts.Config}
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot, alerts will only be logged", "error", err)
		return &TelegramImpl{Logger: log, Config: opts.Config}
	}

	return NewWithBot(tgBot, opts.Config, log)
}

func NewWithBot(bot *tgbotapi.BotAPI, cfg *config.Config, log logger.Logger) *TelegramImpl {
	return &TelegramImpl{
		TgBot:  bot,
		Logger: log,
		Config: cfg,
	}
}

var _ telegram.Client = (*TelegramImpl)(nil)
