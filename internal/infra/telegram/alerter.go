// Package telegram sends admin alerts to a Telegram chat.
package telegram

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dcars/config"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// maxMessageLength is Telegram's limit for a text message in UTF-16 units; runes are a safe approximation.
const maxMessageLength = 4096

type botAlerter struct {
	bot    *telego.Bot
	chatID int64
	prefix string
	logger *slog.Logger
}

// NewBotAlerter creates an alerter that posts to chatID. apiServer overrides the Bot API host when non-empty.
func NewBotAlerter(token string, chatID int64, prefix, apiServer string, logger *slog.Logger) (service.AdminAlerter, error) {
	opts := []telego.BotOption{}
	if apiServer != "" {
		opts = append(opts, telego.WithAPIServer(apiServer))
	}

	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	return &botAlerter{
		bot:    bot,
		chatID: chatID,
		prefix: prefix,
		logger: logger,
	}, nil
}

func (a *botAlerter) Alert(ctx context.Context, text string) error {
	msg := text
	if a.prefix != "" {
		msg = "[" + a.prefix + "] " + text
	}

	if _, err := a.bot.SendMessage(ctx, tu.Message(tu.ID(a.chatID), truncate(msg, maxMessageLength))); err != nil {
		a.logger.Warn("[Telegram] Failed to send alert", slog.Any("error", err))

		return errors.Wrap(err, "failed to send telegram alert")
	}

	return nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)

	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}

// noopAlerter logs alerts when Telegram is disabled.
type noopAlerter struct {
	logger *slog.Logger
}

func (a *noopAlerter) Alert(_ context.Context, text string) error {
	a.logger.Debug("[Telegram] Alerts disabled, skipping", slog.String("text", text))

	return nil
}

// NewAdminAlerter picks the Telegram alerter when enabled and configured, or a no-op otherwise.
func NewAdminAlerter(cfg *config.Config, logger *slog.Logger) (service.AdminAlerter, error) {
	tg := cfg.Telegram
	if tg == nil || !tg.Enabled || tg.Token == "" || tg.AdminChatID == 0 {
		logger.Info("Telegram alerts not configured, using no-op alerter")

		return &noopAlerter{logger: logger}, nil
	}

	return NewBotAlerter(tg.Token, tg.AdminChatID, cfg.Env.ServiceName, "", logger)
}
