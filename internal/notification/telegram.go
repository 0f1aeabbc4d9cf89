package notification

import (
	"context"
	"fmt"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateFormat = "02 Jan 2006"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b.Requester.TelegramChatID, createdText(b))
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, change domain.StatusChange) {
	n.send(ctx, b.Requester.TelegramChatID, statusText(b, change))
}

func (n *TelegramNotifier) NotifyRefundComputed(ctx context.Context, b *domain.Booking) {
	if b.Cancellation == nil {
		return
	}
	n.send(ctx, b.Requester.TelegramChatID, refundText(b))
}

func createdText(b *domain.Booking) string {
	return fmt.Sprintf(
		"*Booking received*\n\n"+"Booking: %s\n"+"Confirmation code: %s\n"+"Dates: %s to %s\n"+"Total: %s %s\n"+"Complete payment to confirm your booking.",
		b.BookingNumber,
		b.ConfirmationCode,
		b.Dates.Start.Format(dateFormat),
		b.Dates.End.Format(dateFormat),
		b.Pricing.Total.StringFixed(domain.MinorUnits(b.Pricing.Currency)),
		b.Pricing.Currency,
	)
}

func statusText(b *domain.Booking, change domain.StatusChange) string {
	text := fmt.Sprintf(
		"*Booking %s is now %s*\n\n"+"Dates: %s to %s",
		b.BookingNumber,
		statusLabel(change.To),
		b.Dates.Start.Format(dateFormat),
		b.Dates.End.Format(dateFormat),
	)
	if change.Reason != "" {
		text += "\nReason: " + change.Reason
	}
	return text
}

func refundText(b *domain.Booking) string {
	c := b.Cancellation
	if c.Percentage == 0 {
		return fmt.Sprintf("*Booking %s cancelled*\n\nNo refund applies %d day(s) before start.",
			b.BookingNumber, c.DaysBeforeStart)
	}
	return fmt.Sprintf(
		"*Refund for booking %s*\n\n"+"Refund: %s %s (%d%%)\n"+"The refund is being processed.",
		b.BookingNumber,
		c.Amount.StringFixed(domain.MinorUnits(c.Currency)),
		c.Currency,
		c.Percentage,
	)
}

func statusLabel(s domain.BookingStatus) string {
	switch s {
	case domain.BookingStatusPaymentPending:
		return "awaiting payment"
	case domain.BookingStatusCheckedIn:
		return "checked in"
	case domain.BookingStatusInProgress:
		return "in progress"
	case domain.BookingStatusNoShow:
		return "marked as no-show"
	default:
		return string(s)
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
