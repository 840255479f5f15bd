package notification

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SocietyBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

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

func (n *TelegramNotifier) NotifyEntry(ctx context.Context, member *domain.Member, entry *domain.Entry) {
	text := EntryText(entry)
	if text == "" {
		return
	}
	if err := n.send(ctx, member.TelegramChatID, text); err != nil && !errors.Is(err, domain.ErrNoDeliveryChannel) {
		n.logger.Error("failed to send booking notification",
			logger.String("entry_id", entry.ID),
			logger.String("error", err.Error()),
		)
	}
}

// SendCode delivers a login code. With the bot disabled the code only goes
// to the debug log, which is how local setups sign in.
func (n *TelegramNotifier) SendCode(ctx context.Context, member *domain.Member, code string) error {
	if n.bot == nil {
		n.logger.Debug("login code not delivered (bot disabled)",
			logger.String("member_id", member.ID),
			logger.String("code", code),
		)
		return nil
	}

	text := fmt.Sprintf("*Код входа:* `%s`\n\nНикому не сообщайте этот код.", code)
	if err := n.send(ctx, member.TelegramChatID, text); err != nil {
		return fmt.Errorf("deliver code: %w", err)
	}
	return nil
}

// EntryText renders the message for an entry's current status, or "" when
// the status is not worth a message.
func EntryText(e *domain.Entry) string {
	var title string
	switch e.Status {
	case domain.EntryPending:
		title = "Заявка отправлена на согласование"
	case domain.EntryApproved:
		title = "Заявка одобрена"
	case domain.EntryConfirmed:
		title = "Бронирование подтверждено!"
	case domain.EntryRejected:
		title = "Заявка отклонена"
	case domain.EntryCancelled:
		title = "Бронирование отменено"
	case domain.EntryReleased:
		title = "Бронирование завершено"
	default:
		return ""
	}

	text := fmt.Sprintf("*%s*\n\nТип: %s\nКвартира: %s", title, classTitle(e.Class), e.UnitID)
	if e.EffectiveAt != nil {
		text += "\nДата (время указано в UTC): " + e.EffectiveAt.Format("02.01.2006 15:04")
	}
	if e.PaymentStatus == domain.PaymentUnpaid {
		text += "\nК оплате: " + e.Amount.StringFixed(2)
	}
	return text
}

func classTitle(c domain.ResourceClass) string {
	switch c {
	case domain.ClassAmenitySlot:
		return "удобство"
	case domain.ClassParkingSpot:
		return "парковочное место"
	case domain.ClassEvent:
		return "мероприятие"
	}
	return string(c)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return domain.ErrNoDeliveryChannel
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return err
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
