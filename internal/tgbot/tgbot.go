package tgbot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ribassu/qrcodenextbot/internal/bot"
	"github.com/ribassu/qrcodenextbot/internal/i18n"
	"github.com/ribassu/qrcodenextbot/internal/logger"
	tele "gopkg.in/telebot.v3"
)

// QRBot is the long-polling deployment of the bot.
type QRBot struct {
	bot       *tele.Bot
	responder *bot.Responder
	logger    logger.Logger
}

// NewQRBot creates the long-polling bot.
func NewQRBot(token string, responder *bot.Responder, logger logger.Logger) (*QRBot, error) {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &QRBot{
		bot:       b,
		responder: responder,
		logger:    logger,
	}, nil
}

// Start registers the handlers and runs the poller.
func (qb *QRBot) Start() error {
	qb.logger.Info("Starting QR bot")

	// Every handler funnels into the same classify/respond pipeline,
	// so a command with trailing arguments falls through to the
	// text-to-QR path exactly like in the webhook deployment.
	qb.bot.Handle("/start", qb.handleUpdate)
	qb.bot.Handle("/help", qb.handleUpdate)
	qb.bot.Handle("/privacy", qb.handleUpdate)
	qb.bot.Handle("/dev", qb.handleUpdate)
	qb.bot.Handle(tele.OnText, qb.handleUpdate)
	qb.bot.Handle(tele.OnPhoto, qb.handleUpdate)

	go qb.bot.Start()

	return nil
}

// Stop stops the poller.
func (qb *QRBot) Stop() error {
	qb.logger.Info("Stopping QR bot")
	qb.bot.Stop()
	return nil
}

// handleUpdate adapts a telebot message into the shared core and
// delivers the composed response.
func (qb *QRBot) handleUpdate(c tele.Context) error {
	update := messageToUpdate(c.Message())

	inbound := bot.Classify(update)
	if inbound.Kind == bot.KindUnsupported {
		return nil
	}

	lang := i18n.Resolve(update.Language())
	qb.logger.Debugf("Handling %v update in chat %d", inbound.Kind, update.ChatID())

	response := qb.responder.Respond(inbound, lang)
	if response == nil {
		return nil
	}

	return qb.send(c, response)
}

func (qb *QRBot) send(c tele.Context, response *bot.Response) error {
	opts := &tele.SendOptions{}
	if response.HTML {
		opts.ParseMode = tele.ModeHTML
	}
	if response.Button != nil {
		opts.ReplyMarkup = &tele.ReplyMarkup{
			InlineKeyboard: [][]tele.InlineButton{{{
				Text: response.Button.Label,
				URL:  response.Button.URL,
			}}},
		}
	}

	if response.Kind == bot.ResponsePhoto {
		photo := &tele.Photo{
			File:    tele.FromReader(bytes.NewReader(response.Photo)),
			Caption: response.Text,
		}
		return c.Send(photo, opts)
	}

	return c.Send(response.Text, opts)
}

// messageToUpdate maps a telebot message onto the raw update shape the
// core classifies. telebot keeps only the largest photo size, so the
// resulting photo array has at most one entry.
func messageToUpdate(msg *tele.Message) *bot.Update {
	if msg == nil {
		return &bot.Update{}
	}

	message := &bot.Message{
		MessageID: int64(msg.ID),
		Text:      msg.Text,
	}
	if msg.Chat != nil {
		message.Chat = bot.Chat{ID: msg.Chat.ID}
	}
	if msg.Sender != nil {
		message.From = &bot.User{
			ID:           msg.Sender.ID,
			LanguageCode: msg.Sender.LanguageCode,
		}
	}
	if msg.Photo != nil {
		message.Photo = []bot.PhotoSize{{
			FileID: msg.Photo.FileID,
			Width:  msg.Photo.Width,
			Height: msg.Photo.Height,
		}}
	}

	return &bot.Update{Message: message}
}
