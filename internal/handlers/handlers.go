package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ribassu/qrcodenextbot/internal/bot"
	"github.com/ribassu/qrcodenextbot/internal/i18n"
	"github.com/ribassu/qrcodenextbot/internal/logger"
	"github.com/ribassu/qrcodenextbot/internal/telegram"
)

const banner = "QR Code Bot"

// Sender delivers outbound calls to the Telegram Bot API.
type Sender interface {
	SendMessage(chatID int64, text string, opts *telegram.SendOptions) error
	SendPhoto(chatID int64, photo []byte, caption string, opts *telegram.SendOptions) error
	SetWebhook(target string) ([]byte, error)
}

type Handler struct {
	logger    logger.Logger
	generator bot.Encoder
	responder *bot.Responder
	sender    Sender
}

func NewHandler(logger logger.Logger, generator bot.Encoder, responder *bot.Responder, sender Sender) *Handler {
	return &Handler{logger, generator, responder, sender}
}

// NewRouter builds the full webhook-deployment surface: the QR image
// endpoint, the Telegram webhook, webhook registration, and a banner
// for everything else.
func NewRouter(logger logger.Logger, generator bot.Encoder, responder *bot.Responder, sender Sender) chi.Router {
	r := chi.NewRouter()

	handler := NewHandler(logger, generator, responder, sender)

	r.Get("/", handler.QRImageHandler)
	r.Post("/webhook", handler.WebhookHandler)
	r.Get("/setWebhook", handler.SetWebhookHandler)
	r.NotFound(handler.BannerHandler)
	r.MethodNotAllowed(handler.BannerHandler)

	return r
}

// NewImageRouter builds the surface of the long-running deployment,
// which receives updates over long polling and only serves QR images
// over HTTP.
func NewImageRouter(logger logger.Logger, generator bot.Encoder) chi.Router {
	r := chi.NewRouter()

	handler := NewHandler(logger, generator, nil, nil)

	r.Get("/", handler.QRImageHandler)
	r.NotFound(handler.BannerHandler)
	r.MethodNotAllowed(handler.BannerHandler)

	return r
}

// QRImageHandler renders the text query parameter as a QR-code PNG.
func (h *Handler) QRImageHandler(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		http.Error(w, `The "text" parameter is required.`, http.StatusBadRequest)
		return
	}

	image, err := h.generator.Encode(text)
	if err != nil {
		h.logger.Errorf("Error generating QR code: %v", err)
		http.Error(w, "Error generating QR Code.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(image); err != nil {
		h.logger.Errorf("Error writing response: %v", err)
	}
}

// WebhookHandler processes one Telegram update. Unparsable bodies are
// a 500; everything past parsing answers 200, with business failures
// already degraded to localized messages by the responder.
func (h *Handler) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Errorf("Error reading webhook body: %v", err)
		h.webhookError(w)
		return
	}

	var update bot.Update
	if err := json.Unmarshal(body, &update); err != nil {
		h.logger.Errorf("Error parsing webhook body: %v", err)
		h.webhookError(w)
		return
	}

	inbound := bot.Classify(&update)
	if inbound.Kind != bot.KindUnsupported {
		lang := i18n.Resolve(update.Language())
		if response := h.responder.Respond(inbound, lang); response != nil {
			h.deliver(update.ChatID(), response)
		}
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Errorf("Error writing response: %v", err)
	}
}

// deliver pushes a composed response out through the sender. Delivery
// failures are logged; a lost message must not fail the webhook call.
func (h *Handler) deliver(chatID int64, response *bot.Response) {
	opts := &telegram.SendOptions{HTML: response.HTML}
	if response.Button != nil {
		opts.Button = &telegram.InlineButton{
			Text: response.Button.Label,
			URL:  response.Button.URL,
		}
	}

	var err error
	switch response.Kind {
	case bot.ResponsePhoto:
		err = h.sender.SendPhoto(chatID, response.Photo, response.Text, opts)
	default:
		err = h.sender.SendMessage(chatID, response.Text, opts)
	}
	if err != nil {
		h.logger.Errorf("Error delivering response to chat %d: %v", chatID, err)
	}
}

// SetWebhookHandler registers this deployment's /webhook URL with the
// Bot API and relays the raw response.
func (h *Handler) SetWebhookHandler(w http.ResponseWriter, r *http.Request) {
	target := originOf(r) + "/webhook"
	h.logger.Infof("Registering webhook %s", target)

	body, err := h.sender.SetWebhook(target)
	if err != nil {
		h.logger.Errorf("Error registering webhook: %v", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		h.logger.Errorf("Error writing response: %v", err)
	}
}

// BannerHandler answers anything outside the known surface.
func (h *Handler) BannerHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(banner)); err != nil {
		h.logger.Errorf("Error writing response: %v", err)
	}
}

func (h *Handler) webhookError(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Error"))
}

func originOf(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}
