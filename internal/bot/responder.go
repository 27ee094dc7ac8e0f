package bot

import (
	"net/url"

	"github.com/ribassu/qrcodenextbot/internal/i18n"
	"github.com/ribassu/qrcodenextbot/internal/logger"
)

// Encoder turns text into a QR-code PNG image.
type Encoder interface {
	Encode(content string) ([]byte, error)
}

// Decoder extracts the QR-code payload from image bytes.
type Decoder interface {
	Decode(data []byte) (string, error)
}

// FileFetcher resolves a Telegram file id and downloads its bytes.
type FileFetcher interface {
	FetchFile(fileID string) ([]byte, error)
}

// ResponseKind tags a Response variant.
type ResponseKind int

const (
	ResponseText ResponseKind = iota
	ResponsePhoto
)

// Button is an inline URL button attached to a response.
type Button struct {
	Label string
	URL   string
}

// Response is the outbound payload composed for one update. It is
// built once and consumed once by a transport shell.
type Response struct {
	Kind   ResponseKind
	Text   string // message body, or photo caption
	Photo  []byte // ResponsePhoto only
	HTML   bool
	Button *Button
}

// Responder composes the outbound response for a classified update.
type Responder struct {
	encoder Encoder
	reader  Decoder
	files   FileFetcher
	pageURL string
	log     logger.Logger
}

// NewResponder creates a responder. pageURL is the public base URL of
// the QR image endpoint, used for the "QR Code Link" button.
func NewResponder(encoder Encoder, reader Decoder, files FileFetcher, pageURL string, log logger.Logger) *Responder {
	return &Responder{
		encoder: encoder,
		reader:  reader,
		files:   files,
		pageURL: pageURL,
		log:     log,
	}
}

// Respond builds the response for one update. A nil response means the
// update is ignored and nothing is sent.
func (r *Responder) Respond(in Inbound, lang i18n.Lang) *Response {
	switch in.Kind {
	case KindCommand:
		return r.command(in.Command, lang)
	case KindText:
		return r.textToQR(in.Text, lang)
	case KindPhoto:
		return r.photoToText(in.FileID, lang)
	default:
		return nil
	}
}

func (r *Responder) command(command string, lang i18n.Lang) *Response {
	switch command {
	case "/start":
		return &Response{
			Kind: ResponseText,
			Text: i18n.Lookup(lang, "start_message"),
			HTML: true,
		}
	case "/help":
		return &Response{
			Kind: ResponseText,
			Text: i18n.Lookup(lang, "help_message"),
			HTML: true,
		}
	case "/privacy":
		return &Response{
			Kind: ResponseText,
			Text: i18n.Lookup(lang, "privacy_message"),
			HTML: true,
			Button: &Button{
				Label: i18n.Lookup(lang, "privacy_btn"),
				URL:   i18n.Lookup(lang, "privacy_link"),
			},
		}
	case "/dev":
		return &Response{
			Kind: ResponseText,
			Text: i18n.Lookup(lang, "dev_message"),
			HTML: true,
			Button: &Button{
				Label: i18n.Lookup(lang, "dev_btn"),
				URL:   i18n.Lookup(lang, "dev_link"),
			},
		}
	}
	// Classify only emits known commands
	return nil
}

// textToQR encodes the literal text as a QR image. Encoder failures
// degrade to a localized error message.
func (r *Responder) textToQR(text string, lang i18n.Lang) *Response {
	image, err := r.encoder.Encode(text)
	if err != nil {
		r.log.Errorf("Error generating QR code: %v", err)
		return &Response{Kind: ResponseText, Text: i18n.Lookup(lang, "error_generate_qrcode")}
	}

	return &Response{
		Kind:  ResponsePhoto,
		Text:  i18n.Lookup(lang, "qrcode_message"),
		Photo: image,
		HTML:  true,
		Button: &Button{
			Label: i18n.Lookup(lang, "qrcode_btn_text"),
			URL:   r.pageURL + "/?text=" + url.QueryEscape(text),
		},
	}
}

// photoToText downloads the submitted photo and reads the QR code in
// it. A failed download and a failed decode are distinct error
// classes with distinct user messages.
func (r *Responder) photoToText(fileID string, lang i18n.Lang) *Response {
	data, err := r.files.FetchFile(fileID)
	if err != nil {
		r.log.Errorf("Error fetching photo %s: %v", fileID, err)
		return &Response{Kind: ResponseText, Text: i18n.Lookup(lang, "error_processing_qrcode")}
	}

	decoded, err := r.reader.Decode(data)
	if err != nil || decoded == "" {
		if err != nil {
			r.log.Errorf("Error reading QR code: %v", err)
		}
		return &Response{Kind: ResponseText, Text: i18n.Lookup(lang, "error_read_qrcode")}
	}

	return &Response{Kind: ResponseText, Text: i18n.Lookup(lang, "qrcode_content") + decoded}
}
