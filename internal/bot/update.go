package bot

import "strings"

// Telegram Bot API payloads, reduced to the fields the bot reads.

type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

type Message struct {
	MessageID int64       `json:"message_id"`
	From      *User       `json:"from,omitempty"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type User struct {
	ID           int64  `json:"id"`
	LanguageCode string `json:"language_code,omitempty"`
}

// PhotoSize is one resolution variant of an uploaded photo. Telegram
// sends the variants ordered from smallest to largest.
type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Kind tags an Inbound variant.
type Kind int

const (
	KindUnsupported Kind = iota
	KindCommand
	KindText
	KindPhoto
)

// Inbound is the classified form of an update. Exactly one variant is
// produced per update; the payload fields of the other variants stay
// zero.
type Inbound struct {
	Kind    Kind
	Command string // KindCommand: the command token, e.g. "/start"
	Text    string // KindText: the literal text to encode
	FileID  string // KindPhoto: highest-resolution photo file id
}

var commands = map[string]bool{
	"/start":   true,
	"/help":    true,
	"/privacy": true,
	"/dev":     true,
}

// Classify reduces a raw update to its Inbound variant. Text takes
// precedence over photo; command matching is exact and case-sensitive
// on the trimmed text, and anything else with a text field is treated
// as a literal QR payload. Photo messages keep the last array entry,
// the highest resolution, to favor decode fidelity.
func Classify(update *Update) Inbound {
	if update == nil || update.Message == nil {
		return Inbound{Kind: KindUnsupported}
	}

	message := update.Message

	if message.Text != "" {
		if trimmed := strings.TrimSpace(message.Text); commands[trimmed] {
			return Inbound{Kind: KindCommand, Command: trimmed}
		}
		return Inbound{Kind: KindText, Text: message.Text}
	}

	if len(message.Photo) > 0 {
		return Inbound{Kind: KindPhoto, FileID: message.Photo[len(message.Photo)-1].FileID}
	}

	return Inbound{Kind: KindUnsupported}
}

// Language returns the sender's declared locale tag, or "" when the
// update carries none.
func (u *Update) Language() string {
	if u == nil || u.Message == nil || u.Message.From == nil {
		return ""
	}
	return u.Message.From.LanguageCode
}

// ChatID returns the chat the update belongs to.
func (u *Update) ChatID() int64 {
	if u == nil || u.Message == nil {
		return 0
	}
	return u.Message.Chat.ID
}
