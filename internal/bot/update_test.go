package bot

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCommands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Inbound
	}{
		{"Start", "/start", Inbound{Kind: KindCommand, Command: "/start"}},
		{"Help", "/help", Inbound{Kind: KindCommand, Command: "/help"}},
		{"Privacy", "/privacy", Inbound{Kind: KindCommand, Command: "/privacy"}},
		{"Dev", "/dev", Inbound{Kind: KindCommand, Command: "/dev"}},
		{"StartPadded", "  /start \n", Inbound{Kind: KindCommand, Command: "/start"}},

		// Near-commands are literal QR payloads
		{"StartWithArgument", "/start now", Inbound{Kind: KindText, Text: "/start now"}},
		{"UppercaseStart", "/START", Inbound{Kind: KindText, Text: "/START"}},
		{"UnknownCommand", "/settings", Inbound{Kind: KindText, Text: "/settings"}},
		{"PlainText", "hello", Inbound{Kind: KindText, Text: "hello"}},
		{"URL", "https://example.com", Inbound{Kind: KindText, Text: "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := &Update{Message: &Message{Text: tt.text, Chat: Chat{ID: 1}}}
			assert.Equal(t, tt.expected, Classify(update))
		})
	}
}

func TestClassifyNoMessage(t *testing.T) {
	assert.Equal(t, Inbound{Kind: KindUnsupported}, Classify(nil))
	assert.Equal(t, Inbound{Kind: KindUnsupported}, Classify(&Update{}))
}

func TestClassifyEmptyMessage(t *testing.T) {
	update := &Update{Message: &Message{Chat: Chat{ID: 1}}}
	assert.Equal(t, Inbound{Kind: KindUnsupported}, Classify(update))
}

// TestClassifyPhotoPicksLastSize checks that the highest-resolution
// variant (the last array entry) is always selected.
func TestClassifyPhotoPicksLastSize(t *testing.T) {
	for _, count := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("Sizes%d", count), func(t *testing.T) {
			var sizes []PhotoSize
			for i := 0; i < count; i++ {
				sizes = append(sizes, PhotoSize{
					FileID: fmt.Sprintf("file-%d", i),
					Width:  90 * (i + 1),
					Height: 90 * (i + 1),
				})
			}
			update := &Update{Message: &Message{Photo: sizes, Chat: Chat{ID: 1}}}

			result := Classify(update)
			assert.Equal(t, KindPhoto, result.Kind)
			assert.Equal(t, fmt.Sprintf("file-%d", count-1), result.FileID)
		})
	}
}

// TestClassifyTextPrecedence checks that a message carrying both text
// and photo fields is classified by its text.
func TestClassifyTextPrecedence(t *testing.T) {
	update := &Update{Message: &Message{
		Text:  "caption text",
		Photo: []PhotoSize{{FileID: "file-0"}},
		Chat:  Chat{ID: 1},
	}}

	result := Classify(update)
	assert.Equal(t, KindText, result.Kind)
	assert.Equal(t, "caption text", result.Text)
	assert.Empty(t, result.FileID)
}

func TestUpdateLanguage(t *testing.T) {
	update := &Update{Message: &Message{From: &User{LanguageCode: "pt-br"}}}
	assert.Equal(t, "pt-br", update.Language())

	assert.Equal(t, "", (&Update{}).Language())
	assert.Equal(t, "", (&Update{Message: &Message{}}).Language())
}

func TestUpdateChatID(t *testing.T) {
	update := &Update{Message: &Message{Chat: Chat{ID: 42}}}
	assert.Equal(t, int64(42), update.ChatID())
	assert.Equal(t, int64(0), (&Update{}).ChatID())
}
