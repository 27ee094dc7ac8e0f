package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ribassu/qrcodenextbot/internal/logger"
)

// DefaultAPIURL is the production Bot API host.
const DefaultAPIURL = "https://api.telegram.org"

// InlineButton is one inline keyboard URL button.
type InlineButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

type replyMarkup struct {
	InlineKeyboard [][]InlineButton `json:"inline_keyboard"`
}

// SendOptions carries the optional parts of an outbound message.
type SendOptions struct {
	HTML   bool
	Button *InlineButton
}

// Client is an HTTP client for the Telegram Bot API. The embedded
// timeout bounds every call, including file downloads.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a Bot API client. An empty apiURL selects the
// production host.
func NewClient(apiURL, token string, logger logger.Logger) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: apiURL,
		token:  token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type sendMessageRequest struct {
	ChatID      int64        `json:"chat_id"`
	Text        string       `json:"text"`
	ParseMode   string       `json:"parse_mode,omitempty"`
	ReplyMarkup *replyMarkup `json:"reply_markup,omitempty"`
}

// SendMessage sends a text message to a chat.
func (c *Client) SendMessage(chatID int64, text string, opts *SendOptions) error {
	request := sendMessageRequest{
		ChatID: chatID,
		Text:   text,
	}
	if opts != nil {
		if opts.HTML {
			request.ParseMode = "HTML"
		}
		if opts.Button != nil {
			request.ReplyMarkup = &replyMarkup{
				InlineKeyboard: [][]InlineButton{{*opts.Button}},
			}
		}
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode sendMessage request: %w", err)
	}

	c.logger.Debugf("Sending message to chat %d", chatID)

	resp, err := c.httpClient.Post(c.methodURL("sendMessage"), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to call sendMessage: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// SendPhoto uploads a photo to a chat as a multipart request.
func (c *Client) SendPhoto(chatID int64, photo []byte, caption string, opts *SendOptions) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return fmt.Errorf("failed to write chat_id field: %w", err)
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("failed to write caption field: %w", err)
		}
	}
	if opts != nil {
		if opts.HTML {
			if err := writer.WriteField("parse_mode", "HTML"); err != nil {
				return fmt.Errorf("failed to write parse_mode field: %w", err)
			}
		}
		if opts.Button != nil {
			markup, err := json.Marshal(replyMarkup{
				InlineKeyboard: [][]InlineButton{{*opts.Button}},
			})
			if err != nil {
				return fmt.Errorf("failed to encode reply markup: %w", err)
			}
			if err := writer.WriteField("reply_markup", string(markup)); err != nil {
				return fmt.Errorf("failed to write reply_markup field: %w", err)
			}
		}
	}

	part, err := writer.CreateFormFile("photo", "qrcode.png")
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return fmt.Errorf("failed to write photo bytes: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	c.logger.Debugf("Sending photo of %d bytes to chat %d", len(photo), chatID)

	resp, err := c.httpClient.Post(c.methodURL("sendPhoto"), writer.FormDataContentType(), &body)
	if err != nil {
		return fmt.Errorf("failed to call sendPhoto: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

type getFileResponse struct {
	Ok     bool `json:"ok"`
	Result struct {
		FilePath string `json:"file_path"`
	} `json:"result"`
}

// FileURL exchanges a file id for a downloadable URL.
func (c *Client) FileURL(fileID string) (string, error) {
	resp, err := c.httpClient.Get(c.methodURL("getFile") + "?file_id=" + url.QueryEscape(fileID))
	if err != nil {
		return "", fmt.Errorf("failed to call getFile: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var file getFileResponse
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return "", fmt.Errorf("failed to decode getFile response: %w", err)
	}
	if !file.Ok || file.Result.FilePath == "" {
		return "", fmt.Errorf("getFile returned no file path for %s", fileID)
	}

	return fmt.Sprintf("%s/file/bot%s/%s", c.apiURL, c.token, file.Result.FilePath), nil
}

// FetchFile resolves a file id and downloads its bytes. Any failure,
// including a timeout or a non-OK status, is a fetch failure.
func (c *Client) FetchFile(fileID string) ([]byte, error) {
	fileURL, err := c.FileURL(fileID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file body: %w", err)
	}

	return data, nil
}

// SetWebhook registers target as the bot's webhook URL and returns the
// raw API response body.
func (c *Client) SetWebhook(target string) ([]byte, error) {
	resp, err := c.httpClient.Get(c.methodURL("setWebhook") + "?url=" + url.QueryEscape(target))
	if err != nil {
		return nil, fmt.Errorf("failed to call setWebhook: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read setWebhook response: %w", err)
	}

	return body, nil
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiURL, c.token, method)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
}
