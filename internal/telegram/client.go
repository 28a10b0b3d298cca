// Package telegram adalah klien Bot API Telegram (HTTP langsung ke
// api.telegram.org, tanpa library pihak ketiga).
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
)

// MaxMessageLength adalah batas panjang satu pesan Telegram.
// Pesan lebih panjang dipecah otomatis oleh SendMessage.
const MaxMessageLength = 4096

// Update adalah satu update dari getUpdates / webhook
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message adalah pesan masuk
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// User adalah pengirim pesan
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

// Chat adalah ruang obrolan asal pesan
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type apiResponse struct {
	Ok          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

// Client adalah klien Bot API
type Client struct {
	botToken   string
	baseURL    string
	httpClient *http.Client
}

// NewClient membuat klien Bot API Telegram
func NewClient(botToken string) *Client {
	return &Client{
		botToken: botToken,
		baseURL:  "https://api.telegram.org",
		// Timeout lebih panjang dari long polling supaya getUpdates tidak terputus
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// call memanggil satu method Bot API dengan payload JSON
func (c *Client) call(ctx context.Context, method string, payload interface{}) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.botToken, method)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	var apiResp apiResponse
	if err := json.Unmarshal(bodyBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("telegram API returned invalid body (status %d): %s", resp.StatusCode, string(bodyBytes))
	}
	if !apiResp.Ok {
		return nil, fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, apiResp.Description)
	}

	return apiResp.Result, nil
}

// GetUpdates mengambil update lewat long polling
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	payload := map[string]interface{}{
		"offset":          offset,
		"timeout":         timeoutSeconds,
		"allowed_updates": []string{"message"},
	}

	result, err := c.call(ctx, "getUpdates", payload)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("failed to decode updates: %w", err)
	}

	return updates, nil
}

// SendMessage mengirim pesan teks (parse mode HTML). Pesan yang melebihi
// batas Telegram dipecah per baris menjadi beberapa pesan berurutan.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	log := logger.GetAppLogger()

	for _, chunk := range splitMessage(text, MaxMessageLength) {
		payload := map[string]interface{}{
			"chat_id":    chatID,
			"text":       chunk,
			"parse_mode": "HTML",
		}

		if _, err := c.call(ctx, "sendMessage", payload); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"chatId": chatID,
				"length": len(chunk),
			}).Error("📱 [TELEGRAM] Gagal mengirim pesan")
			return err
		}
	}

	return nil
}

// SendDocument mengirim satu file (dipakai ekspor CSV)
func (c *Client) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	url := fmt.Sprintf("%s/bot%s/sendDocument", c.baseURL, c.botToken)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return err
	}
	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return err
		}
	}

	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"chatId":   chatID,
		"filename": filename,
		"size":     len(data),
	}).Info("📱 [TELEGRAM] Dokumen terkirim")

	return nil
}

// splitMessage memecah teks menjadi potongan <= limit, mengutamakan batas baris
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, line := range strings.Split(text, "\n") {
		// Baris tunggal yang kelewat panjang dipotong paksa
		for len(line) > limit {
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}

		if current.Len()+len(line)+1 > limit {
			chunks = append(chunks, strings.TrimRight(current.String(), "\n"))
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}

	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, strings.TrimRight(current.String(), "\n"))
	}

	return chunks
}
