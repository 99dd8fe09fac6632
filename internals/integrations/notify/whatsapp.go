// internals/integrations/notify/whatsapp.go
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WhatsAppSender posts messages to a WhatsApp HTTP gateway.
type WhatsAppSender struct {
	BaseURL string
	Token   string

	HTTPClient *http.Client
}

func NewWhatsAppSender(baseURL, token string) *WhatsAppSender {
	return &WhatsAppSender{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (w *WhatsAppSender) Enabled() bool {
	return w != nil && w.BaseURL != ""
}

func (w *WhatsAppSender) Send(to, message string) error {
	if !w.Enabled() {
		return fmt.Errorf("whatsapp sender is not configured")
	}

	body, err := json.Marshal(map[string]string{
		"to":      to,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, w.BaseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.Token != "" {
		req.Header.Set("Authorization", "Bearer "+w.Token)
	}

	resp, err := w.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("whatsapp gateway returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
