// internals/integrations/notify/handlers.go
package notify

import (
	"encoding/json"
	"fmt"
)

// EmailHandler adapts the mailer to the task worker.
func EmailHandler(m *Mailer) func(payload []byte) error {
	return func(payload []byte) error {
		var p EmailPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("bad email payload: %w", err)
		}
		if p.To == "" {
			return fmt.Errorf("email payload has no recipient")
		}
		return m.Send(p.To, p.Subject, p.Body)
	}
}

// WhatsAppHandler adapts the WhatsApp sender to the task worker.
func WhatsAppHandler(w *WhatsAppSender) func(payload []byte) error {
	return func(payload []byte) error {
		var p WhatsAppPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("bad whatsapp payload: %w", err)
		}
		if p.To == "" {
			return fmt.Errorf("whatsapp payload has no recipient")
		}
		return w.Send(p.To, p.Message)
	}
}
