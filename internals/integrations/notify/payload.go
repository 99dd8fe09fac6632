// internals/integrations/notify/payload.go
package notify

// EmailPayload is the body of a notify.email task.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// WhatsAppPayload is the body of a notify.whatsapp task.
type WhatsAppPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}
