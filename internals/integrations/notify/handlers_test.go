package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailHandlerRejectsBadPayload(t *testing.T) {
	h := EmailHandler(&Mailer{})

	assert.Error(t, h([]byte("{not json")))
	assert.Error(t, h([]byte(`{"subject":"no recipient"}`)))
}

func TestWhatsAppHandlerRejectsBadPayload(t *testing.T) {
	h := WhatsAppHandler(&WhatsAppSender{})

	assert.Error(t, h([]byte("{not json")))
	assert.Error(t, h([]byte(`{"message":"no recipient"}`)))
}

func TestMailerEnabled(t *testing.T) {
	assert.False(t, (&Mailer{}).Enabled())
	assert.False(t, (&Mailer{Host: "smtp.example.com"}).Enabled())
	assert.True(t, (&Mailer{Host: "smtp.example.com", From: "crm@example.com"}).Enabled())
}

func TestWhatsAppSenderEnabled(t *testing.T) {
	assert.False(t, (&WhatsAppSender{}).Enabled())
	assert.True(t, (&WhatsAppSender{BaseURL: "https://wa.example.com"}).Enabled())
}

func TestDisabledSendersReturnErrors(t *testing.T) {
	assert.Error(t, (&Mailer{}).Send("a@b.c", "s", "b"))
	assert.Error(t, (&WhatsAppSender{}).Send("+1555", "hi"))
}
