package mail

import (
	"testing"
	"time"

	"github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewConfiguresDialer(t *testing.T) {
	m := New("smtp.example.com", 587, "user", "pass", "no-reply@example.com", "owner@example.com", 5*time.Second)

	assert.Equal(t, "smtp.example.com", m.dialer.Host)
	assert.Equal(t, 587, m.dialer.Port)
	assert.Equal(t, mail.OpportunisticStartTLS, m.dialer.StartTLSPolicy)
	assert.Equal(t, 5*time.Second, m.dialer.Timeout)
	assert.Equal(t, "no-reply@example.com", m.sender)
	assert.Equal(t, "owner@example.com", m.recipient)
}
