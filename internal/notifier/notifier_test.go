package notifier

import (
	"context"
	"testing"

	"github.com/workdesk/backoffice/internal/common/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSelectsImplementation(t *testing.T) {
	logger := zap.NewNop()

	n, err := New(&config.NotifierConfig{Type: "log"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Log{}, n)

	n, err = New(&config.NotifierConfig{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Log{}, n)

	n, err = New(&config.NotifierConfig{Type: "smtp"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &SMTP{}, n)

	_, err = New(&config.NotifierConfig{Type: "carrier-pigeon"}, logger)
	assert.Error(t, err)
}

func TestLogSend(t *testing.T) {
	n := NewLog(zap.NewNop())
	assert.NoError(t, n.Send(context.Background(), "alice@example.com", "task assigned", "hello", ""))
}

func TestSMTPRejectsEmptyRecipient(t *testing.T) {
	n := NewSMTP(&config.SMTPConfig{Host: "localhost", Port: 2525, From: "noreply@example.com"})
	assert.Error(t, n.Send(context.Background(), "", "subject", "body", ""))
}
