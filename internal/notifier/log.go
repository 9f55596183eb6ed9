package notifier

import (
	"context"

	"go.uber.org/zap"
)

// Log records notifications instead of sending them. Default for local
// development and tests.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger.Named("notifier")}
}

func (l *Log) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	l.logger.Info("notification",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", textBody))
	return nil
}
