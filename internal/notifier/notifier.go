// Package notifier delivers e-mail notifications for task and ticket
// assignments. Delivery is best effort, callers fire it off a goroutine and
// log the error.
package notifier

import (
	"context"
	"fmt"

	"github.com/workdesk/backoffice/internal/common/config"

	"go.uber.org/zap"
)

// Notifier sends a notification to a single recipient.
type Notifier interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}

// New builds the notifier configured by cfg.Type ("smtp" or "log").
func New(cfg *config.NotifierConfig, logger *zap.Logger) (Notifier, error) {
	switch cfg.Type {
	case "smtp":
		return NewSMTP(&cfg.SMTP), nil
	case "log", "":
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("unknown notifier type %q", cfg.Type)
	}
}
