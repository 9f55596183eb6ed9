// Package provision creates the daily process rows: one row per user per
// working sheet per day, with all three call slots empty. Runs are
// idempotent, a sheet that already has today's row is left alone.
package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/pkg/metrics"

	"go.uber.org/zap"
)

const dayLayout = "2006-01-02"

// Store is the slice of the database the provisioner needs.
type Store interface {
	ListUsers(ctx context.Context) ([]*database.User, error)
	GetSheetByID(ctx context.Context, id string) (*database.Sheet, error)
	ListProcessesByUserAndDay(ctx context.Context, userID, day string) ([]*database.Process, error)
	CreateProcesses(ctx context.Context, processes []*database.Process) error
}

// IDSource mints process row identifiers.
type IDSource interface {
	NextProcessID(ctx context.Context) (string, error)
}

type Provisioner struct {
	store   Store
	ids     IDSource
	clock   Clock
	loc     *time.Location
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewProvisioner(store Store, ids IDSource, clock Clock, loc *time.Location, logger *zap.Logger, m *metrics.Metrics) *Provisioner {
	return &Provisioner{
		store:   store,
		ids:     ids,
		clock:   clock,
		loc:     loc,
		logger:  logger.Named("provisioner"),
		metrics: m,
	}
}

// Run provisions the missing rows for every user for the current day. A
// failure for one user is logged and counted but does not stop the run;
// the run itself fails only when no user could be provisioned at all.
func (p *Provisioner) Run(ctx context.Context) error {
	day := p.clock.Now().In(p.loc).Format(dayLayout)

	users, err := p.store.ListUsers(ctx)
	if err != nil {
		p.metrics.ProvisionRun("error")
		return fmt.Errorf("list users: %w", err)
	}

	created := 0
	attempted := 0
	failures := 0
	for _, user := range users {
		if len(user.WorkingSheet) == 0 {
			continue
		}
		attempted++
		n, err := p.provisionUser(ctx, user, day)
		if err != nil {
			failures++
			p.metrics.ProvisionUserFailure()
			p.logger.Error("failed to provision user",
				zap.String("user_id", user.ID),
				zap.String("day", day),
				zap.Error(err))
			continue
		}
		created += n
	}

	if attempted > 0 && failures == attempted {
		p.metrics.ProvisionRun("error")
		return fmt.Errorf("provision day %s: all %d users failed", day, failures)
	}

	p.metrics.ProvisionRun("success")
	p.logger.Info("provision run finished",
		zap.String("day", day),
		zap.Int("users", len(users)),
		zap.Int("created", created),
		zap.Int("failures", failures))
	return nil
}

func (p *Provisioner) provisionUser(ctx context.Context, user *database.User, day string) (int, error) {
	existing, err := p.store.ListProcessesByUserAndDay(ctx, user.ID, day)
	if err != nil {
		return 0, fmt.Errorf("list existing processes: %w", err)
	}
	have := make(map[string]struct{}, len(existing))
	for _, proc := range existing {
		have[proc.SheetID] = struct{}{}
	}

	var batch []*database.Process
	for _, sheetID := range user.WorkingSheet {
		if _, ok := have[sheetID]; ok {
			continue
		}
		id, err := p.ids.NextProcessID(ctx)
		if err != nil {
			return 0, fmt.Errorf("mint process id: %w", err)
		}
		batch = append(batch, &database.Process{
			ID:        id,
			SheetID:   sheetID,
			SheetName: p.sheetName(ctx, sheetID),
			UserID:    user.ID,
			Day:       day,
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}

	if err := p.store.CreateProcesses(ctx, batch); err != nil {
		return 0, fmt.Errorf("insert processes: %w", err)
	}
	p.metrics.ProvisionCreated(len(batch))
	return len(batch), nil
}

// sheetName resolves the display name of a sheet, falling back to a
// placeholder when the sheet row is gone.
func (p *Provisioner) sheetName(ctx context.Context, sheetID string) string {
	sheet, err := p.store.GetSheetByID(ctx, sheetID)
	if err != nil {
		if !errors.Is(err, cnst.ErrNotFound) {
			p.logger.Warn("failed to resolve sheet name", zap.String("sheet_id", sheetID), zap.Error(err))
		}
		return "Sheet-" + sheetID
	}
	return sheet.SheetName
}
