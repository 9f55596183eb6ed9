// Package idgen mints the short human-readable identifiers used across the
// service: sequential 4-digit IDs for users, sheets, tasks and departments,
// and random 6-digit process IDs derived from a UUID digit stream.
package idgen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixUser       = "em"
	PrefixSheet      = "sh"
	PrefixTask       = "tk"
	PrefixDepartment = "dt"
	PrefixProcess    = "pr"
)

// maxProcessAttempts bounds the collision-retry loop when minting process IDs.
const maxProcessAttempts = 16

// Store is the slice of the database the generator needs.
type Store interface {
	LatestUserID(ctx context.Context) (string, error)
	LatestSheetID(ctx context.Context) (string, error)
	LatestTaskID(ctx context.Context) (string, error)
	LatestDepartmentID(ctx context.Context) (string, error)
	ProcessIDExists(ctx context.Context, id string) (bool, error)
}

// Generator mints IDs against the most recently created row of each entity.
type Generator struct {
	store Store
}

func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

// nextSequential parses the numeric suffix of the latest ID and increments it.
// An empty or unparseable latest ID restarts the sequence at zero.
func nextSequential(prefix, latest string) string {
	n := 0
	if suffix, ok := strings.CutPrefix(latest, prefix+"-"); ok {
		if v, err := strconv.Atoi(suffix); err == nil {
			n = v + 1
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, n)
}

func (g *Generator) NextUserID(ctx context.Context) (string, error) {
	latest, err := g.store.LatestUserID(ctx)
	if err != nil {
		return "", err
	}
	return nextSequential(PrefixUser, latest), nil
}

func (g *Generator) NextSheetID(ctx context.Context) (string, error) {
	latest, err := g.store.LatestSheetID(ctx)
	if err != nil {
		return "", err
	}
	return nextSequential(PrefixSheet, latest), nil
}

func (g *Generator) NextTaskID(ctx context.Context) (string, error) {
	latest, err := g.store.LatestTaskID(ctx)
	if err != nil {
		return "", err
	}
	return nextSequential(PrefixTask, latest), nil
}

func (g *Generator) NextDepartmentID(ctx context.Context) (string, error) {
	latest, err := g.store.LatestDepartmentID(ctx)
	if err != nil {
		return "", err
	}
	return nextSequential(PrefixDepartment, latest), nil
}

// NextProcessID draws six digits from a fresh UUID and retries on the rare
// collision with an existing row.
func (g *Generator) NextProcessID(ctx context.Context) (string, error) {
	for i := 0; i < maxProcessAttempts; i++ {
		id := PrefixProcess + "-" + uuidDigits(6)
		exists, err := g.store.ProcessIDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("exhausted %d attempts minting a process id", maxProcessAttempts)
}

// uuidDigits concatenates the decimal digits of random UUIDs until n digits
// are collected.
func uuidDigits(n int) string {
	var b strings.Builder
	for b.Len() < n {
		for _, r := range uuid.NewString() {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
				if b.Len() == n {
					break
				}
			}
		}
	}
	return b.String()
}
