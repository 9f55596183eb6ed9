package database

import (
	"context"
	"errors"
	"time"

	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/internal/common/config"

	"golang.org/x/crypto/bcrypt"
)

// InitSuperAdmin ensures the configured super admin account exists.
// nextID mints the user identifier when the account has to be created.
func InitSuperAdmin(ctx context.Context, db Database, cfg *config.SuperAdminConfig, nextID func(ctx context.Context) (string, error)) error {
	if cfg.Username == "" || cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	_, err := db.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		// Super admin already exists
		return nil
	}
	if !errors.Is(err, cnst.ErrNotFound) {
		return err
	}

	id, err := nextID(ctx)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	return db.CreateUser(ctx, &User{
		ID:        id,
		Username:  cfg.Username,
		Email:     cfg.Email,
		Password:  string(hashed),
		Role:      cnst.RoleSuperAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
