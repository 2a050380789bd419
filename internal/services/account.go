// Package services contains the business logic of the profiles service. This
// file implements AccountService, the validated factory for user account
// records:
// - CreateUser / CreateSuperuser: construct and persist records
// - SetPassword / Deactivate / Activate / Delete / List: account management
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/profiles/internal/common"
	"github.com/dmitrijs2005/profiles/internal/config"
	"github.com/dmitrijs2005/profiles/internal/dbx"
	"github.com/dmitrijs2005/profiles/internal/models"
	"github.com/dmitrijs2005/profiles/internal/repositories/repomanager"
)

// AccountService constructs valid user records with hashed credentials and
// carries the administrative operations on them. All persistence goes through
// the injected repository manager, bound per call to either the plain
// connection or a transaction handle.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewAccountService constructs an AccountService using a database handle, a
// repository manager, and the service config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
	}
}

// CreateUser creates a regular account. The email is required and gets its
// domain segment normalized before the record is persisted. An empty password
// leaves the record without a usable credential.
//
// The created record has IsActive=true and both permission flags unset.
func (s *AccountService) CreateUser(ctx context.Context, email, name, password string) (*models.User, error) {
	return s.createUser(ctx, s.db, email, name, password)
}

// CreateSuperuser creates an account and elevates it to staff and superuser.
// All three arguments are required. The create and the flag update run in one
// transaction, so a failure leaves no half-privileged row behind.
func (s *AccountService) CreateSuperuser(ctx context.Context, email, name, password string) (*models.User, error) {
	if email == "" {
		return nil, common.ErrorEmailRequired
	}
	if password == "" {
		return nil, common.ErrorPasswordRequired
	}

	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.createUser(ctx, tx, email, name, password)
		if err != nil {
			return err
		}

		u.IsStaff = true
		u.IsSuperuser = true
		if err := s.repomanager.Accounts(tx).UpdateFlags(ctx, u.ID, true, true); err != nil {
			return fmt.Errorf("error elevating user: %w", err)
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail looks an account up by its normalized email.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, common.ErrorEmailRequired
	}
	return s.repomanager.Accounts(s.db).GetByEmail(ctx, models.NormalizeEmail(email))
}

// SetPassword replaces the account's credential with a hash of the given
// password.
func (s *AccountService) SetPassword(ctx context.Context, email, password string) error {
	if password == "" {
		return common.ErrorPasswordRequired
	}

	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := user.SetPassword(password, s.bcryptCost); err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.repomanager.Accounts(s.db).UpdatePassword(ctx, user.ID, user.PasswordHash)
}

// Deactivate marks the account as unable to authenticate.
func (s *AccountService) Deactivate(ctx context.Context, email string) error {
	return s.setActive(ctx, email, false)
}

// Activate re-enables a deactivated account.
func (s *AccountService) Activate(ctx context.Context, email string) error {
	return s.setActive(ctx, email, true)
}

// Delete removes the account record. Administrative action only.
func (s *AccountService) Delete(ctx context.Context, email string) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.repomanager.Accounts(s.db).Delete(ctx, user.ID)
}

// List returns all account records in creation order.
func (s *AccountService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Accounts(s.db).List(ctx)
}

// --- helpers below ---

// createUser validates input and persists a new record through the given
// handle. Validation failures are returned before any repository call.
func (s *AccountService) createUser(ctx context.Context, db dbx.DBTX, email, name, password string) (*models.User, error) {
	if email == "" {
		return nil, common.ErrorEmailRequired
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    models.NormalizeEmail(email),
		Name:     name,
		IsActive: true,
	}

	if password != "" {
		if err := user.SetPassword(password, s.bcryptCost); err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
	}

	user, err := s.repomanager.Accounts(db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *AccountService) setActive(ctx context.Context, email string, active bool) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.repomanager.Accounts(s.db).SetActive(ctx, user.ID, active)
}
