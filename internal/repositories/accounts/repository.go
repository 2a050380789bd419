package accounts

import (
	"context"

	"github.com/dmitrijs2005/profiles/internal/models"
)

// Repository persists and reads user account records. Implementations must
// map a duplicate-email insert to common.ErrorEmailExists and a missing row
// to common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	UpdateFlags(ctx context.Context, id string, isStaff, isSuperuser bool) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
