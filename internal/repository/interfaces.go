package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stf-adrian/start-from-scratch/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type LoginRecordRepository interface {
	Create(ctx context.Context, record *domain.LoginRecord) error
	AttemptTimesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	RecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.LoginRecord, error)
}

type Repositories struct {
	User        UserRepository
	LoginRecord LoginRecordRepository
}
