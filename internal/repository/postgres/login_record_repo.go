package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stf-adrian/start-from-scratch/internal/domain"
)

type loginRecordRepository struct {
	db *gorm.DB
}

func NewLoginRecordRepository(db *gorm.DB) *loginRecordRepository {
	return &loginRecordRepository{db: db}
}

func (r *loginRecordRepository) Create(ctx context.Context, record *domain.LoginRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *loginRecordRepository) AttemptTimesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).
		Model(&domain.LoginRecord{}).
		Where("user_id = ? AND attempted_at >= ?", userID, since).
		Order("attempted_at ASC").
		Pluck("attempted_at", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *loginRecordRepository) RecentByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.LoginRecord, error) {
	var records []*domain.LoginRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
