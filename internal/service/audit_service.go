package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stf-adrian/start-from-scratch/internal/domain"
	"github.com/stf-adrian/start-from-scratch/internal/repository"
)

// AuditService records login attempts and answers read queries over them.
// All timestamps are written and bucketed in UTC so daily counts line up
// between write and read.
type AuditService struct {
	records repository.LoginRecordRepository
	log     *logrus.Logger
}

func NewAuditService(records repository.LoginRecordRepository, log *logrus.Logger) *AuditService {
	if log == nil {
		log = logrus.New()
	}
	return &AuditService{records: records, log: log}
}

// RecordAttempt appends one audit entry. userID is nil for attempts against
// unknown emails. Persistence failures are logged and swallowed: auditing is
// best-effort and must never fail the login that triggered it, which is why
// this returns nothing.
func (s *AuditService) RecordAttempt(ctx context.Context, userID *uuid.UUID, ipAddress, userAgent string, success bool) {
	record := &domain.LoginRecord{
		ID:          uuid.New(),
		UserID:      userID,
		AttemptedAt: time.Now().UTC(),
		Success:     success,
	}
	if ipAddress != "" {
		record.IPAddress = &ipAddress
	}
	if userAgent != "" {
		record.UserAgent = &userAgent
	}

	if err := s.records.Create(ctx, record); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"userId":  userID,
			"success": success,
		}).Warn("failed to persist login record")
	}
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyCounts returns exactly windowDays entries, one per UTC calendar day,
// ascending, ending today. Days without attempts report zero.
func (s *AuditService) DailyCounts(ctx context.Context, userID uuid.UUID, windowDays int) ([]DailyCount, error) {
	today := truncateToDay(time.Now().UTC())
	start := today.AddDate(0, 0, -(windowDays - 1))

	times, err := s.records.AttemptTimesSince(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int, len(times))
	for _, t := range times {
		byDay[t.UTC().Format("2006-01-02")]++
	}

	counts := make([]DailyCount, 0, windowDays)
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		counts = append(counts, DailyCount{Date: key, Count: byDay[key]})
	}
	return counts, nil
}

// Recent returns the newest limit attempts for the user, newest first.
func (s *AuditService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.LoginRecord, error) {
	return s.records.RecentByUserID(ctx, userID, limit)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
