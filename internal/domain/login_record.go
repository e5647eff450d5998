package domain

import (
	"time"

	"github.com/google/uuid"
)

// LoginRecord is one append-only audit entry per login attempt. UserID is
// nil for attempts against email addresses that match no account, so failed
// probes of unknown emails remain visible in the log.
type LoginRecord struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      *uuid.UUID `json:"userId" gorm:"type:uuid;index"`
	AttemptedAt time.Time  `json:"attemptedAt" gorm:"index;not null"`
	IPAddress   *string    `json:"ipAddress"`
	UserAgent   *string    `json:"userAgent"`
	// Geo/device columns are reserved for a future enrichment pass and are
	// never written today.
	Country *string `json:"country"`
	City    *string `json:"city"`
	Device  *string `json:"device"`
	Browser *string `json:"browser"`
	Success bool    `json:"success" gorm:"not null"`
}
