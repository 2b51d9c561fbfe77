package domain

import "time"

// AuditFields holds the row timestamps shared by users and bookings.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewAuditFields stamps a new record as created and last updated at now, in UTC.
func NewAuditFields(now time.Time) AuditFields {
	now = now.UTC()
	return AuditFields{CreatedAt: now, LastUpdatedAt: now}
}
