package models

import "time"

// Session is the authenticated user's login session, stored by the identity
// layer and read-only for this service.
type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	PatientID string    `json:"patientId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}
