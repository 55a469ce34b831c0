// File: markhamtaxi/models/status.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a lightweight heartbeat record: a client-supplied label
// plus a server-generated id and UTC timestamp.
type StatusCheck struct {
	ID         string `bson:"id" json:"id"`
	ClientName string `bson:"client_name" json:"client_name"`
	Timestamp  string `bson:"timestamp" json:"timestamp"` // ISO-8601, UTC
}

// StatusCheckCreate is the payload for recording a status check.
type StatusCheckCreate struct {
	ClientName string `json:"client_name" binding:"required"`
}

// NewStatusCheck builds a status check record for the given client label.
func NewStatusCheck(clientName string) StatusCheck {
	return StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
}
