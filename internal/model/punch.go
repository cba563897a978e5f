package model

import "gorm.io/gorm"

const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// PunchHeaderLiteral is the column title the fingerprint machine repeats
// inside its export whenever a new page starts. Rows carrying it are noise.
const PunchHeaderLiteral = "AC-No."

// RawPunch is one row of the biometric export, stored verbatim.
// Validation happens in the aggregator, not at import time.
type RawPunch struct {
	gorm.Model
	BatchID   string `json:"batch_id" gorm:"index"` // upload batch this row came from
	DeviceID  string `json:"device_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Timestamp string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS, machine-local
	Direction string `json:"direction"` // IN / OUT
}
