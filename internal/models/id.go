package models

import (
	"strings"

	"github.com/google/uuid"
)

// Record id prefixes per entity type.
const (
	UserIDPrefix        = "USR-"
	DoctorIDPrefix      = "DOC-"
	AppointmentIDPrefix = "APP-"
)

// NewRecordID generates an id of the form <prefix><6 uppercase hex chars>,
// e.g. "USR-3FA09C".
func NewRecordID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(hex[:6])
}
