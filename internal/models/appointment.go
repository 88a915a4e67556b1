package models

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"   // Created, awaiting confirmation
	StatusConfirmed AppointmentStatus = "confirmed" // Accepted by the practice
	StatusCancelled AppointmentStatus = "cancelled" // Cancelled by either side
	StatusCompleted AppointmentStatus = "completed" // Visit took place
)

// ValidStatus reports whether s is one of the known statuses.
// Any status may follow any other; only membership is checked.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment is a booked visit. Cancellation is a status, not a deletion.
type Appointment struct {
	ID             string            `json:"id" db:"id"`                          // Record id, APP- prefixed
	PatientID      string            `json:"patientId" db:"patient_id"`           // Booking user id
	PatientName    string            `json:"patientName" db:"patient_name"`       // Snapshot of the patient name
	PatientEmail   string            `json:"patientEmail" db:"patient_email"`     // Contact email
	PatientContact string            `json:"patientContact" db:"patient_contact"` // Phone number
	DoctorID       string            `json:"doctorId" db:"doctor_id"`             // Booked doctor id
	DoctorName     string            `json:"doctorName" db:"doctor_name"`         // Snapshot of the doctor name
	Specialty      string            `json:"specialty" db:"specialty"`            // Snapshot of the specialty
	Date           string            `json:"date" db:"date"`                      // Calendar date, as entered
	Time           string            `json:"time" db:"time"`                      // Slot string, e.g. "09:00 AM"
	Status         AppointmentStatus `json:"status" db:"status"`                  // Lifecycle state
	Timestamp      string            `json:"timestamp" db:"created_at"`           // RFC 3339 creation time
}

// AppointmentEvent is published to Kafka whenever a booking is created or
// changes status.
type AppointmentEvent struct {
	EventID       string `json:"event_id"`       // Unique event id
	AppointmentID string `json:"appointment_id"` // Subject appointment
	PatientID     string `json:"patient_id"`     // Booking user id
	DoctorID      string `json:"doctor_id"`      // Booked doctor id
	Status        string `json:"status"`         // Status after the operation
	Operation     string `json:"operation"`      // "booked" or "status_changed"
	Timestamp     int64  `json:"timestamp"`      // Unix seconds
}
