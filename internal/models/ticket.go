package models

import "time"

const StatusConfirmed = "CONFIRMED"

// Ticket is persisted as-is; the json tags define the stored layout.
type Ticket struct {
	ID          string     `json:"id"`
	EventID     string     `json:"eventId"`
	EventTitle  string     `json:"eventTitle"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Quantity    int        `json:"quantity"`
	BookingDate time.Time  `json:"bookingDate"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	Status      string     `json:"status"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
}

type ValidationStatus string

const (
	ValidationValid       ValidationStatus = "valid"
	ValidationNotFound    ValidationStatus = "not_found"
	ValidationAlreadyUsed ValidationStatus = "already_used"
)

type Validation struct {
	Valid   bool             `json:"valid"`
	Status  ValidationStatus `json:"result"`
	Message string           `json:"message"`
	Ticket  *Ticket          `json:"ticket"`
}

type CheckInStats struct {
	TotalTickets        int `json:"totalTickets"`
	CheckedIn           int `json:"checkedIn"`
	PercentageCheckedIn int `json:"percentageCheckedIn"`
}
