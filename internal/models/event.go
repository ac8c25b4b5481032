package models

type Event struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	Attendees    int    `json:"attendees"`
	MaxAttendees int    `json:"maxAttendees"`
	Featured     bool   `json:"featured"`
}
