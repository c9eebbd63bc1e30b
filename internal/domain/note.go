package domain

import "time"

// Note is a free-text note not tied to any workout.
type Note struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}
