package model

import "time"

// StatusPayload is the informational body served on /api/data.
type StatusPayload struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
