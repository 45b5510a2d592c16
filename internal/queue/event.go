// Package queue defines message payloads exchanged over the message broker.
package queue

// CenterBookedEvent is published after a center's booking fan-out has
// committed.  It carries enough for downstream consumers to audit or
// notify without querying the primary database.  Publishing is a
// deferred task: the booking succeeds regardless of whether this event
// makes it to the broker.
type CenterBookedEvent struct {
	ExamDateID   string `json:"exam_date_id"`
	CenterID     string `json:"center_id"`
	CenterName   string `json:"center_name"`
	ExamDate     string `json:"exam_date"`
	SubjectCount int    `json:"subject_count"`
	BookedAt     string `json:"booked_at"`
}
