package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamDate is a calendar date for which centers can be booked.  The
// opening and closing timestamps bound the booking window; opening
// must precede closing and both must lie in the future when the exam
// date is created.
//
// Fields:
//  ID        – primary key identifier (UUID).
//  Date      – the exam day itself.
//  OpeningAt – when the booking window opens.
//  ClosingAt – when the booking window closes.
//  CreatedAt – creation timestamp.
type ExamDate struct {
	ID        uuid.UUID // exam_dates.id
	Date      time.Time // exam_dates.date
	OpeningAt time.Time // exam_dates.opening_at
	ClosingAt time.Time // exam_dates.closing_at
	CreatedAt time.Time // exam_dates.created_at
}

// ExamDateSubject is the booking record: its existence means center
// CenterID has committed to administer subject SubjectID on exam date
// ExamDateID.  The triple (exam date, subject, center) is unique; the
// database-level unique key is what makes the "already booked" check
// safe under concurrent booking requests.  Rows with a nil CenterID
// are the initial subject seed for the exam date and belong to no
// center.
type ExamDateSubject struct {
	ID         uuid.UUID  // exam_date_subjects.id
	ExamDateID uuid.UUID  // exam_date_subjects.exam_date_id
	SubjectID  uuid.UUID  // exam_date_subjects.subject_id
	CenterID   *uuid.UUID // exam_date_subjects.center_id (nil for seed rows)
	CreatedAt  time.Time  // exam_date_subjects.created_at
}
