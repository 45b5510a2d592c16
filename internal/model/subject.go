package model

import "github.com/google/uuid"

// Subject is an examinable topic.  Subjects are independent entities
// referenced by shifts and exam dates through join tables.
type Subject struct {
	ID          uuid.UUID // subjects.id
	Name        string    // subjects.name
	Description string    // subjects.description
}
