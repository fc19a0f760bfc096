package models

import "time"

// Student is the legacy English-named roster kept outside the core schema.
// It predates the estudiante table and uses a random uuid identifier.
type Student struct {
	ID             string    `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"firstName"`
	LastName       string    `db:"last_name" json:"lastName"`
	Email          string    `db:"email" json:"email"`
	DateOfBirth    Date      `db:"date_of_birth" json:"dateOfBirth"`
	EnrollmentDate Date      `db:"enrollment_date" json:"enrollmentDate"`
	Grade          int       `db:"grade" json:"grade"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}
