package models

import "time"

// EnrollmentView — запись списка группы с данными студента.
type EnrollmentView struct {
	EnrollmentID int64     `json:"enrollment_id" db:"enrollment_id"`
	EnrolledAt   time.Time `json:"enrolled_at" db:"enrolled_at"`
	Status       string    `json:"status" db:"status"`
	StudentCode  string    `json:"student_code" db:"student_code"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
}
