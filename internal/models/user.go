package models

type StudentView struct {
	ID         string `json:"id" db:"id"`
	Code       string `json:"code" db:"code"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Email      string `json:"email" db:"email"`
	SchoolName string `json:"school_name" db:"school_name"`
}
