package models

import "time"

// GradeView — оценки студента с кодом курса владеющей секции.
type GradeView struct {
	ID              string    `json:"id" db:"id"`
	EnrollmentID    int64     `json:"enrollment_id" db:"enrollment_id"`
	CourseCode      string    `json:"course_code" db:"course_code"`
	MidtermScore    *float64  `json:"midterm_score,omitempty" db:"midterm_score"`
	FinalScore      *float64  `json:"final_score,omitempty" db:"final_score"`
	AssignmentScore *float64  `json:"assignment_score,omitempty" db:"assignment_score"`
	FinalAverage    *float64  `json:"final_average,omitempty" db:"final_average"`
	Passed          *bool     `json:"passed,omitempty" db:"-"`
	Remarks         *string   `json:"remarks,omitempty" db:"remarks"`
	RegisteredAt    time.Time `json:"registered_at" db:"registered_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

type GradeComponent string

const (
	GradeComponentMidterm     GradeComponent = "midterm"
	GradeComponentFinal       GradeComponent = "final"
	GradeComponentAssignments GradeComponent = "assignments"
)

func (gc GradeComponent) String() string {
	return string(gc)
}

func IsValidGradeComponent(component string) bool {
	switch component {
	case "midterm", "final", "assignments":
		return true
	default:
		return false
	}
}
