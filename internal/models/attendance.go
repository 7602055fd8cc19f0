package models

import "time"

// AttendanceView — посещаемость студента с данными курса.
type AttendanceView struct {
	ID         string    `json:"id" db:"id"`
	Date       time.Time `json:"date" db:"date"`
	Status     string    `json:"status" db:"status"`
	Remarks    *string   `json:"remarks,omitempty" db:"remarks"`
	CourseCode string    `json:"course_code" db:"course_code"`
	CourseName string    `json:"course_name" db:"course_name"`
}

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusLate    AttendanceStatus = "Late"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
)

func (as AttendanceStatus) String() string {
	return string(as)
}

func IsValidAttendanceStatus(status string) bool {
	switch status {
	case "Present", "Late", "Absent":
		return true
	default:
		return false
	}
}
