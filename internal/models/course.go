package models

import "time"

type CourseView struct {
	Code          string `json:"code" db:"code"`
	Name          string `json:"name" db:"name"`
	Credits       int    `json:"credits" db:"credits"`
	TheoryHours   int    `json:"theory_hours" db:"theory_hours"`
	PracticeHours int    `json:"practice_hours" db:"practice_hours"`
}

// CourseEnrollmentView — курс студента вместе с данными секции и преподавателя.
type CourseEnrollmentView struct {
	EnrollmentID   int64     `json:"enrollment_id" db:"enrollment_id"`
	SectionID      int64     `json:"section_id" db:"section_id"`
	SectionName    string    `json:"section_name" db:"section_name"`
	Schedule       *string   `json:"schedule,omitempty" db:"schedule"`
	AcademicPeriod string    `json:"academic_period" db:"academic_period"`
	CourseCode     string    `json:"course_code" db:"course_code"`
	CourseName     string    `json:"course_name" db:"course_name"`
	Credits        int       `json:"credits" db:"credits"`
	TheoryHours    int       `json:"theory_hours" db:"theory_hours"`
	PracticeHours  int       `json:"practice_hours" db:"practice_hours"`
	ProfessorName  string    `json:"professor_name" db:"professor_name"`
	EnrolledAt     time.Time `json:"enrolled_at" db:"enrolled_at"`
	Status         string    `json:"status" db:"status"`
}
