package models

import "time"

// SectionView — секция преподавателя с данными курса и школы.
type SectionView struct {
	ID             int64      `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Schedule       *string    `json:"schedule,omitempty" db:"schedule"`
	AcademicPeriod string     `json:"academic_period" db:"academic_period"`
	StartDate      *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty" db:"end_date"`
	CourseCode     string     `json:"course_code" db:"course_code"`
	CourseName     string     `json:"course_name" db:"course_name"`
	Credits        int        `json:"credits" db:"credits"`
	TheoryHours    int        `json:"theory_hours" db:"theory_hours"`
	PracticeHours  int        `json:"practice_hours" db:"practice_hours"`
	SchoolName     *string    `json:"school_name,omitempty" db:"school_name"`
}
