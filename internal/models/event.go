package models

type GradeRecordedEvent struct {
	EnrollmentID int64   `json:"enrollment_id"`
	CourseCode   string  `json:"course_code"`
	StudentCode  string  `json:"student_code"`
	Component    string  `json:"component"`
	Score        float64 `json:"score"`
	ProfessorID  string  `json:"professor_id"`
	Timestamp    int64   `json:"timestamp"`
}

type AttendanceRecordedEvent struct {
	EnrollmentID int64  `json:"enrollment_id"`
	CourseCode   string `json:"course_code"`
	StudentCode  string `json:"student_code"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	ProfessorID  string `json:"professor_id"`
	Timestamp    int64  `json:"timestamp"`
}
