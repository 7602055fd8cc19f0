package models

// Data Transfer Objects

type RecordGradeRequest struct {
	CourseCode  string  `json:"course_code" validate:"required"`
	StudentCode string  `json:"student_code" validate:"required"`
	Component   string  `json:"component" validate:"required,oneof=midterm final assignments"`
	Score       float64 `json:"score" validate:"gte=0,lte=20"`
	Remarks     string  `json:"remarks" validate:"max=500"`
}

type RecordAttendanceRequest struct {
	CourseCode  string `json:"course_code" validate:"required"`
	StudentCode string `json:"student_code" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status" validate:"required,oneof=Present Late Absent"`
	Remarks     string `json:"remarks" validate:"max=500"`
}

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatMessageResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

type StudentGradesResponse struct {
	Grades []GradeView `json:"grades"`
	Total  int         `json:"total"`
}
