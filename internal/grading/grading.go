// Package grading содержит чистые функции расчёта итоговой оценки и
// статистики посещаемости поверх уже загруженных записей.
package grading

import (
	"math"
	"sort"

	"github.com/academico/portal-service/internal/models"
)

const (
	WeightMidterm     = 0.30
	WeightFinal       = 0.30
	WeightAssignments = 0.40

	// PassingAverage — проходной балл по шкале 0-20.
	PassingAverage = 11.0

	// SatisfactoryRate — порог удовлетворительной посещаемости в процентах.
	SatisfactoryRate = 70
)

// WeightedAverage возвращает взвешенный средний балл либо nil, пока
// выставлены не все три компонента. Отсутствие значения — это не ноль.
func WeightedAverage(midterm, final, assignments *float64) *float64 {
	if midterm == nil || final == nil || assignments == nil {
		return nil
	}

	average := WeightMidterm**midterm + WeightFinal**final + WeightAssignments**assignments
	return &average
}

// Round1 округляет балл до одного знака для отображения.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func Passed(average *float64) bool {
	return average != nil && *average >= PassingAverage
}

type AttendanceSummary struct {
	Present     int `json:"present"`
	Late        int `json:"late"`
	Absent      int `json:"absent"`
	Total       int `json:"total"`
	RatePercent int `json:"rate_percent"`
}

// Summarize подсчитывает посещаемость по записям одного курса. Второе
// значение false, когда записей нет: процент в этом случае не определён.
func Summarize(records []models.AttendanceView) (AttendanceSummary, bool) {
	var summary AttendanceSummary

	for _, record := range records {
		switch models.AttendanceStatus(record.Status) {
		case models.AttendanceStatusPresent:
			summary.Present++
		case models.AttendanceStatusLate:
			summary.Late++
		case models.AttendanceStatusAbsent:
			summary.Absent++
		}
		summary.Total++
	}

	if summary.Total == 0 {
		return summary, false
	}

	summary.RatePercent = int(math.Round(100 * float64(summary.Present) / float64(summary.Total)))
	return summary, true
}

func Satisfactory(summary AttendanceSummary) bool {
	return summary.Total > 0 && summary.RatePercent >= SatisfactoryRate
}

type CourseSummary struct {
	CourseCode   string            `json:"course_code"`
	CourseName   string            `json:"course_name"`
	Summary      AttendanceSummary `json:"summary"`
	Satisfactory bool              `json:"satisfactory"`
}

// SummarizeByCourse считает статистику отдельно по каждому курсу: процент
// посещаемости определён только внутри одного курса, смешивать записи
// разных курсов нельзя.
func SummarizeByCourse(records []models.AttendanceView) []CourseSummary {
	grouped := make(map[string][]models.AttendanceView)
	names := make(map[string]string)
	for _, record := range records {
		grouped[record.CourseCode] = append(grouped[record.CourseCode], record)
		names[record.CourseCode] = record.CourseName
	}

	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	summaries := make([]CourseSummary, 0, len(codes))
	for _, code := range codes {
		summary, ok := Summarize(grouped[code])
		if !ok {
			continue
		}
		summaries = append(summaries, CourseSummary{
			CourseCode:   code,
			CourseName:   names[code],
			Summary:      summary,
			Satisfactory: Satisfactory(summary),
		})
	}

	return summaries
}
