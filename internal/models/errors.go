package models

import "errors"

var (
	// ErrNotFound — искомая запись отсутствует; отличим от сбоя запроса.
	ErrNotFound = errors.New("record not found")

	// ErrEnrollmentNotFound — матрикула не разрешена для действующего
	// преподавателя; запись отклоняется (fail-closed).
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)
