package services

import "errors"

// Portfolio service errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrSheetFetch      = errors.New("sheet fetch failed")
)
