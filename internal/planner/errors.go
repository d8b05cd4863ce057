package planner

import "errors"

var (
	// ErrTaskNotFound means the addressed task index is out of range.
	ErrTaskNotFound = errors.New("task index out of range")
	// ErrRestDay means the addressed task is a rest day and cannot be
	// completed.
	ErrRestDay = errors.New("rest days cannot be completed")
)
