package domain

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrInvalidTaskData      = errors.New("invalid task data")
)
