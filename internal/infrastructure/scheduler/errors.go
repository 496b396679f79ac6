package scheduler

import "errors"

var (
	// ErrRunnerNotRunning is returned when triggering a task on a stopped runner
	ErrRunnerNotRunning = errors.New("scheduler: runner is not running")

	// ErrTaskNotFound is returned when a task name is not registered
	ErrTaskNotFound = errors.New("scheduler: task not found")

	// ErrTaskAlreadyRegistered is returned when a task name is registered twice
	ErrTaskAlreadyRegistered = errors.New("scheduler: task already registered")

	// ErrTaskAlreadyRunning is returned when a task run overlaps an in-flight
	// run of the same task, locally or on another instance
	ErrTaskAlreadyRunning = errors.New("scheduler: task already running")
)
