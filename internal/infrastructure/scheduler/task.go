package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Task is a named unit of synchronization work executed on an interval.
// Implementations must be safe to run repeatedly and tolerate cancellation
// through the context.
type Task interface {
	// Name uniquely identifies the task within the registry
	Name() string
	// Interval is how often the task runs
	Interval() time.Duration
	// Run executes one pass of the task
	Run(ctx context.Context) error
}

// Registry holds the set of registered tasks. Tasks are registered
// explicitly at startup; there is no discovery mechanism.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewRegistry creates an empty task registry
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]Task),
	}
}

// Register adds a task to the registry
func (r *Registry) Register(task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[task.Name()]; exists {
		return ErrTaskAlreadyRegistered
	}
	r.tasks[task.Name()] = task
	return nil
}

// Get returns the task with the given name
func (r *Registry) Get(name string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[name]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// All returns every registered task sorted by name
func (r *Registry) All() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Name() < tasks[j].Name()
	})
	return tasks
}
