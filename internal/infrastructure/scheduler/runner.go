package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// RunStatus represents the outcome of a task run
type RunStatus string

const (
	RunStatusRunning RunStatus = "RUNNING"
	RunStatusSuccess RunStatus = "SUCCESS"
	RunStatusFailed  RunStatus = "FAILED"
	RunStatusSkipped RunStatus = "SKIPPED"
)

// RunRecord captures one execution of a task for monitoring
type RunRecord struct {
	TaskName    string
	Status      RunStatus
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
	Manual      bool
}

// RunLock serializes task runs across process instances. A nil RunLock
// disables cross-instance locking; in-process overlap is always prevented.
type RunLock interface {
	Acquire(ctx context.Context, taskName string) (bool, error)
	Release(ctx context.Context, taskName string) error
}

// RunnerConfig holds task runner configuration
type RunnerConfig struct {
	// TaskTimeout bounds a single task run
	TaskTimeout time.Duration
	// HistorySize is how many run records to keep per task
	HistorySize int
}

// Runner executes registered tasks on their intervals. Each task gets its
// own ticker goroutine; a run that is still in flight when the next tick
// arrives is skipped rather than stacked.
type Runner struct {
	config   RunnerConfig
	registry *Registry
	lock     RunLock
	logger   *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	inFlight  map[string]bool

	historyMu sync.RWMutex
	history   map[string][]RunRecord
}

// NewRunner creates a task runner over the given registry
func NewRunner(config RunnerConfig, registry *Registry, lock RunLock, logger *zap.Logger) *Runner {
	if config.TaskTimeout == 0 {
		config.TaskTimeout = 10 * time.Minute
	}
	if config.HistorySize == 0 {
		config.HistorySize = 50
	}
	return &Runner{
		config:   config,
		registry: registry,
		lock:     lock,
		logger:   logger,
		inFlight: make(map[string]bool),
		history:  make(map[string][]RunRecord),
	}
}

// Start launches a ticker goroutine per registered task
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = true
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	tasks := r.registry.All()
	for _, task := range tasks {
		r.wg.Add(1)
		go r.loop(ctx, task)
	}

	r.logger.Info("task runner started", zap.Int("tasks", len(tasks)))
	return nil
}

// Stop gracefully stops the runner, waiting for in-flight runs
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return nil
	}
	r.isRunning = false
	r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("task runner stopped")
		return nil
	case <-ctx.Done():
		r.logger.Warn("task runner stop timed out")
		return ctx.Err()
	}
}

// Trigger runs the named task immediately, outside its schedule
func (r *Runner) Trigger(ctx context.Context, name string) error {
	r.mu.Lock()
	running := r.isRunning
	r.mu.Unlock()
	if !running {
		return ErrRunnerNotRunning
	}

	task, err := r.registry.Get(name)
	if err != nil {
		return err
	}
	return r.runOnce(ctx, task, true)
}

// History returns the recorded runs for the named task, most recent first
func (r *Runner) History(name string) []RunRecord {
	r.historyMu.RLock()
	defer r.historyMu.RUnlock()

	records := r.history[name]
	result := make([]RunRecord, len(records))
	for i, record := range records {
		result[len(records)-1-i] = record
	}
	return result
}

// LastRun returns the most recent run record for the named task
func (r *Runner) LastRun(name string) (RunRecord, bool) {
	r.historyMu.RLock()
	defer r.historyMu.RUnlock()

	records := r.history[name]
	if len(records) == 0 {
		return RunRecord{}, false
	}
	return records[len(records)-1], true
}

// loop runs one task on its interval until the context is cancelled
func (r *Runner) loop(ctx context.Context, task Task) {
	defer r.wg.Done()

	ticker := time.NewTicker(task.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.runOnce(ctx, task, false); err != nil {
				r.logger.Error("task run failed",
					zap.String("task", task.Name()),
					zap.Error(err),
				)
			}
		}
	}
}

// runOnce executes a single task run with single-flight and lock guards
func (r *Runner) runOnce(ctx context.Context, task Task, manual bool) error {
	name := task.Name()

	r.mu.Lock()
	if r.inFlight[name] {
		r.mu.Unlock()
		r.record(RunRecord{TaskName: name, Status: RunStatusSkipped, StartedAt: time.Now(), Manual: manual})
		return ErrTaskAlreadyRunning
	}
	r.inFlight[name] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.inFlight, name)
		r.mu.Unlock()
	}()

	runCtx, cancel := context.WithTimeout(ctx, r.config.TaskTimeout)
	defer cancel()

	if r.lock != nil {
		acquired, err := r.lock.Acquire(runCtx, name)
		if err != nil {
			return fmt.Errorf("acquiring run lock: %w", err)
		}
		if !acquired {
			r.logger.Debug("task locked by another instance, skipping",
				zap.String("task", name),
			)
			r.record(RunRecord{TaskName: name, Status: RunStatusSkipped, StartedAt: time.Now(), Manual: manual})
			return ErrTaskAlreadyRunning
		}
		defer func() {
			if err := r.lock.Release(context.WithoutCancel(runCtx), name); err != nil {
				r.logger.Warn("failed to release run lock",
					zap.String("task", name),
					zap.Error(err),
				)
			}
		}()
	}

	record := RunRecord{
		TaskName:  name,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
		Manual:    manual,
	}

	tracer := otel.Tracer("fulfillsync/scheduler")
	spanCtx, span := tracer.Start(runCtx, "task."+name)
	span.SetAttributes(
		attribute.String("task.name", name),
		attribute.Bool("task.manual", manual),
	)
	defer span.End()

	r.logger.Info("task run started", zap.String("task", name), zap.Bool("manual", manual))

	err := task.Run(spanCtx)
	now := time.Now()
	record.CompletedAt = &now

	if err != nil {
		record.Status = RunStatusFailed
		record.Error = err.Error()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Error("task run finished with error",
			zap.String("task", name),
			zap.Duration("duration", now.Sub(record.StartedAt)),
			zap.Error(err),
		)
	} else {
		record.Status = RunStatusSuccess
		span.SetStatus(codes.Ok, "")
		r.logger.Info("task run finished",
			zap.String("task", name),
			zap.Duration("duration", now.Sub(record.StartedAt)),
		)
	}

	r.record(record)
	return err
}

// record appends a run record, trimming history to the configured size
func (r *Runner) record(record RunRecord) {
	r.historyMu.Lock()
	defer r.historyMu.Unlock()

	records := append(r.history[record.TaskName], record)
	if len(records) > r.config.HistorySize {
		records = records[len(records)-r.config.HistorySize:]
	}
	r.history[record.TaskName] = records
}
