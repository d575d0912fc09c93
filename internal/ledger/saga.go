// Package ledger keeps bank balances in step with the records that move money:
// settled bills and receivables, extra income and vault movements.
//
// Each workflow is a saga. Steps run in order, each under its own
// idempotency key, and a failure undoes the completed steps in reverse.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
)

type step struct {
	name       string
	do         func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// StepError reports which step of a workflow failed and how the rollback went.
type StepError struct {
	Operation       string
	Step            string
	Key             string
	Err             error
	Compensated     []string
	CompensationErr error
}

func (e *StepError) Error() string {
	msg := fmt.Sprintf("%s: step %q failed: %v", e.Operation, e.Step, e.Err)
	if e.CompensationErr != nil {
		msg += fmt.Sprintf(" (rollback incomplete: %v)", e.CompensationErr)
	}

	return msg
}

func (e *StepError) Unwrap() error { return e.Err }

type operationKey struct{}

// WithOperationKey pins the idempotency keys of the next workflow run on ctx.
// Retrying a failed workflow with the same key lets the backend replay the
// steps that already went through. Steps that were undone run again under a
// fresh key.
func WithOperationKey(ctx context.Context, key uuid.UUID) context.Context {
	return context.WithValue(ctx, operationKey{}, key)
}

// generations counts, per pinned operation key, how often each step was
// compensated. A replayed response must never stand for a write that was
// undone.
type generations struct {
	mu     sync.Mutex
	undone map[uuid.UUID]map[string]int
}

var undone = &generations{undone: make(map[uuid.UUID]map[string]int)}

func (g *generations) of(base uuid.UUID, name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.undone[base][name]
}

func (g *generations) bump(base uuid.UUID, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	steps, ok := g.undone[base]
	if !ok {
		steps = make(map[string]int)
		g.undone[base] = steps
	}

	steps[name]++
}

func stepKey(base uuid.UUID, name string, gen int) string {
	if gen > 0 {
		name = fmt.Sprintf("%s#%d", name, gen)
	}

	return uuid.NewSHA1(base, []byte(name)).String()
}

type attempt struct {
	step
	gen int
}

type saga struct {
	logger *slog.Logger
	op     string
	base   uuid.UUID
	pinned bool
}

func run(ctx context.Context, logger *slog.Logger, op string, steps []step) error {
	sg := saga{logger: logger, op: op}

	sg.base, sg.pinned = ctx.Value(operationKey{}).(uuid.UUID)
	if !sg.pinned {
		sg.base = uuid.New()
	}

	var done []attempt

	for _, s := range steps {
		a := attempt{step: s}
		if sg.pinned {
			a.gen = undone.of(sg.base, s.name)
		}

		key := stepKey(sg.base, s.name, a.gen)

		if err := s.do(apiclient.WithIdempotencyKey(ctx, key)); err != nil {
			logger.Error("workflow step failed", "operation", op, "step", s.name, "key", key, "error", err)

			stepErr := &StepError{Operation: op, Step: s.name, Key: key, Err: err}
			stepErr.Compensated, stepErr.CompensationErr = sg.rollback(ctx, done)

			return stepErr
		}

		logger.Debug("workflow step done", "operation", op, "step", s.name)
		done = append(done, a)
	}

	return nil
}

// rollback compensates done in reverse order. It keeps going past failures so
// as much as possible is undone.
func (sg saga) rollback(ctx context.Context, done []attempt) ([]string, error) {
	// The caller may be gone already; the rollback must still reach the backend.
	ctx = context.WithoutCancel(ctx)

	var (
		compensated []string
		errs        []error
	)

	for i := len(done) - 1; i >= 0; i-- {
		a := done[i]
		if a.compensate == nil {
			continue
		}

		key := stepKey(sg.base, "undo:"+a.name, a.gen)
		if err := a.compensate(apiclient.WithIdempotencyKey(ctx, key)); err != nil {
			sg.logger.Error("failed to compensate workflow step", "operation", sg.op, "step", a.name, "error", err)
			errs = append(errs, fmt.Errorf("undoing %s: %w", a.name, err))

			continue
		}

		if sg.pinned {
			undone.bump(sg.base, a.name)
		}

		compensated = append(compensated, a.name)
	}

	if len(compensated) > 0 {
		sg.logger.Warn("workflow rolled back", "operation", sg.op, "steps", strings.Join(compensated, ","))
	}

	return compensated, errors.Join(errs...)
}
