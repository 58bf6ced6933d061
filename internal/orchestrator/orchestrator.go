// Package orchestrator drives the single in-flight generation call and
// owns the view state it produces.
package orchestrator

import (
	"context"
	"errors"
	"sync"

	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/form"
	"github.com/hammamikhairi/fridgechef/internal/logger"
)

// User-facing messages for each failure branch. The transport message
// deliberately hides the underlying cause — that goes to the log only.
const (
	MsgNoIngredients   = "Please add at least one ingredient"
	MsgServiceFallback = "Failed to generate recipe"
	MsgTransportFault  = "Failed to connect to the recipe service. Please try again."
)

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithTransitionHook registers a callback invoked after every view-state
// transition, outside the orchestrator's lock. Used by the UI to refresh.
func WithTransitionHook(fn func(domain.ViewState)) Option {
	return func(o *Orchestrator) { o.hook = fn }
}

// Orchestrator validates readiness, snapshots the form into a request,
// issues at most one asynchronous generation call at a time, and maps
// every outcome onto the view state. Safe for concurrent use.
type Orchestrator struct {
	mu    sync.Mutex
	form  *form.State
	gen   domain.RecipeGenerator
	log   *logger.Logger
	hook  func(domain.ViewState)
	state domain.ViewState
	seq   uint64 // latest issued call; settlements for older seqs are stale
}

// New creates an orchestrator in the Idle state.
func New(f *form.State, gen domain.RecipeGenerator, log *logger.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		form:  f,
		gen:   gen,
		log:   log,
		state: domain.Idle(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current view state.
func (o *Orchestrator) State() domain.ViewState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Generate starts one generation call from the current form state.
//
// With an empty basket it transitions straight to Error and returns
// domain.ErrEmptyBasket without calling the service. While a call is
// already in flight it returns domain.ErrGenerationInFlight and leaves
// the state alone. Otherwise it transitions to Loading, issues the call,
// and returns nil; the settlement arrives through a later transition.
func (o *Orchestrator) Generate(ctx context.Context) error {
	o.mu.Lock()

	if o.state.Phase == domain.PhaseLoading {
		o.mu.Unlock()
		o.log.Debug("orchestrator: generate rejected, call in flight")
		return domain.ErrGenerationInFlight
	}

	req := o.form.Snapshot()
	if len(req.Ingredients) == 0 {
		o.transitionLocked(domain.Errored(MsgNoIngredients))
		o.mu.Unlock()
		o.notify()
		return domain.ErrEmptyBasket
	}

	o.seq++
	seq := o.seq
	o.transitionLocked(domain.Loading())
	o.mu.Unlock()
	o.notify()

	o.log.Info("orchestrator: generating (seq=%d, ingredients=%d, restrictions=%d)",
		seq, len(req.Ingredients), len(req.DietaryRestrictions))

	go o.call(ctx, seq, req)
	return nil
}

// call runs the generation request and settles the view state, unless a
// newer call or a reset has superseded this one in the meantime.
func (o *Orchestrator) call(ctx context.Context, seq uint64, req domain.GenerationRequest) {
	recipe, err := o.gen.Generate(ctx, req)

	o.mu.Lock()
	if seq != o.seq {
		o.mu.Unlock()
		o.log.Debug("orchestrator: discarding stale settlement (seq=%d, latest=%d)", seq, o.seq)
		return
	}

	switch {
	case err == nil:
		o.transitionLocked(domain.Result(recipe))
	default:
		var svcErr *domain.ServiceError
		if errors.As(err, &svcErr) {
			msg := svcErr.Message
			if msg == "" {
				msg = MsgServiceFallback
			}
			o.transitionLocked(domain.Errored(msg))
		} else {
			// Transport fault: generic message for the user, real
			// cause for the log.
			o.log.Error("orchestrator: generation call failed: %v", err)
			o.transitionLocked(domain.Errored(MsgTransportFault))
		}
	}
	o.mu.Unlock()
	o.notify()
}

// Reset returns the view state to Idle and invalidates any in-flight
// call so its settlement is discarded.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.seq++
	o.transitionLocked(domain.Idle())
	o.mu.Unlock()
	o.notify()
}

// transitionLocked replaces the state. Caller holds o.mu.
func (o *Orchestrator) transitionLocked(next domain.ViewState) {
	o.log.Debug("orchestrator: %s -> %s", o.state.Phase, next.Phase)
	o.state = next
}

// notify invokes the transition hook with the latest state, outside the
// lock so the hook may call back into the orchestrator.
func (o *Orchestrator) notify() {
	if o.hook == nil {
		return
	}
	o.hook(o.State())
}
