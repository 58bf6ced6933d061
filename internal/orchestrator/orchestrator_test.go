package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/form"
	"github.com/hammamikhairi/fridgechef/internal/logger"
)

// fakeGenerator is a scriptable domain.RecipeGenerator.
type fakeGenerator struct {
	mu      sync.Mutex
	recipe  *domain.Recipe
	err     error
	calls   int
	lastReq domain.GenerationRequest
	block   chan struct{} // when non-nil, Generate waits on it
}

func (f *fakeGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Recipe, error) {
	f.mu.Lock()
	f.calls++
	f.lastReq = req
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recipe, f.err
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func setup(t *testing.T, gen *fakeGenerator) (*Orchestrator, *form.State, chan domain.ViewState) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	f := form.New(log)
	transitions := make(chan domain.ViewState, 16)
	o := New(f, gen, log, WithTransitionHook(func(vs domain.ViewState) {
		transitions <- vs
	}))
	return o, f, transitions
}

func addIngredient(f *form.State, text string) {
	f.SetPendingIngredient(text)
	f.AddIngredient()
}

// waitFor drains transitions until one reaches the wanted phase.
func waitFor(t *testing.T, transitions chan domain.ViewState, phase domain.Phase) domain.ViewState {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case vs := <-transitions:
			if vs.Phase == phase {
				return vs
			}
		case <-deadline:
			t.Fatalf("timed out waiting for phase %s", phase)
		}
	}
}

func TestGenerateEmptyBasket(t *testing.T) {
	gen := &fakeGenerator{}
	o, _, _ := setup(t, gen)

	err := o.Generate(context.Background())
	if !errors.Is(err, domain.ErrEmptyBasket) {
		t.Fatalf("err = %v, want ErrEmptyBasket", err)
	}

	st := o.State()
	if st.Phase != domain.PhaseError {
		t.Fatalf("phase = %s, want error", st.Phase)
	}
	if st.Message != MsgNoIngredients {
		t.Fatalf("message = %q, want %q", st.Message, MsgNoIngredients)
	}
	if gen.callCount() != 0 {
		t.Fatalf("service was called %d times for an empty basket", gen.callCount())
	}
}

func TestGenerateSuccess(t *testing.T) {
	recipe := &domain.Recipe{
		Name: "Chicken Rice Bowl",
		Ingredients: []domain.RecipeIngredient{
			{Item: "chicken", Amount: "1", Unit: "lb"},
		},
		Instructions: []domain.InstructionStep{
			{Step: 1, Instruction: "Cook rice"},
		},
	}
	gen := &fakeGenerator{recipe: recipe}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")
	addIngredient(f, "rice")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	waitFor(t, transitions, domain.PhaseLoading)
	st := waitFor(t, transitions, domain.PhaseResult)

	if st.Recipe != recipe {
		t.Fatalf("result carries wrong recipe: %+v", st.Recipe)
	}
	if gen.callCount() != 1 {
		t.Fatalf("expected exactly one call, got %d", gen.callCount())
	}
}

func TestGenerateRequestShape(t *testing.T) {
	gen := &fakeGenerator{recipe: &domain.Recipe{Name: "x"}}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")
	addIngredient(f, "rice")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	waitFor(t, transitions, domain.PhaseResult)

	req := gen.lastReq
	if len(req.Ingredients) != 2 || req.Ingredients[0] != "chicken" || req.Ingredients[1] != "rice" {
		t.Fatalf("ingredients = %v", req.Ingredients)
	}
	if req.DietaryRestrictions == nil || len(req.DietaryRestrictions) != 0 {
		t.Fatalf("restrictions should be empty non-nil, got %#v", req.DietaryRestrictions)
	}
	// Unset preferences must be absent (zero), not "".
	if req.CuisineType != "" || req.MealType != "" || req.CookingTime != "" {
		t.Fatalf("unset preferences leaked: %+v", req)
	}
}

func TestGenerateServiceFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"with message", &domain.ServiceError{Message: "No valid recipe found"}, "No valid recipe found"},
		{"without message", &domain.ServiceError{}, MsgServiceFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{err: tt.err}
			o, f, transitions := setup(t, gen)
			addIngredient(f, "chicken")

			if err := o.Generate(context.Background()); err != nil {
				t.Fatalf("generate: %v", err)
			}
			st := waitFor(t, transitions, domain.PhaseError)
			if st.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", st.Message, tt.wantMsg)
			}
		})
	}
}

func TestGenerateTransportFault(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("dial tcp: connection refused")}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	st := waitFor(t, transitions, domain.PhaseError)
	if st.Message != MsgTransportFault {
		t.Fatalf("message = %q, want generic transport message", st.Message)
	}
}

func TestGenerateWhileLoadingRejected(t *testing.T) {
	gen := &fakeGenerator{recipe: &domain.Recipe{Name: "x"}, block: make(chan struct{})}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	waitFor(t, transitions, domain.PhaseLoading)

	if err := o.Generate(context.Background()); !errors.Is(err, domain.ErrGenerationInFlight) {
		t.Fatalf("second generate err = %v, want ErrGenerationInFlight", err)
	}

	close(gen.block)
	waitFor(t, transitions, domain.PhaseResult)
	if gen.callCount() != 1 {
		t.Fatalf("service called %d times, want 1", gen.callCount())
	}
}

func TestResetDiscardsStaleSettlement(t *testing.T) {
	gen := &fakeGenerator{recipe: &domain.Recipe{Name: "stale"}, block: make(chan struct{})}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	waitFor(t, transitions, domain.PhaseLoading)

	o.Reset()
	waitFor(t, transitions, domain.PhaseIdle)

	// Release the in-flight call; its settlement must not clobber Idle.
	close(gen.block)
	time.Sleep(50 * time.Millisecond)

	if st := o.State(); st.Phase != domain.PhaseIdle {
		t.Fatalf("stale settlement applied: phase = %s", st.Phase)
	}
}

func TestRegenerateAfterError(t *testing.T) {
	gen := &fakeGenerator{err: &domain.ServiceError{Message: "nope"}}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	waitFor(t, transitions, domain.PhaseError)

	// The form survives the failure, so a retry needs no re-entry.
	if got := f.Ingredients(); len(got) != 1 {
		t.Fatalf("form lost state after error: %v", got)
	}

	gen.mu.Lock()
	gen.err = nil
	gen.recipe = &domain.Recipe{Name: "second try"}
	gen.mu.Unlock()

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	st := waitFor(t, transitions, domain.PhaseResult)
	if st.Recipe.Name != "second try" {
		t.Fatalf("retry recipe = %q", st.Recipe.Name)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	gen := &fakeGenerator{recipe: &domain.Recipe{Name: "x"}}
	o, f, transitions := setup(t, gen)
	addIngredient(f, "chicken")

	if err := o.Generate(context.Background()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	waitFor(t, transitions, domain.PhaseResult)

	o.Reset()
	st := o.State()
	if st.Phase != domain.PhaseIdle || st.Recipe != nil || st.Message != "" {
		t.Fatalf("state after reset = %+v", st)
	}
}
