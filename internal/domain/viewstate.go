package domain

// Phase enumerates the mutually exclusive states the generation flow
// can be in. Exactly one phase is current at any instant.
type Phase int

const (
	// PhaseIdle means nothing has been requested yet (or state was reset).
	PhaseIdle Phase = iota
	// PhaseLoading means one generation call is in flight.
	PhaseLoading
	// PhaseResult means the last call returned a recipe.
	PhaseResult
	// PhaseError means the last attempt failed; Message says why.
	PhaseError
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// ViewState is the orchestrator-owned view of the generation flow.
// Recipe is set only in PhaseResult, Message only in PhaseError.
type ViewState struct {
	Phase   Phase
	Recipe  *Recipe
	Message string
}

// Idle returns the initial view state.
func Idle() ViewState { return ViewState{Phase: PhaseIdle} }

// Loading returns the in-flight view state.
func Loading() ViewState { return ViewState{Phase: PhaseLoading} }

// Result returns a view state holding a generated recipe.
func Result(r *Recipe) ViewState { return ViewState{Phase: PhaseResult, Recipe: r} }

// Errored returns a view state carrying a user-facing error message.
func Errored(msg string) ViewState { return ViewState{Phase: PhaseError, Message: msg} }
