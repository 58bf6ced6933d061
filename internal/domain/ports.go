package domain

import "context"

// RecipeGenerator produces a recipe from a request snapshot.
// Implementations can call a remote service or be canned for tests.
// A *ServiceError return means the service answered and refused; any
// other error is a transport-level fault.
type RecipeGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (*Recipe, error)
}

// Assistant answers free-form cooking questions. Implementations can
// be API-backed or canned for tests.
type Assistant interface {
	Ask(ctx context.Context, question string) (string, error)
}

// CommandParser converts raw user input into structured commands.
// Implementations can be keyword-based, regex, or LLM-powered.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Command, error)
}
