// Package form owns the user-entered state of the generation form:
// the ingredient basket, dietary restrictions, and the three optional
// preferences. It mutates in-memory state only — no I/O.
package form

import (
	"strings"
	"sync"

	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/logger"
)

// State is the mutable form state. Safe for concurrent access.
//
// Both collections keep insertion order and reject duplicates
// (case-sensitive, on the trimmed value). Preference zero values mean
// "no preference" and are omitted from built requests.
type State struct {
	mu  sync.RWMutex
	log *logger.Logger

	ingredients  []string
	restrictions []string

	pendingIngredient  string
	pendingRestriction string

	cuisine     domain.Cuisine
	meal        domain.Meal
	cookingTime domain.CookingTime
}

// New creates an empty form.
func New(log *logger.Logger) *State {
	return &State{log: log}
}

// SetPendingIngredient stages text for the next AddIngredient call.
func (s *State) SetPendingIngredient(text string) {
	s.mu.Lock()
	s.pendingIngredient = text
	s.mu.Unlock()
}

// SetPendingRestriction stages text for the next AddRestriction call.
func (s *State) SetPendingRestriction(text string) {
	s.mu.Lock()
	s.pendingRestriction = text
	s.mu.Unlock()
}

// PendingIngredient returns the staged ingredient text.
func (s *State) PendingIngredient() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingIngredient
}

// PendingRestriction returns the staged restriction text.
func (s *State) PendingRestriction() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingRestriction
}

// AddIngredient appends the staged ingredient to the basket and clears
// the staging field. No-op (returns false, staging kept) if the trimmed
// text is empty or already present.
func (s *State) AddIngredient() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(s.pendingIngredient)
	if trimmed == "" || contains(s.ingredients, trimmed) {
		s.log.Debug("form: ingredient %q not added", trimmed)
		return false
	}
	s.ingredients = append(s.ingredients, trimmed)
	s.pendingIngredient = ""
	s.log.Debug("form: ingredient added: %q (basket=%d)", trimmed, len(s.ingredients))
	return true
}

// RemoveIngredient deletes the matching ingredient. No-op if absent.
func (s *State) RemoveIngredient(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, removed := remove(s.ingredients, value)
	if removed {
		s.ingredients = out
		s.log.Debug("form: ingredient removed: %q (basket=%d)", value, len(s.ingredients))
	}
	return removed
}

// AddRestriction appends the staged dietary restriction and clears the
// staging field. Same contract as AddIngredient.
func (s *State) AddRestriction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(s.pendingRestriction)
	if trimmed == "" || contains(s.restrictions, trimmed) {
		s.log.Debug("form: restriction %q not added", trimmed)
		return false
	}
	s.restrictions = append(s.restrictions, trimmed)
	s.pendingRestriction = ""
	s.log.Debug("form: restriction added: %q", trimmed)
	return true
}

// RemoveRestriction deletes the matching restriction. No-op if absent.
func (s *State) RemoveRestriction(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, removed := remove(s.restrictions, value)
	if removed {
		s.restrictions = out
		s.log.Debug("form: restriction removed: %q", value)
	}
	return removed
}

// SetCuisine sets the cuisine preference. The zero value clears it.
func (s *State) SetCuisine(c domain.Cuisine) {
	s.mu.Lock()
	s.cuisine = c
	s.mu.Unlock()
}

// SetMeal sets the meal-type preference. The zero value clears it.
func (s *State) SetMeal(m domain.Meal) {
	s.mu.Lock()
	s.meal = m
	s.mu.Unlock()
}

// SetCookingTime sets the cooking-time preference. The zero value clears it.
func (s *State) SetCookingTime(ct domain.CookingTime) {
	s.mu.Lock()
	s.cookingTime = ct
	s.mu.Unlock()
}

// Ingredients returns a copy of the basket in insertion order.
func (s *State) Ingredients() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.ingredients...)
}

// Restrictions returns a copy of the restrictions in insertion order.
func (s *State) Restrictions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.restrictions...)
}

// Cuisine returns the cuisine preference ("" when unset).
func (s *State) Cuisine() domain.Cuisine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cuisine
}

// Meal returns the meal-type preference ("" when unset).
func (s *State) Meal() domain.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meal
}

// CookingTime returns the cooking-time preference ("" when unset).
func (s *State) CookingTime() domain.CookingTime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cookingTime
}

// Snapshot builds an immutable request payload from the current form
// state. Restrictions are never nil so an empty list serializes as [],
// not null. Unset preferences stay zero and drop off the wire.
func (s *State) Snapshot() domain.GenerationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.GenerationRequest{
		Ingredients:         append([]string(nil), s.ingredients...),
		DietaryRestrictions: append([]string{}, s.restrictions...),
		CuisineType:         s.cuisine,
		MealType:            s.meal,
		CookingTime:         s.cookingTime,
	}
}

// Reset clears both collections, both staging fields, and all three
// preferences. The caller resets the orchestrator's view state.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ingredients = nil
	s.restrictions = nil
	s.pendingIngredient = ""
	s.pendingRestriction = ""
	s.cuisine = ""
	s.meal = ""
	s.cookingTime = ""
	s.log.Debug("form: reset")
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// remove deletes the first occurrence of v, preserving order.
func remove(list []string, v string) ([]string, bool) {
	for i, item := range list {
		if item == v {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
