package form

import (
	"reflect"
	"testing"

	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/logger"
)

func setupForm(t *testing.T) *State {
	t.Helper()
	return New(logger.New(logger.LevelOff, nil))
}

// add stages text and commits it in one go, the way the REPL does.
func add(s *State, text string) bool {
	s.SetPendingIngredient(text)
	return s.AddIngredient()
}

func TestAddIngredient(t *testing.T) {
	tests := []struct {
		name       string
		inputs     []string
		wantBasket []string
	}{
		{"single", []string{"chicken"}, []string{"chicken"}},
		{"trims whitespace", []string{"  rice  "}, []string{"rice"}},
		{"duplicate kept once", []string{"chicken", "chicken"}, []string{"chicken"}},
		{"trimmed duplicate kept once", []string{"chicken", " chicken "}, []string{"chicken"}},
		{"empty is a no-op", []string{""}, nil},
		{"whitespace only is a no-op", []string{"   "}, nil},
		{"case sensitive", []string{"chicken", "Chicken"}, []string{"chicken", "Chicken"}},
		{"insertion order kept", []string{"rice", "chicken", "peas"}, []string{"rice", "chicken", "peas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupForm(t)
			for _, in := range tt.inputs {
				add(s, in)
			}
			got := s.Ingredients()
			if len(got) == 0 && len(tt.wantBasket) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.wantBasket) {
				t.Errorf("basket = %v, want %v", got, tt.wantBasket)
			}
		})
	}
}

func TestAddIngredientClearsStaging(t *testing.T) {
	s := setupForm(t)

	s.SetPendingIngredient("chicken")
	if !s.AddIngredient() {
		t.Fatal("expected add to succeed")
	}
	if got := s.PendingIngredient(); got != "" {
		t.Fatalf("staging not cleared after add: %q", got)
	}

	// A rejected add keeps the staged text so the user can edit it.
	s.SetPendingIngredient("chicken")
	if s.AddIngredient() {
		t.Fatal("expected duplicate add to be rejected")
	}
	if got := s.PendingIngredient(); got != "chicken" {
		t.Fatalf("staging lost after rejected add: %q", got)
	}
}

func TestRemoveIngredient(t *testing.T) {
	s := setupForm(t)
	for _, in := range []string{"rice", "chicken", "peas"} {
		add(s, in)
	}

	if !s.RemoveIngredient("chicken") {
		t.Fatal("expected removal of member to succeed")
	}
	if got := s.Ingredients(); !reflect.DeepEqual(got, []string{"rice", "peas"}) {
		t.Fatalf("basket after removal = %v", got)
	}

	// Non-member removal is a no-op.
	if s.RemoveIngredient("tofu") {
		t.Fatal("expected removal of non-member to be a no-op")
	}
	if got := len(s.Ingredients()); got != 2 {
		t.Fatalf("basket size changed on no-op removal: %d", got)
	}
}

func TestRestrictionsIndependentOfBasket(t *testing.T) {
	s := setupForm(t)
	add(s, "chicken")

	s.SetPendingRestriction("vegetarian")
	if !s.AddRestriction() {
		t.Fatal("expected restriction add to succeed")
	}
	s.SetPendingRestriction("vegetarian")
	if s.AddRestriction() {
		t.Fatal("expected duplicate restriction to be rejected")
	}

	if got := s.Restrictions(); !reflect.DeepEqual(got, []string{"vegetarian"}) {
		t.Fatalf("restrictions = %v", got)
	}
	if got := s.Ingredients(); !reflect.DeepEqual(got, []string{"chicken"}) {
		t.Fatalf("basket disturbed by restriction ops: %v", got)
	}

	if !s.RemoveRestriction("vegetarian") {
		t.Fatal("expected restriction removal to succeed")
	}
	if got := len(s.Restrictions()); got != 0 {
		t.Fatalf("restrictions not empty after removal: %d", got)
	}
}

func TestSnapshot(t *testing.T) {
	s := setupForm(t)
	add(s, "chicken")
	add(s, "rice")

	req := s.Snapshot()

	if !reflect.DeepEqual(req.Ingredients, []string{"chicken", "rice"}) {
		t.Fatalf("ingredients = %v", req.Ingredients)
	}
	if req.DietaryRestrictions == nil || len(req.DietaryRestrictions) != 0 {
		t.Fatalf("restrictions should be empty non-nil, got %#v", req.DietaryRestrictions)
	}
	if req.CuisineType != "" || req.MealType != "" || req.CookingTime != "" {
		t.Fatalf("unset preferences leaked into request: %+v", req)
	}

	// Snapshot is detached from later mutations.
	add(s, "peas")
	if len(req.Ingredients) != 2 {
		t.Fatalf("snapshot mutated after the fact: %v", req.Ingredients)
	}
}

func TestSnapshotWithPreferences(t *testing.T) {
	s := setupForm(t)
	add(s, "salmon")
	s.SetCuisine(domain.CuisineAsian)
	s.SetMeal(domain.MealDinner)
	s.SetCookingTime(domain.Time30Min)

	req := s.Snapshot()
	if req.CuisineType != domain.CuisineAsian {
		t.Errorf("cuisine = %q", req.CuisineType)
	}
	if req.MealType != domain.MealDinner {
		t.Errorf("meal = %q", req.MealType)
	}
	if req.CookingTime != domain.Time30Min {
		t.Errorf("cooking time = %q", req.CookingTime)
	}

	// Clearing a preference drops it from the next snapshot.
	s.SetCuisine("")
	if got := s.Snapshot().CuisineType; got != "" {
		t.Errorf("cleared cuisine still present: %q", got)
	}
}

func TestReset(t *testing.T) {
	s := setupForm(t)
	add(s, "chicken")
	s.SetPendingIngredient("half-typed")
	s.SetPendingRestriction("vega")
	s.SetCuisine(domain.CuisineFrench)
	s.SetMeal(domain.MealLunch)
	s.SetCookingTime(domain.Time1Hour)

	s.Reset()

	if got := len(s.Ingredients()); got != 0 {
		t.Errorf("basket not cleared: %d", got)
	}
	if got := len(s.Restrictions()); got != 0 {
		t.Errorf("restrictions not cleared: %d", got)
	}
	if s.PendingIngredient() != "" || s.PendingRestriction() != "" {
		t.Error("staging fields not cleared")
	}
	if s.Cuisine() != "" || s.Meal() != "" || s.CookingTime() != "" {
		t.Error("preferences not cleared")
	}
}
