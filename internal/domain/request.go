package domain

// GenerationRequest is the immutable payload snapshot sent to the
// generation service. Unset preferences are omitted from the wire
// entirely — the service treats "" and absent differently, so the
// omitempty tags matter.
type GenerationRequest struct {
	Ingredients         []string    `json:"ingredients"`
	DietaryRestrictions []string    `json:"dietary_restrictions"`
	CuisineType         Cuisine     `json:"cuisine_type,omitempty"`
	MealType            Meal        `json:"meal_type,omitempty"`
	CookingTime         CookingTime `json:"cooking_time,omitempty"`
}
