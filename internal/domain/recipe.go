// Package domain defines the core types and interfaces for the recipe
// generator client. All other packages depend on domain; domain depends
// on nothing.
package domain

// Recipe is the structured recipe returned by the generation service.
// Every scalar arrives as free text and is displayed verbatim — the
// client never parses times, servings, or nutrition values.
type Recipe struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	PrepTime     string             `json:"prep_time"`
	CookTime     string             `json:"cook_time"`
	Servings     string             `json:"servings"`
	Difficulty   string             `json:"difficulty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []InstructionStep  `json:"instructions"`
	Tips         []string           `json:"tips,omitempty"`
	Nutrition    *Nutrition         `json:"nutrition,omitempty"`
}

// RecipeIngredient is one line of the generated ingredient list.
type RecipeIngredient struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// InstructionStep is one numbered instruction. Step carries the
// service's own numbering and is shown as-is, not recomputed.
type InstructionStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
}

// Nutrition holds the optional per-serving nutrition estimates.
type Nutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}
