package domain

import "strings"

// Cuisine is a closed set of cuisine preferences understood by the
// generation service. The zero value means "no preference".
type Cuisine string

const (
	CuisineItalian       Cuisine = "italian"
	CuisineMexican       Cuisine = "mexican"
	CuisineAsian         Cuisine = "asian"
	CuisineMediterranean Cuisine = "mediterranean"
	CuisineIndian        Cuisine = "indian"
	CuisineAmerican      Cuisine = "american"
	CuisineFrench        Cuisine = "french"
)

// Meal is a closed set of meal types. The zero value means "no preference".
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealSnack     Meal = "snack"
	MealDessert   Meal = "dessert"
)

// CookingTime is a closed set of cooking-time preferences. The zero
// value means "no preference".
type CookingTime string

const (
	Time15Min  CookingTime = "15 minutes"
	Time30Min  CookingTime = "30 minutes"
	Time1Hour  CookingTime = "1 hour"
	Time2Hours CookingTime = "2 hours"
	TimeAny    CookingTime = "no preference"
)

// Cuisines lists every valid cuisine in display order.
func Cuisines() []Cuisine {
	return []Cuisine{
		CuisineItalian, CuisineMexican, CuisineAsian, CuisineMediterranean,
		CuisineIndian, CuisineAmerican, CuisineFrench,
	}
}

// Meals lists every valid meal type in display order.
func Meals() []Meal {
	return []Meal{MealBreakfast, MealLunch, MealDinner, MealSnack, MealDessert}
}

// CookingTimes lists every valid cooking-time option in display order.
func CookingTimes() []CookingTime {
	return []CookingTime{Time15Min, Time30Min, Time1Hour, Time2Hours, TimeAny}
}

// ParseCuisine matches user input against the cuisine set,
// case-insensitively. Returns ErrUnknownOption for out-of-set values.
func ParseCuisine(s string) (Cuisine, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Cuisines() {
		if string(c) == want {
			return c, nil
		}
	}
	return "", ErrUnknownOption
}

// ParseMeal matches user input against the meal-type set,
// case-insensitively. Returns ErrUnknownOption for out-of-set values.
func ParseMeal(s string) (Meal, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Meals() {
		if string(m) == want {
			return m, nil
		}
	}
	return "", ErrUnknownOption
}

// ParseCookingTime matches user input against the cooking-time set.
// Accepts both the full label ("30 minutes") and shorthand ("30m",
// "1h", "any"). Returns ErrUnknownOption for out-of-set values.
func ParseCookingTime(s string) (CookingTime, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	switch want {
	case "15m", "15":
		return Time15Min, nil
	case "30m", "30":
		return Time30Min, nil
	case "1h", "60m", "60":
		return Time1Hour, nil
	case "2h", "120m", "120":
		return Time2Hours, nil
	case "any", "none", "whatever":
		return TimeAny, nil
	}
	for _, ct := range CookingTimes() {
		if string(ct) == want {
			return ct, nil
		}
	}
	return "", ErrUnknownOption
}
