package normalizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSONObject          = errors.New("no valid JSON object found in the response")
	ErrJSONParse             = errors.New("failed to parse JSON response")
	ErrMissingRequiredArrays = errors.New("missing required recipes or exercises arrays")
	ErrRecipeValidation      = errors.New("recipe is missing required fields")
	ErrExerciseValidation    = errors.New("exercise is missing required fields")
)

// ValidationError reports the first recipe or exercise entry that lacks
// required fields. Missing lists every absent field of that entry.
type ValidationError struct {
	Kind    string
	Index   int
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at index %d is missing required fields: %s",
		e.Kind, e.Index, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == kindExercise {
		return ErrExerciseValidation
	}
	return ErrRecipeValidation
}

// Kind names the failure class of an error returned by this package, for logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoJSONObject):
		return "NoJsonObjectFound"
	case errors.Is(err, ErrJSONParse):
		return "JsonParseError"
	case errors.Is(err, ErrMissingRequiredArrays):
		return "MissingRequiredArrays"
	case errors.Is(err, ErrRecipeValidation):
		return "RecipeValidationError"
	case errors.Is(err, ErrExerciseValidation):
		return "ExerciseValidationError"
	default:
		return "Unknown"
	}
}
