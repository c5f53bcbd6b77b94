// Package normalizer turns free-text generative model output into validated
// structured payloads. It repairs the deviations the model commonly makes
// (code fences, trailing commas, typographic quotes, over-escaping) and fails
// closed when the result still does not match the expected shape.
package normalizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	kindRecipe   = "Recipe"
	kindExercise = "Exercise"
)

var (
	codeFence     = regexp.MustCompile("```json\\s*|\\s*```")
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	newlineRuns   = regexp.MustCompile(`\n+`)
	escapedStar   = regexp.MustCompile(`\\\*`)
	greedyObject  = regexp.MustCompile(`(?s)\{.*\}`)

	smartQuotes = strings.NewReplacer("“", `"`, "”", `"`)
)

var (
	recipeFields = []string{
		"recipeName",
		"recipeDescription",
		"recipeItems",
		"cookingInstructions",
		"recipeCalories",
		"recipeBenefits",
		"iconClass",
		"estimatedCookingTime",
	}
	exerciseFields = []string{
		"exerciseName",
		"exerciseDescription",
		"exercisePerform",
		"duration",
		"intensity",
		"exerciseBenefits",
		"iconClass",
		"location",
	}
)

// NormalizeStrict extracts and repairs the JSON object in text and validates
// it as a recipe/exercise batch. Any invalid entry rejects the whole batch.
func NormalizeStrict(text string) (*RecommendationPayload, error) {
	cleaned, err := extractObject(text)
	if err != nil {
		return nil, err
	}
	cleaned = repair(cleaned)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		log.Debug().Str("cleaned", cleaned).Msg("normalizer: repaired text is not valid JSON")
		return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}

	recipes, ok := doc["recipes"].([]any)
	if !ok {
		return nil, ErrMissingRequiredArrays
	}
	exercises, ok := doc["exercises"].([]any)
	if !ok {
		return nil, ErrMissingRequiredArrays
	}
	if err := validateEntries(kindRecipe, recipes, recipeFields); err != nil {
		return nil, err
	}
	if err := validateEntries(kindExercise, exercises, exerciseFields); err != nil {
		return nil, err
	}

	payload := &RecommendationPayload{}
	if payload.Recipes, err = decodeEntries[Recipe](recipes, recipeFields); err != nil {
		return nil, err
	}
	if payload.Exercises, err = decodeEntries[Exercise](exercises, exerciseFields); err != nil {
		return nil, err
	}
	return payload, nil
}

// decodeEntries builds typed entries from the validated objects, keeping only
// the exact required keys. The typed decoder matches keys case-insensitively,
// so a stray "RecipeName" must not reach it.
func decodeEntries[T any](entries []any, fields []string) ([]T, error) {
	out := make([]T, 0, len(entries))
	for _, entry := range entries {
		obj, _ := entry.(map[string]any)
		kept := make(map[string]any, len(fields))
		for _, field := range fields {
			kept[field] = obj[field]
		}
		b, err := json.Marshal(kept)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
		}
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// NormalizeLenient takes the greedy first-brace to last-brace match of text
// and decodes it as a calorie estimate without per-field checks.
func NormalizeLenient(text string) (*CalorieEstimate, error) {
	match := greedyObject.FindString(text)
	if match == "" {
		return nil, ErrNoJSONObject
	}

	var est CalorieEstimate
	if err := json.Unmarshal([]byte(match), &est); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}
	return &est, nil
}

// extractObject strips code fences and slices text to its outermost braces.
func extractObject(text string) (string, error) {
	text = codeFence.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 {
		return "", ErrNoJSONObject
	}
	if end < start {
		// "}...{" has no object between the braces; let the parser reject it.
		return "", nil
	}
	return text[start : end+1], nil
}

// repair applies the textual fixes in a fixed order. Later steps depend on the
// earlier ones: quotes are normalized before escaped quotes are unescaped.
func repair(s string) string {
	s = trailingComma.ReplaceAllString(s, "$1")
	s = newlineRuns.ReplaceAllString(s, "\n")
	s = escapedStar.ReplaceAllString(s, "")
	s = smartQuotes.Replace(s)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	return s
}

func validateEntries(kind string, entries []any, required []string) error {
	for i, entry := range entries {
		obj, _ := entry.(map[string]any)
		var missing []string
		for _, field := range required {
			if !truthy(obj[field]) {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return &ValidationError{Kind: kind, Index: i, Missing: missing}
		}
	}
	return nil
}

// truthy mirrors loose JSON truthiness: null, false, "" and 0 are absent,
// while arrays and objects count as present even when empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
