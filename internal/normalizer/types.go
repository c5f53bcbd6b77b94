package normalizer

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// RecommendationPayload is the validated recipe/exercise batch produced by NormalizeStrict.
type RecommendationPayload struct {
	Recipes   []Recipe   `json:"recipes"`
	Exercises []Exercise `json:"exercises"`
}

type Recipe struct {
	RecipeName           Text     `json:"recipeName"`
	RecipeDescription    Text     `json:"recipeDescription"`
	RecipeItems          TextList `json:"recipeItems"`
	CookingInstructions  TextList `json:"cookingInstructions"`
	RecipeCalories       Number   `json:"recipeCalories"`
	RecipeBenefits       Text     `json:"recipeBenefits"`
	IconClass            Text     `json:"iconClass"`
	EstimatedCookingTime Text     `json:"estimatedCookingTime"`
}

type Exercise struct {
	ExerciseName        Text     `json:"exerciseName"`
	ExerciseDescription Text     `json:"exerciseDescription"`
	ExercisePerform     TextList `json:"exercisePerform"`
	Duration            Text     `json:"duration"`
	Intensity           Text     `json:"intensity"`
	ExerciseBenefits    Text     `json:"exerciseBenefits"`
	IconClass           Text     `json:"iconClass"`
	Location            Text     `json:"location"`
}

// CalorieEstimate is the food photo analysis produced by NormalizeLenient.
// Fields are whatever the model returned; see Defaults. Keys beyond the known
// four are kept in Extra and written back out unchanged.
type CalorieEstimate struct {
	DishName      Text      `json:"dishName"`
	FoodItems     FoodItems `json:"foodItems"`
	TotalCalories Number    `json:"totalCalories"`
	Notes         TextList  `json:"notes"`

	Extra map[string]json.RawMessage `json:"-"`
}

var estimateKeys = []string{"dishName", "foodItems", "totalCalories", "notes"}

func knownEstimateKey(k string) bool {
	for _, known := range estimateKeys {
		if strings.EqualFold(k, known) {
			return true
		}
	}
	return false
}

func (e *CalorieEstimate) UnmarshalJSON(b []byte) error {
	type plain CalorieEstimate
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if knownEstimateKey(k) {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[k] = v
	}
	*e = CalorieEstimate(p)
	return nil
}

func (e CalorieEstimate) MarshalJSON() ([]byte, error) {
	type plain CalorieEstimate
	b, err := json.Marshal(plain(e))
	if err != nil || len(e.Extra) == 0 {
		return b, err
	}
	merged := make(map[string]json.RawMessage, len(e.Extra)+len(estimateKeys))
	for k, v := range e.Extra {
		merged[k] = v
	}
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

type FoodItem struct {
	Name     Text   `json:"name"`
	Calories Number `json:"calories"`
	Portion  Text   `json:"portion"`
}

// Defaults fills the gaps a calorie estimate is allowed to have so that the
// serialized form always carries every key.
func Defaults(est *CalorieEstimate) *CalorieEstimate {
	if est == nil {
		est = &CalorieEstimate{}
	}
	if est.DishName == "" {
		est.DishName = "Unnamed Dish"
	}
	if est.FoodItems == nil {
		est.FoodItems = FoodItems{}
	}
	for i := range est.FoodItems {
		if est.FoodItems[i].Name == "" {
			est.FoodItems[i].Name = "Unknown Item"
		}
		if est.FoodItems[i].Portion == "" {
			est.FoodItems[i].Portion = "Unknown"
		}
	}
	if est.Notes == nil {
		est.Notes = TextList{}
	}
	return est
}

// FoodItems drops entries that are not JSON objects and treats a non-array as empty.
type FoodItems []FoodItem

func (f *FoodItems) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*f = nil
		return nil
	}
	out := make(FoodItems, 0, len(raw))
	for _, r := range raw {
		var item FoodItem
		if err := json.Unmarshal(r, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	*f = out
	return nil
}

// Text is a string the model may have emitted as a JSON number or bool.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		*t = Text(b)
	}
	return nil
}

func (t Text) String() string { return string(t) }

var leadingNumber = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Number is a float the model may have emitted as a string such as "350 kcal".
// Values that carry no number decode to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(leadingNumber.FindString(s))
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

// TextList is a list of strings that also accepts a lone string.
type TextList []string

func (l *TextList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	if len(b) > 0 && b[0] == '[' {
		var raw []Text
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := make(TextList, 0, len(raw))
		for _, t := range raw {
			out = append(out, string(t))
		}
		*l = out
		return nil
	}
	var t Text
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	*l = TextList{string(t)}
	return nil
}
