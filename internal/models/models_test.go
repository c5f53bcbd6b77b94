package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseBeforeCreateKeepsExplicitID(t *testing.T) {
	id := uuid.New()
	b := Base{ID: id}
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, id, b.ID)

	var empty Base
	require.NoError(t, empty.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, empty.ID)
}

func TestJSONScanAndValue(t *testing.T) {
	var j JSON
	require.NoError(t, j.Scan([]byte(`{"a":1}`)))
	assert.JSONEq(t, `{"a":1}`, string(j))

	require.NoError(t, j.Scan(nil))
	v, err := j.Value()
	require.NoError(t, err)
	assert.Equal(t, "null", v)

	_, err = JSON(`{broken`).Value()
	assert.Error(t, err)

	assert.Error(t, j.Scan(true))
}

func TestJSONPassesThroughResponses(t *testing.T) {
	m := Meal{FoodItems: JSON(`[{"name":"rice","calories":200,"portion":"1 cup"}]`)}
	out, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded struct {
		FoodItems []FoodItem `json:"food_items"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.FoodItems, 1)
	assert.Equal(t, "rice", decoded.FoodItems[0].Name)
}

func TestJSONBStringArray(t *testing.T) {
	v, err := JSONBStringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var a JSONBStringArray
	require.NoError(t, a.Scan(`["low sodium","estimate"]`))
	assert.Equal(t, JSONBStringArray{"low sodium", "estimate"}, a)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidMealType("snack"))
	assert.False(t, ValidMealType("brunch"))
	assert.True(t, ValidBookmarkType(BookmarkExercise))
	assert.False(t, ValidBookmarkType("video"))
}
