package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	v, err := Calculate(70, 175)
	require.NoError(t, err)
	assert.Equal(t, 22.9, v)

	v, err = Calculate(95, 160)
	require.NoError(t, err)
	assert.Equal(t, 37.1, v)

	_, err = Calculate(0, 170)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
	_, err = Calculate(60, -1)
	assert.ErrorIs(t, err, ErrInvalidMeasurement)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bmi  float64
		want Category
	}{
		{16.0, Underweight},
		{18.4, Underweight},
		{18.5, Normal},
		{24.9, Normal},
		{24.95, Overweight},
		{25.0, Overweight},
		{29.9, Overweight},
		{30.0, Obese},
		{42.3, Obese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.bmi), "bmi %.2f", tt.bmi)
	}
}

func TestEvaluate(t *testing.T) {
	res, err := Evaluate(50, 170)
	require.NoError(t, err)
	assert.Equal(t, 17.3, res.BMI)
	assert.Equal(t, Underweight, res.Category)
	assert.Contains(t, res.Description, "increasing your calorie intake")

	_, err = Evaluate(50, 0)
	assert.Error(t, err)
}
