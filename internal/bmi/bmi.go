// Package bmi computes body mass index and the category advice shown with it.
package bmi

import (
	"errors"
	"math"
)

var ErrInvalidMeasurement = errors.New("weight and height must be positive")

type Category string

const (
	Underweight Category = "Underweight"
	Normal      Category = "Normal"
	Overweight  Category = "Overweight"
	Obese       Category = "Obese"
)

// Result is a BMI value with its category and advice.
type Result struct {
	BMI         float64  `json:"bmi"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// Calculate returns weightKg / heightM² rounded to one decimal place.
func Calculate(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurement
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10, nil
}

// Classify buckets a BMI value. Values between the published bands
// (e.g. 24.95) fall into the higher band.
func Classify(value float64) Category {
	switch {
	case value < 18.5:
		return Underweight
	case value <= 24.9:
		return Normal
	case value <= 29.9:
		return Overweight
	default:
		return Obese
	}
}

// Describe returns the advice line for a category.
func Describe(c Category) string {
	switch c {
	case Underweight:
		return "Your BMI is below normal. Consider increasing your calorie intake with a balanced diet."
	case Normal:
		return "Great! Keep maintaining a balanced diet and regular exercise."
	case Overweight:
		return "Your BMI is slightly above normal. Consider incorporating more exercise and mindful eating."
	default:
		return "Your BMI is in the overweight range. It's recommended to consult with a healthcare professional for a personalized plan."
	}
}

// Evaluate computes, classifies and describes in one step.
func Evaluate(weightKg, heightCm float64) (Result, error) {
	v, err := Calculate(weightKg, heightCm)
	if err != nil {
		return Result{}, err
	}
	c := Classify(v)
	return Result{BMI: v, Category: c, Description: Describe(c)}, nil
}
