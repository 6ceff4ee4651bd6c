package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fitstart/internal/domain"
)

const (
	bmiUnderweightBelow = 18.5
	bmiOverweightFrom   = 25.0
	bmiObeseFrom        = 30.0
)

var recommendations = map[domain.RecommendationCategory]string{
	domain.RecommendationUnderweight: "Consider gaining some weight and building muscle!",
	domain.RecommendationHealthy:     "Keep up the great work!",
	domain.RecommendationOverweight:  "A fitness plan to lose weight could be beneficial.",
	domain.RecommendationObese:       "It's important to focus on a healthy lifestyle and weight loss.",
}

// DeriveBMI calcula peso / (altura en metros)^2. Altura o peso no positivos
// o no finitos devuelven ErrInvalidInput en vez de Inf/NaN.
func DeriveBMI(heightCm, weightKg float64) (float64, error) {
	if !isPositiveFinite(heightCm) {
		return 0, fmt.Errorf("%w: height must be a positive number of centimeters", ErrInvalidInput)
	}
	if !isPositiveFinite(weightKg) {
		return 0, fmt.Errorf("%w: weight must be a positive number of kilograms", ErrInvalidInput)
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	if !isPositiveFinite(bmi) {
		return 0, fmt.Errorf("%w: bmi out of range", ErrInvalidInput)
	}
	return bmi, nil
}

// Recommend aplica las bandas [18.5, 25) sano, [25, 30) sobrepeso, >= 30 obesidad.
func Recommend(bmi float64) domain.Recommendation {
	var cat domain.RecommendationCategory
	switch {
	case bmi < bmiUnderweightBelow:
		cat = domain.RecommendationUnderweight
	case bmi < bmiOverweightFrom:
		cat = domain.RecommendationHealthy
	case bmi < bmiObeseFrom:
		cat = domain.RecommendationOverweight
	default:
		cat = domain.RecommendationObese
	}
	return domain.Recommendation{Category: cat, Message: recommendations[cat]}
}

// FormatBMI muestra el BMI con un decimal, igual que el valor persistido.
func FormatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', 1, 64)
}

// ProfileBMI parsea altura y peso del perfil y calcula el BMI.
func ProfileBMI(p domain.Profile) (float64, error) {
	h, err := parseNumber(p.Height, "height")
	if err != nil {
		return 0, err
	}
	w, err := parseNumber(p.Weight, "weight")
	if err != nil {
		return 0, err
	}
	return DeriveBMI(h, w)
}

func parseNumber(raw, field string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrInvalidInput, field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, raw)
	}
	return v, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
