package service

import (
	"fmt"
	"math"

	"fitstart/internal/domain"
)

// ToClassificationRequest traduce el perfil al payload del predictor. Es pura;
// rechaza con ErrInvalidInput los numeros que no se pueden enviar.
func ToClassificationRequest(p domain.Profile) (domain.ClassificationRequest, error) {
	age, err := parseNumber(p.Age, "age")
	if err != nil {
		return domain.ClassificationRequest{}, err
	}
	if age < 0 || age > math.MaxInt32 {
		return domain.ClassificationRequest{}, fmt.Errorf("%w: age out of range", ErrInvalidInput)
	}
	height, err := parsePositiveInt(p.Height, "height")
	if err != nil {
		return domain.ClassificationRequest{}, err
	}
	weight, err := parsePositiveInt(p.Weight, "weight")
	if err != nil {
		return domain.ClassificationRequest{}, err
	}

	return domain.ClassificationRequest{
		Age:           int(math.Trunc(age)),
		Gender:        domain.ParseGender(p.Gender).Code(),
		Height:        height,
		Weight:        weight,
		ActivityLevel: domain.ParseActivityLevel(p.ActivityLevel).Code(),
		Goal:          domain.ParseGoal(p.Goal).Code(),
	}, nil
}

// parsePositiveInt trunca decimales como parseInt y exige un entero > 0.
func parsePositiveInt(raw, field string) (int, error) {
	v, err := parseNumber(raw, field)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidInput, field)
	}
	n := int(math.Trunc(v))
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidInput, field)
	}
	return n, nil
}
