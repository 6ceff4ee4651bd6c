package service

import (
	"errors"
	"math"
	"testing"

	"fitstart/internal/domain"
)

func TestDeriveBMI_MatchesFormula(t *testing.T) {
	for h := 50.0; h <= 250; h += 7.5 {
		for w := 2.0; w <= 300; w += 11.25 {
			got, err := DeriveBMI(h, w)
			if err != nil {
				t.Fatalf("DeriveBMI(%v, %v): %v", h, w, err)
			}
			want := w / math.Pow(h/100, 2)
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("DeriveBMI(%v, %v) = %v, want %v", h, w, got, want)
			}
			if math.IsInf(got, 0) || math.IsNaN(got) || got <= 0 {
				t.Fatalf("DeriveBMI(%v, %v) = %v, expected finite positive", h, w, got)
			}
		}
	}
}

func TestDeriveBMI_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		weight float64
	}{
		{name: "zero height", height: 0, weight: 70},
		{name: "negative height", height: -170, weight: 70},
		{name: "zero weight", height: 170, weight: 0},
		{name: "negative weight", height: 170, weight: -1},
		{name: "nan height", height: math.NaN(), weight: 70},
		{name: "inf weight", height: 170, weight: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi, err := DeriveBMI(tt.height, tt.weight)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got bmi=%v err=%v", bmi, err)
			}
		})
	}
}

func TestRecommend_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want domain.RecommendationCategory
	}{
		{bmi: 12, want: domain.RecommendationUnderweight},
		{bmi: 18.49, want: domain.RecommendationUnderweight},
		{bmi: 18.5, want: domain.RecommendationHealthy},
		{bmi: 24.9, want: domain.RecommendationHealthy},
		{bmi: 24.99, want: domain.RecommendationHealthy},
		{bmi: 25.0, want: domain.RecommendationOverweight},
		{bmi: 29.9, want: domain.RecommendationOverweight},
		{bmi: 29.99, want: domain.RecommendationOverweight},
		{bmi: 30.0, want: domain.RecommendationObese},
		{bmi: 45, want: domain.RecommendationObese},
	}
	for _, tt := range tests {
		got := Recommend(tt.bmi)
		if got.Category != tt.want {
			t.Fatalf("Recommend(%v) = %s, want %s", tt.bmi, got.Category, tt.want)
		}
		if got.Message == "" {
			t.Fatalf("Recommend(%v) returned empty message", tt.bmi)
		}
	}
}

func TestRecommend_Messages(t *testing.T) {
	if got := Recommend(22).Message; got != "Keep up the great work!" {
		t.Fatalf("unexpected healthy message %q", got)
	}
	if got := Recommend(17).Message; got != "Consider gaining some weight and building muscle!" {
		t.Fatalf("unexpected underweight message %q", got)
	}
}

func TestFormatBMI(t *testing.T) {
	bmi, err := DeriveBMI(180, 75)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if got := FormatBMI(bmi); got != "23.1" {
		t.Fatalf("expected 23.1, got %q", got)
	}
}

func TestProfileBMI_InvalidText(t *testing.T) {
	tests := []domain.Profile{
		{Height: "", Weight: "70"},
		{Height: "abc", Weight: "70"},
		{Height: "170", Weight: "NaN"},
		{Height: "0", Weight: "70"},
	}
	for _, p := range tests {
		if _, err := ProfileBMI(p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", p, err)
		}
	}
}
