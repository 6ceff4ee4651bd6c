package domain

type RecommendationCategory string

const (
	RecommendationUnderweight RecommendationCategory = "underweight"
	RecommendationHealthy     RecommendationCategory = "healthy"
	RecommendationOverweight  RecommendationCategory = "overweight"
	RecommendationObese       RecommendationCategory = "obese"
)

type Recommendation struct {
	Category RecommendationCategory `json:"category"`
	Message  string                 `json:"message"`
}

// Assessment es el resultado local (sin red) calculado desde el perfil.
type Assessment struct {
	BMI            float64        `json:"bmi"`
	BMIText        string         `json:"bmi_text"`
	Recommendation Recommendation `json:"recommendation"`
}

// ResultView agrupa los textos que muestra la pantalla de resultado.
type ResultView struct {
	Greeting       string         `json:"greeting"`
	BMIText        string         `json:"bmi_text"`
	Recommendation Recommendation `json:"recommendation"`
	Motivation     string         `json:"motivation"`
}
