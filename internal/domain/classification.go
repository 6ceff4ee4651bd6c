package domain

// ClassificationRequest es el payload que espera el predictor remoto.
type ClassificationRequest struct {
	Age           int `json:"age"`
	Gender        int `json:"gender"`
	Height        int `json:"height"`
	Weight        int `json:"weight"`
	ActivityLevel int `json:"activity_level"`
	Goal          int `json:"goal"`
}

type BodyType string

const (
	BodyTypeUnderweight BodyType = "Underweight"
	BodyTypeFit         BodyType = "Fit"
	BodyTypeOverweight  BodyType = "Overweight"
	BodyTypeUnknown     BodyType = "Unknown"
)

// ParseBodyType compara exacto; cualquier otra etiqueta es Unknown.
func ParseBodyType(label string) BodyType {
	switch BodyType(label) {
	case BodyTypeUnderweight, BodyTypeFit, BodyTypeOverweight:
		return BodyType(label)
	default:
		return BodyTypeUnknown
	}
}

// Classification es una respuesta valida del predictor. RawLabel guarda la
// etiqueta original aun cuando BodyType es Unknown.
type Classification struct {
	BodyType BodyType `json:"body_type"`
	RawLabel string   `json:"raw_label"`
}

type ClassificationState string

const (
	ClassificationClassified   ClassificationState = "classified"
	ClassificationUnknown      ClassificationState = "unknown"
	ClassificationError        ClassificationState = "error"
	ClassificationInvalidInput ClassificationState = "invalid_input"
)

// ClassificationStatus es lo que la capa de presentacion renderiza.
type ClassificationStatus struct {
	Status   ClassificationState `json:"status"`
	BodyType BodyType            `json:"body_type,omitempty"`
	Message  string              `json:"message"`
}
