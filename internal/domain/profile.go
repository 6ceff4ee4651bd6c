package domain

import (
	"errors"
	"strings"
)

// Field identifica un dato que se captura durante el onboarding.
type Field string

const (
	FieldAge           Field = "age"
	FieldGender        Field = "gender"
	FieldHeight        Field = "height"
	FieldWeight        Field = "weight"
	FieldActivityLevel Field = "activityLevel"
	FieldGoal          Field = "goal"
	FieldMotivation    Field = "motivation"
)

// ProfileFields lista los campos en el orden en que se piden.
var ProfileFields = []Field{
	FieldAge,
	FieldGender,
	FieldHeight,
	FieldWeight,
	FieldActivityLevel,
	FieldGoal,
	FieldMotivation,
}

var ErrUnknownField = errors.New("unknown profile field")

// Profile es el registro normalizado del usuario tal como se ingreso.
// Se persiste como JSON bajo la clave "userData".
type Profile struct {
	Age           string `json:"age"`
	Gender        string `json:"gender"`
	Height        string `json:"height"`
	Weight        string `json:"weight"`
	ActivityLevel string `json:"activityLevel"`
	Goal          string `json:"goal"`
	Motivation    string `json:"motivation"`
}

// ParseField valida el nombre de un campo recibido desde afuera.
func ParseField(name string) (Field, error) {
	f := Field(strings.TrimSpace(name))
	for _, known := range ProfileFields {
		if f == known {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// ProfileBuilder acumula los valores paso a paso. Es un valor inmutable:
// cada With devuelve un builder nuevo y el original no cambia.
type ProfileBuilder struct {
	values map[Field]string
}

func NewProfileBuilder() ProfileBuilder {
	return ProfileBuilder{}
}

// With devuelve un builder con el campo actualizado.
func (b ProfileBuilder) With(field Field, value string) (ProfileBuilder, error) {
	f, err := ParseField(string(field))
	if err != nil {
		return b, err
	}
	next := make(map[Field]string, len(b.values)+1)
	for k, v := range b.values {
		next[k] = v
	}
	next[f] = strings.TrimSpace(value)
	return ProfileBuilder{values: next}, nil
}

// Value devuelve el valor acumulado para un campo ("" si falta).
func (b ProfileBuilder) Value(field Field) string {
	return b.values[field]
}

// Build finaliza el builder en un Profile inmutable.
func (b ProfileBuilder) Build() Profile {
	return Profile{
		Age:           b.values[FieldAge],
		Gender:        b.values[FieldGender],
		Height:        b.values[FieldHeight],
		Weight:        b.values[FieldWeight],
		ActivityLevel: b.values[FieldActivityLevel],
		Goal:          b.values[FieldGoal],
		Motivation:    b.values[FieldMotivation],
	}
}

// BuildProfile arma un Profile desde un mapa campo -> valor.
func BuildProfile(fields map[string]string) (Profile, error) {
	b := NewProfileBuilder()
	for name, value := range fields {
		f, err := ParseField(name)
		if err != nil {
			return Profile{}, err
		}
		if b, err = b.With(f, value); err != nil {
			return Profile{}, err
		}
	}
	return b.Build(), nil
}
