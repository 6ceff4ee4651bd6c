package main

import (
	"context"

	"fitstart/internal/domain"
)

// Scenario es un perfil de prueba con el resultado que deberia devolver el predictor.
type Scenario struct {
	Name    string
	Note    string
	Profile domain.Profile
	// Expect es un BodyType o un ClassificationState (p.ej. "invalid_input").
	Expect string
}

type scenarioResult struct {
	Scenario Scenario
	Status   domain.ClassificationStatus
	Err      error
	Match    bool
}

type summary struct {
	Total   int
	Matched int
	Errors  int
	Unknown int
}

var defaultScenarios = []Scenario{
	{
		Name:    "Delgadez",
		Note:    "BMI ~16.0, sedentaria, quiere ganar musculo",
		Profile: domain.Profile{Age: "22", Gender: "Female", Height: "170", Weight: "46", ActivityLevel: "Sedentary", Goal: "Muscle gain"},
		Expect:  string(domain.BodyTypeUnderweight),
	},
	{
		Name:    "En forma",
		Note:    "BMI ~23.1, activo",
		Profile: domain.Profile{Age: "25", Gender: "Male", Height: "180", Weight: "75", ActivityLevel: "Active", Goal: "Muscle gain"},
		Expect:  string(domain.BodyTypeFit),
	},
	{
		Name:    "Sobrepeso",
		Note:    "BMI ~31.2, sedentario, quiere bajar de peso",
		Profile: domain.Profile{Age: "45", Gender: "Male", Height: "175", Weight: "96", ActivityLevel: "Sedentary", Goal: "Weight loss"},
		Expect:  string(domain.BodyTypeOverweight),
	},
	{
		Name:    "Datos incompletos",
		Note:    "altura vacia: no debe llegar al predictor",
		Profile: domain.Profile{Age: "30", Gender: "Other", Weight: "70"},
		Expect:  string(domain.ClassificationInvalidInput),
	},
}

type classifier interface {
	FetchClassification(ctx context.Context, profile domain.Profile) (domain.ClassificationStatus, error)
}

func runScenarios(ctx context.Context, svc classifier, scenarios []Scenario) []scenarioResult {
	out := make([]scenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		st, err := svc.FetchClassification(ctx, sc.Profile)
		out = append(out, scenarioResult{
			Scenario: sc,
			Status:   st,
			Err:      err,
			Match:    err == nil && matches(sc.Expect, st),
		})
	}
	return out
}

func matches(expect string, st domain.ClassificationStatus) bool {
	if st.Status == domain.ClassificationClassified {
		return expect == string(st.BodyType)
	}
	return expect == string(st.Status)
}

func summarize(results []scenarioResult) summary {
	s := summary{Total: len(results)}
	for _, r := range results {
		if r.Match {
			s.Matched++
		}
		switch r.Status.Status {
		case domain.ClassificationError:
			s.Errors++
		case domain.ClassificationUnknown:
			s.Unknown++
		}
	}
	return s
}
