package domain

import "strings"

type Gender int

const (
	GenderUnrecognized Gender = iota
	GenderMale
	GenderFemale
	GenderOther
)

// ParseGender es total: cualquier texto desconocido cae en GenderUnrecognized.
func ParseGender(s string) Gender {
	switch normalizeLabel(s) {
	case "male":
		return GenderMale
	case "female":
		return GenderFemale
	case "other":
		return GenderOther
	default:
		return GenderUnrecognized
	}
}

// Code devuelve el codigo binario del predictor. Solo Male es 1.
func (g Gender) Code() int {
	switch g {
	case GenderMale:
		return 1
	case GenderFemale, GenderOther, GenderUnrecognized:
		return 0
	default:
		return 0
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return "Unrecognized"
	}
}

type ActivityLevel int

const (
	ActivityUnrecognized ActivityLevel = iota
	ActivitySedentary
	ActivityModerate
	ActivityActive
)

func ParseActivityLevel(s string) ActivityLevel {
	switch normalizeLabel(s) {
	case "sedentary":
		return ActivitySedentary
	case "moderate":
		return ActivityModerate
	case "active":
		return ActivityActive
	default:
		return ActivityUnrecognized
	}
}

// Code devuelve el ordinal del predictor; un nivel desconocido se trata como Moderate.
func (a ActivityLevel) Code() int {
	switch a {
	case ActivitySedentary:
		return 0
	case ActivityModerate:
		return 1
	case ActivityActive:
		return 2
	case ActivityUnrecognized:
		return ActivityModerate.Code()
	default:
		return ActivityModerate.Code()
	}
}

func (a ActivityLevel) String() string {
	switch a {
	case ActivitySedentary:
		return "Sedentary"
	case ActivityModerate:
		return "Moderate"
	case ActivityActive:
		return "Active"
	default:
		return "Unrecognized"
	}
}

type Goal int

const (
	GoalUnrecognized Goal = iota
	GoalMuscleGain
	GoalWeightLoss
	GoalMaintain
)

func ParseGoal(s string) Goal {
	switch normalizeLabel(s) {
	case "muscle gain":
		return GoalMuscleGain
	case "weight loss":
		return GoalWeightLoss
	case "other", "maintain":
		return GoalMaintain
	default:
		return GoalUnrecognized
	}
}

// Code devuelve el codigo ternario del predictor.
func (g Goal) Code() int {
	switch g {
	case GoalMuscleGain:
		return 1
	case GoalWeightLoss:
		return 2
	case GoalMaintain, GoalUnrecognized:
		return 0
	default:
		return 0
	}
}

func (g Goal) String() string {
	switch g {
	case GoalMuscleGain:
		return "Muscle gain"
	case GoalWeightLoss:
		return "Weight loss"
	case GoalMaintain:
		return "Maintain"
	default:
		return "Unrecognized"
	}
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
