package domain

// OnboardingStep describe una diapositiva del onboarding.
type OnboardingStep struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Field       Field  `json:"field,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Numeric     bool   `json:"numeric,omitempty"`
	Multiline   bool   `json:"multiline,omitempty"`
}

// OnboardingSteps es el catalogo de pasos; el primero es solo bienvenida.
var OnboardingSteps = []OnboardingStep{
	{Title: "Welcome to FitStart!", Subtitle: "Let's begin your transformation journey"},
	{Title: "Your Age", Subtitle: "Enter your age", Field: FieldAge, Placeholder: "e.g. 21", Numeric: true},
	{Title: "Your Gender", Subtitle: "Male, Female, Other...", Field: FieldGender, Placeholder: "e.g. Male"},
	{Title: "Your Height (cm)", Subtitle: "Helps us calculate BMI", Field: FieldHeight, Placeholder: "e.g. 170", Numeric: true},
	{Title: "Your Weight (kg)", Subtitle: "We're almost there!", Field: FieldWeight, Placeholder: "e.g. 65", Numeric: true},
	{Title: "Your Daily Activity Level", Subtitle: "Helps us personalize diet & workouts", Field: FieldActivityLevel, Placeholder: "e.g. Sedentary / Moderate / Active"},
	{Title: "Your Fitness Goal", Subtitle: "To help you get your dream body", Field: FieldGoal, Placeholder: "e.g. Muscle gain"},
	{Title: "What inspires you?", Subtitle: "This will help us motivate you later!", Field: FieldMotivation, Placeholder: "e.g. I want to be confident again", Multiline: true},
}
