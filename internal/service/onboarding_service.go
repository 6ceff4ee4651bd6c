package service

import (
	"context"

	"go.uber.org/zap"

	"fitstart/internal/domain"
)

// OnboardingService cierra el flujo de captura y persiste el registro vigente.
type OnboardingService struct {
	logger *zap.Logger
	store  *ProfileStore
}

func NewOnboardingService(logger *zap.Logger, store *ProfileStore) *OnboardingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OnboardingService{
		logger: logger,
		store:  store,
	}
}

// Completion describe lo que quedo guardado al terminar el onboarding.
type Completion struct {
	Profile      domain.Profile `json:"profile"`
	BMIText      string         `json:"bmi,omitempty"`
	BMIAvailable bool           `json:"bmi_available"`
	Persisted    bool           `json:"persisted"`
}

// Complete guarda el perfil y el BMI. Las fallas de almacenamiento se loguean
// y no bloquean al usuario; con un BMI invalido la clave queda vacia.
func (s *OnboardingService) Complete(ctx context.Context, profile domain.Profile) Completion {
	out := Completion{Profile: profile, Persisted: true}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("save profile failed", zap.Error(err))
		out.Persisted = false
	}

	bmi, err := ProfileBMI(profile)
	if err != nil {
		s.logger.Warn("bmi not derivable, clearing stored bmi", zap.Error(err))
		// el bmi del registro anterior no debe sobrevivir.
		if err := s.store.ClearBMI(ctx); err != nil {
			s.logger.Error("clear bmi failed", zap.Error(err))
			out.Persisted = false
		}
		return out
	}
	out.BMIText = FormatBMI(bmi)
	out.BMIAvailable = true

	if err := s.store.SaveBMI(ctx, out.BMIText); err != nil {
		s.logger.Error("save bmi failed", zap.Error(err))
		out.Persisted = false
	}
	return out
}

// CompleteFromBuilder finaliza el builder y completa el onboarding.
func (s *OnboardingService) CompleteFromBuilder(ctx context.Context, b domain.ProfileBuilder) Completion {
	return s.Complete(ctx, b.Build())
}
