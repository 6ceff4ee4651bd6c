package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"fitstart/internal/domain"
	"fitstart/internal/predictor"
)

const motivationLine = "Let's take charge of your fitness journey! Remember, every step counts!"

var classificationMessages = map[domain.BodyType]string{
	domain.BodyTypeUnderweight: "You're underweight! Consider gaining some healthy weight and building muscle.",
	domain.BodyTypeFit:         "You're in great shape! Keep up the excellent work and maintain your fitness!",
	domain.BodyTypeOverweight:  "You're overweight. It's time to focus on a balanced workout and diet plan to achieve your goals!",
	domain.BodyTypeUnknown:     "We couldn't determine your health status. Please try again.",
}

const (
	classificationErrorMessage   = "There was an error fetching your health status. Please try again."
	classificationInvalidMessage = "Please check your age, height and weight and try again."
)

// AssessmentService expone el pipeline de evaluacion: BMI local y
// clasificacion remota.
type AssessmentService struct {
	logger    *zap.Logger
	store     *ProfileStore
	predictor predictor.Client
}

func NewAssessmentService(logger *zap.Logger, store *ProfileStore, client predictor.Client) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{
		logger:    logger,
		store:     store,
		predictor: client,
	}
}

// ComputeAssessment es sincronico y no toca la red.
func (s *AssessmentService) ComputeAssessment(profile domain.Profile) (domain.Assessment, error) {
	bmi, err := ProfileBMI(profile)
	if err != nil {
		return domain.Assessment{}, err
	}
	return domain.Assessment{
		BMI:            bmi,
		BMIText:        FormatBMI(bmi),
		Recommendation: Recommend(bmi),
	}, nil
}

// Classify valida, mapea y consulta al predictor. Una etiqueta desconocida
// vuelve como BodyTypeUnknown sin error.
func (s *AssessmentService) Classify(ctx context.Context, profile domain.Profile) (domain.Classification, error) {
	if s.predictor == nil {
		return domain.Classification{}, fmt.Errorf("%w: not configured", predictor.ErrUnavailable)
	}
	req, err := ToClassificationRequest(profile)
	if err != nil {
		return domain.Classification{}, err
	}
	res, err := s.predictor.Predict(ctx, req)
	if err != nil {
		s.logger.Warn("classification failed", zap.Error(err))
		return domain.Classification{}, err
	}
	if res.BodyType == domain.BodyTypeUnknown {
		s.logger.Info("unrecognized body type", zap.String("label", res.RawLabel))
	}
	return res, nil
}

// FetchClassification devuelve el estado listo para mostrar. Si ctx se
// cancela antes de la respuesta devuelve ErrDiscarded y el resultado no debe aplicarse.
func (s *AssessmentService) FetchClassification(ctx context.Context, profile domain.Profile) (domain.ClassificationStatus, error) {
	res, err := s.Classify(ctx, profile)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.ClassificationStatus{}, fmt.Errorf("%w: %w", ErrDiscarded, ctxErr)
	}
	return DescribeClassification(res, err), nil
}

// DescribeClassification separa "hubo un error" de "no pudimos determinar".
func DescribeClassification(res domain.Classification, err error) domain.ClassificationStatus {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return domain.ClassificationStatus{
			Status:  domain.ClassificationInvalidInput,
			Message: classificationInvalidMessage,
		}
	case err != nil:
		return domain.ClassificationStatus{
			Status:  domain.ClassificationError,
			Message: classificationErrorMessage,
		}
	case res.BodyType == domain.BodyTypeUnknown || res.BodyType == "":
		return domain.ClassificationStatus{
			Status:   domain.ClassificationUnknown,
			BodyType: domain.BodyTypeUnknown,
			Message:  classificationMessages[domain.BodyTypeUnknown],
		}
	default:
		return domain.ClassificationStatus{
			Status:   domain.ClassificationClassified,
			BodyType: res.BodyType,
			Message:  classificationMessages[res.BodyType],
		}
	}
}

// CurrentProfile lee el registro vigente.
func (s *AssessmentService) CurrentProfile(ctx context.Context) (domain.Profile, error) {
	return s.store.LoadProfile(ctx)
}

// Result arma la vista de resultado desde lo persistido. Si el BMI guardado
// falta se recalcula desde el perfil.
func (s *AssessmentService) Result(ctx context.Context) (domain.ResultView, error) {
	profile, err := s.store.LoadProfile(ctx)
	if err != nil {
		return domain.ResultView{}, err
	}

	bmiText, ok, err := s.store.LoadBMI(ctx)
	if err != nil {
		s.logger.Warn("load bmi failed, recomputing", zap.Error(err))
	}
	var bmi float64
	if ok && err == nil {
		bmi, err = parseNumber(bmiText, "bmi")
	}
	if !ok || err != nil {
		bmi, err = ProfileBMI(profile)
		if err != nil {
			return domain.ResultView{}, err
		}
		bmiText = FormatBMI(bmi)
	}

	return domain.ResultView{
		Greeting:       fmt.Sprintf("Hello %s years old %s, your BMI is %s.", profile.Age, profile.Gender, bmiText),
		BMIText:        bmiText,
		Recommendation: Recommend(bmi),
		Motivation:     motivationLine,
	}, nil
}
