package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fitstart/internal/config"
	"fitstart/internal/db"
	"fitstart/internal/domain"
	"fitstart/internal/predictor"
	"fitstart/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	backend, err := db.OpenBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("abrir almacenamiento: %v", err)
	}
	defer backend.Close()

	store := service.NewProfileStore(backend.KV)
	onboardingSvc := service.NewOnboardingService(logger, store)
	assessmentSvc := service.NewAssessmentService(logger, store, predictor.NewHTTPClient(cfg.PredictorURL, cfg.PredictorTimeout, logger))

	builder := collectProfile(reader)
	completion := onboardingSvc.CompleteFromBuilder(ctx, builder)
	if !completion.Persisted {
		fmt.Println("(No pudimos guardar tus datos, seguimos igual.)")
	}

	fmt.Println("\n===== Your Result =====")
	view, err := assessmentSvc.Result(ctx)
	switch {
	case err == nil:
		fmt.Println(view.Greeting)
		fmt.Println(view.Recommendation.Message)
		fmt.Println(view.Motivation)
	case errors.Is(err, service.ErrInvalidInput):
		fmt.Println("We couldn't calculate your BMI. Please check your height and weight.")
	default:
		a, aerr := assessmentSvc.ComputeAssessment(completion.Profile)
		if aerr != nil {
			fmt.Println("We couldn't calculate your BMI. Please check your height and weight.")
			break
		}
		fmt.Printf("Your BMI is %s.\n%s\n", a.BMIText, a.Recommendation.Message)
	}

	fmt.Print("\nLet AI judge my fitness? [y/N]: ")
	answer, _ := reader.ReadString('\n')
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return
	}

	classifyCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	fmt.Println("Consultando al predictor... (Ctrl-C para cancelar)")
	status, err := assessmentSvc.FetchClassification(classifyCtx, completion.Profile)
	if errors.Is(err, service.ErrDiscarded) {
		fmt.Println("\nCancelado.")
		return
	}
	if err != nil {
		log.Fatalf("clasificar: %v", err)
	}

	fmt.Println("\n===== Your Health Status =====")
	if status.BodyType != "" {
		fmt.Printf("Health Status: %s\n", status.BodyType)
	}
	fmt.Println(status.Message)
}

// collectProfile recorre los pasos del onboarding y devuelve el builder final.
func collectProfile(reader *bufio.Reader) domain.ProfileBuilder {
	b := domain.NewProfileBuilder()
	for _, step := range domain.OnboardingSteps {
		fmt.Printf("\n== %s ==\n%s\n", step.Title, step.Subtitle)
		if step.Field == "" {
			fmt.Print("[Enter para comenzar] ")
			_, _ = reader.ReadString('\n')
			continue
		}
		if step.Placeholder != "" {
			fmt.Printf("(%s)\n", step.Placeholder)
		}
		fmt.Print("> ")
		value, _ := reader.ReadString('\n')
		next, err := b.With(step.Field, value)
		if err != nil {
			log.Printf("campo %s: %v", step.Field, err)
			continue
		}
		b = next
	}
	return b
}
