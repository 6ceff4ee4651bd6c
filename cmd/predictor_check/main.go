package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fitstart/internal/config"
	"fitstart/internal/predictor"
	"fitstart/internal/repository"
	"fitstart/internal/service"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	client := predictor.NewHTTPClient(cfg.PredictorURL, cfg.PredictorTimeout, logger)
	svc := service.NewAssessmentService(logger, service.NewProfileStore(repository.NewMemoryKVStore()), client)

	fmt.Printf("Predictor: %s (timeout %s)\n\n", cfg.PredictorURL, cfg.PredictorTimeout)

	results := runScenarios(ctx, svc, defaultScenarios)
	for _, r := range results {
		color := colorGreen
		if !r.Match {
			color = colorRed
		}
		fmt.Printf("%s[%s]%s %s\n", colorCyan, r.Scenario.Name, colorReset, r.Scenario.Note)
		fmt.Printf("  esperado: %-12s obtenido: %s%s/%s%s\n", r.Scenario.Expect, color, r.Status.Status, r.Status.BodyType, colorReset)
		fmt.Printf("  %q\n\n", r.Status.Message)
	}

	s := summarize(results)
	fmt.Println("==== Resumen ====")
	fmt.Printf("Coinciden: %d/%d | Errores de red: %d | Desconocidos: %d\n", s.Matched, s.Total, s.Errors, s.Unknown)
}
