package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitstart/internal/domain"
	"fitstart/internal/service"
)

// OnboardingHandler mantiene dependencias para los endpoints del onboarding.
type OnboardingHandler struct {
	logger     *zap.Logger
	onboarding *service.OnboardingService
}

// NewOnboardingHandler crea una instancia de OnboardingHandler.
func NewOnboardingHandler(logger *zap.Logger, onboarding *service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		logger:     logger,
		onboarding: onboarding,
	}
}

// Steps maneja GET /onboarding/steps.
func (h *OnboardingHandler) Steps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": domain.OnboardingSteps})
}

// Complete maneja POST /onboarding.
func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req struct {
		Fields map[string]string `json:"fields"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid onboarding request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := domain.BuildProfile(req.Fields)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field"})
			return
		}
		h.logger.Error("build profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build profile"})
		return
	}

	out := h.onboarding.Complete(c.Request.Context(), profile)
	c.JSON(http.StatusCreated, out)
}
