package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitstart/internal/domain"
	"fitstart/internal/service"
)

// AssessmentHandler expone BMI, resultado y clasificacion del registro vigente.
type AssessmentHandler struct {
	logger     *zap.Logger
	assessment *service.AssessmentService
	store      *service.ProfileStore
	limiter    service.ClassifyLimiter
}

// NewAssessmentHandler crea una instancia de AssessmentHandler. limiter puede ser nil.
func NewAssessmentHandler(
	logger *zap.Logger,
	assessment *service.AssessmentService,
	store *service.ProfileStore,
	limiter service.ClassifyLimiter,
) *AssessmentHandler {
	return &AssessmentHandler{
		logger:     logger,
		assessment: assessment,
		store:      store,
		limiter:    limiter,
	}
}

// GetProfile maneja GET /profile.
func (h *AssessmentHandler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	bmi, found, err := h.store.LoadBMI(ctx)
	if err != nil {
		h.logger.Warn("load bmi failed", zap.Error(err))
	}
	resp := gin.H{"profile": profile}
	if found {
		resp["bmi"] = bmi
	}
	c.JSON(http.StatusOK, resp)
}

// GetAssessment maneja GET /assessment.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	a, err := h.assessment.ComputeAssessment(profile)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("compute assessment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute assessment"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// GetResult maneja GET /result.
func (h *AssessmentHandler) GetResult(c *gin.Context) {
	view, err := h.assessment.Result(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoProfile):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("build result failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build result"})
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// Classify maneja POST /classification. Si el cliente se desconecta antes
// de que responda el predictor, no se escribe nada.
func (h *AssessmentHandler) Classify(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": service.ErrRateLimited.Error()})
		return
	}
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	status, err := h.assessment.FetchClassification(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, service.ErrDiscarded) {
			h.logger.Info("classification discarded", zap.Error(err))
			c.Abort()
			return
		}
		h.logger.Error("classification failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not classify"})
		return
	}

	code := http.StatusOK
	switch status.Status {
	case domain.ClassificationError:
		code = http.StatusBadGateway
	case domain.ClassificationInvalidInput:
		code = http.StatusUnprocessableEntity
	}
	c.JSON(code, status)
}

func (h *AssessmentHandler) loadProfile(c *gin.Context) (domain.Profile, bool) {
	profile, err := h.assessment.CurrentProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return domain.Profile{}, false
		}
		h.logger.Error("load profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return domain.Profile{}, false
	}
	return profile, true
}
