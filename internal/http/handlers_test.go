package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitstart/internal/domain"
	"fitstart/internal/predictor"
	"fitstart/internal/repository"
	"fitstart/internal/service"
)

type mockLimiter struct {
	allow bool
}

func (m *mockLimiter) Allow(_ string) bool {
	return m.allow
}

type waitingPredictor struct {
	started chan struct{}
}

func (w *waitingPredictor) Predict(ctx context.Context, _ domain.ClassificationRequest) (domain.Classification, error) {
	close(w.started)
	<-ctx.Done()
	return domain.Classification{BodyType: domain.BodyTypeFit, RawLabel: "Fit"}, nil
}

type testDeps struct {
	router    *gin.Engine
	predictor *predictor.MockClient
	kv        *repository.MemoryKVStore
}

func setupRouter(limiter service.ClassifyLimiter) testDeps {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	kv := repository.NewMemoryKVStore()
	store := service.NewProfileStore(kv)
	mock := &predictor.MockClient{Result: domain.Classification{BodyType: domain.BodyTypeFit, RawLabel: "Fit"}}

	onboardingH := NewOnboardingHandler(logger, service.NewOnboardingService(logger, store))
	assessmentH := NewAssessmentHandler(logger, service.NewAssessmentService(logger, store, mock), store, limiter)
	return testDeps{
		router:    NewRouter(logger, onboardingH, assessmentH),
		predictor: mock,
		kv:        kv,
	}
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func scenarioFields() map[string]any {
	return map[string]any{
		"fields": map[string]string{
			"age":           "25",
			"gender":        "Male",
			"height":        "180",
			"weight":        "75",
			"activityLevel": "Active",
			"goal":          "Muscle gain",
			"motivation":    "Feel stronger",
		},
	}
}

func TestHealth(t *testing.T) {
	d := setupRouter(nil)
	rec := performRequest(d.router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestOnboardingSteps(t *testing.T) {
	d := setupRouter(nil)
	rec := performRequest(d.router, http.MethodGet, "/onboarding/steps", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Steps []domain.OnboardingStep `json:"steps"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Steps) != len(domain.OnboardingSteps) {
		t.Fatalf("expected %d steps, got %d", len(domain.OnboardingSteps), len(body.Steps))
	}
}

func TestOnboardingComplete_Success(t *testing.T) {
	d := setupRouter(nil)
	rec := performRequest(d.router, http.MethodPost, "/onboarding", scenarioFields())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var out service.Completion
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.BMIText != "23.1" || !out.BMIAvailable || !out.Persisted {
		t.Fatalf("unexpected completion %+v", out)
	}
}

func TestOnboardingComplete_UnknownField(t *testing.T) {
	d := setupRouter(nil)
	rec := performRequest(d.router, http.MethodPost, "/onboarding", map[string]any{
		"fields": map[string]string{"shoe_size": "42"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestProfileAndAssessment_NotFound(t *testing.T) {
	d := setupRouter(nil)
	for _, path := range []string{"/profile", "/assessment", "/result"} {
		rec := performRequest(d.router, http.MethodGet, path, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected status 404, got %d", path, rec.Code)
		}
	}
	rec := performRequest(d.router, http.MethodPost, "/classification", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("classification: expected status 404, got %d", rec.Code)
	}
}

func TestAssessment_AfterOnboarding(t *testing.T) {
	d := setupRouter(nil)
	performRequest(d.router, http.MethodPost, "/onboarding", scenarioFields())

	rec := performRequest(d.router, http.MethodGet, "/assessment", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var a domain.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.BMIText != "23.1" || a.Recommendation.Category != domain.RecommendationHealthy {
		t.Fatalf("unexpected assessment %+v", a)
	}

	rec = performRequest(d.router, http.MethodGet, "/profile", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var p struct {
		Profile domain.Profile `json:"profile"`
		BMI     string         `json:"bmi"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Profile.Gender != "Male" || p.BMI != "23.1" {
		t.Fatalf("unexpected profile response %+v", p)
	}
}

func TestAssessment_InvalidHeight(t *testing.T) {
	d := setupRouter(nil)
	body := scenarioFields()
	body["fields"].(map[string]string)["height"] = "0"
	performRequest(d.router, http.MethodPost, "/onboarding", body)

	rec := performRequest(d.router, http.MethodGet, "/assessment", nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}
}

func TestClassification_Success(t *testing.T) {
	d := setupRouter(nil)
	performRequest(d.router, http.MethodPost, "/onboarding", scenarioFields())

	rec := performRequest(d.router, http.MethodPost, "/classification", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var st domain.ClassificationStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Status != domain.ClassificationClassified || st.BodyType != domain.BodyTypeFit {
		t.Fatalf("unexpected status %+v", st)
	}
	want := domain.ClassificationRequest{Age: 25, Gender: 1, Height: 180, Weight: 75, ActivityLevel: 2, Goal: 1}
	if d.predictor.LastReq != want {
		t.Fatalf("expected request %+v, got %+v", want, d.predictor.LastReq)
	}
}

func TestClassification_PredictorDown(t *testing.T) {
	d := setupRouter(nil)
	d.predictor.Err = predictor.ErrUnavailable
	performRequest(d.router, http.MethodPost, "/onboarding", scenarioFields())

	rec := performRequest(d.router, http.MethodPost, "/classification", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	var st domain.ClassificationStatus
	_ = json.Unmarshal(rec.Body.Bytes(), &st)
	if st.Status != domain.ClassificationError || st.Message == "" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestClassification_RateLimited(t *testing.T) {
	d := setupRouter(&mockLimiter{allow: false})
	performRequest(d.router, http.MethodPost, "/onboarding", scenarioFields())

	rec := performRequest(d.router, http.MethodPost, "/classification", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
	if d.predictor.Calls != 0 {
		t.Fatalf("predictor must not be called when rate limited")
	}
}

func TestResult_AfterOnboarding(t *testing.T) {
	d := setupRouter(nil)
	performRequest(d.router, http.MethodPost, "/onboarding", scenarioFields())

	rec := performRequest(d.router, http.MethodGet, "/result", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var view domain.ResultView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Greeting != "Hello 25 years old Male, your BMI is 23.1." {
		t.Fatalf("unexpected greeting %q", view.Greeting)
	}
}

func TestClassification_ClientGoneWritesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	store := service.NewProfileStore(repository.NewMemoryKVStore())
	wp := &waitingPredictor{started: make(chan struct{})}

	onboardingH := NewOnboardingHandler(logger, service.NewOnboardingService(logger, store))
	assessmentH := NewAssessmentHandler(logger, service.NewAssessmentService(logger, store, wp), store, nil)
	router := NewRouter(logger, onboardingH, assessmentH)

	if rec := performRequest(router, http.MethodPost, "/onboarding", scenarioFields()); rec.Code != http.StatusCreated {
		t.Fatalf("onboarding: expected 201, got %d", rec.Code)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-wp.started
		cancel()
	}()

	req := httptest.NewRequest(http.MethodPost, "/classification", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Body.Len() != 0 {
		t.Fatalf("expected no body after client went away, got %q", rec.Body.String())
	}
	var st domain.ClassificationStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err == nil {
		t.Fatalf("expected no JSON written, decoded %+v", st)
	}
}
