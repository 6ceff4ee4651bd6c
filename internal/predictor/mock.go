package predictor

import (
	"context"

	"fitstart/internal/domain"
)

// MockClient permite tests sin llamar al predictor real.
type MockClient struct {
	Result domain.Classification
	Err    error

	Calls   int
	LastReq domain.ClassificationRequest
}

func (m *MockClient) Predict(ctx context.Context, req domain.ClassificationRequest) (domain.Classification, error) {
	m.Calls++
	m.LastReq = req
	return m.Result, m.Err
}
