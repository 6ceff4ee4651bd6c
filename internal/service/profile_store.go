package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fitstart/internal/domain"
	"fitstart/internal/repository"
)

const (
	KeyUserData = "userData"
	KeyBMI      = "bmi"
)

// ProfileStore guarda el unico registro vigente sobre un KVStore.
// Cada escritura pisa la anterior; no hay historial.
type ProfileStore struct {
	kv repository.KVStore
}

func NewProfileStore(kv repository.KVStore) *ProfileStore {
	return &ProfileStore{kv: kv}
}

func (s *ProfileStore) SaveProfile(ctx context.Context, p domain.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: encode profile: %w", ErrStorageFailure, err)
	}
	if err := s.kv.Put(ctx, KeyUserData, string(raw)); err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrStorageFailure, KeyUserData, err)
	}
	return nil
}

// LoadProfile devuelve ErrNoProfile si nunca se completo el onboarding.
func (s *ProfileStore) LoadProfile(ctx context.Context) (domain.Profile, error) {
	raw, ok, err := s.kv.Get(ctx, KeyUserData)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%w: get %s: %w", ErrStorageFailure, KeyUserData, err)
	}
	if !ok {
		return domain.Profile{}, ErrNoProfile
	}
	var p domain.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.Profile{}, fmt.Errorf("%w: decode profile: %w", ErrStorageFailure, err)
	}
	return p, nil
}

func (s *ProfileStore) SaveBMI(ctx context.Context, bmiText string) error {
	if err := s.kv.Put(ctx, KeyBMI, bmiText); err != nil {
		return fmt.Errorf("%w: put %s: %w", ErrStorageFailure, KeyBMI, err)
	}
	return nil
}

// ClearBMI pisa el BMI guardado con un valor vacio.
func (s *ProfileStore) ClearBMI(ctx context.Context) error {
	return s.SaveBMI(ctx, "")
}

// LoadBMI devuelve ok=false cuando no hay BMI guardado o quedo vacio.
func (s *ProfileStore) LoadBMI(ctx context.Context) (string, bool, error) {
	v, ok, err := s.kv.Get(ctx, KeyBMI)
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %w", ErrStorageFailure, KeyBMI, err)
	}
	if strings.TrimSpace(v) == "" {
		return "", false, nil
	}
	return v, ok, nil
}
