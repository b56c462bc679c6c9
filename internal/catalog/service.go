// Package catalog canonicalizes free-typed implementing-office names coming
// in through bulk imports. Spreadsheets from field offices spell the same
// office a dozen ways; the catalog learns the preferred spelling once and
// suggests it for every later match.
package catalog

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	FindOffice(ctx context.Context, rawName string) (string, error)
	CreateMapping(ctx context.Context, rawPattern, canonicalName string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the canonical office name for a raw spelling, or an empty
// string when nothing matches.
func (s *Service) Suggest(ctx context.Context, rawName string) (string, error) {
	return s.repo.FindOffice(ctx, rawName)
}

// Learn remembers a raw-pattern to canonical-name mapping.
func (s *Service) Learn(ctx context.Context, rawPattern, canonicalName string) error {
	return s.repo.CreateMapping(ctx, rawPattern, canonicalName)
}
