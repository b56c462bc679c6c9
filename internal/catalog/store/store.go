package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindOffice(ctx context.Context, rawName string) (string, error) {
	// Longest pattern wins so "City Engineering Office - North" beats
	// "Engineering Office".
	query := `
		SELECT canonical_name
		FROM office_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var canonical string

	err := s.db.QueryRowContext(ctx, query, rawName).Scan(&canonical)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding office: %w", err)
	}

	return canonical, nil
}

func (s *Store) CreateMapping(ctx context.Context, rawPattern, canonicalName string) error {
	query := `
		INSERT INTO office_mappings (raw_pattern, canonical_name, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, canonicalName)
	if err != nil {
		return fmt.Errorf("creating office mapping: %w", err)
	}

	return nil
}
