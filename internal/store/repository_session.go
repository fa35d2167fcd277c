package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveCredential(ctx context.Context, cred models.Credential) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, upsertSessionCredential,
		cred.Access,
		cred.ExpiresAt,
		cred.SavedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveCredential").
			Msg("failed to execute upsert for session credential")
		return fmt.Errorf("failed to save session credential: %w", err)
	}

	return nil
}

func (s *sessionRepository) LoadCredential(ctx context.Context) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var cred models.Credential
	row := s.DB.QueryRowContext(ctx, getSessionCredential)

	err := row.Scan(&cred.Access, &cred.ExpiresAt, &cred.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.LoadCredential").
			Msg("failed to scan session credential")
		return models.Credential{}, fmt.Errorf("failed to load session credential: %w", err)
	}

	return cred, nil
}

func (s *sessionRepository) ClearCredential(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSessionCredential); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearCredential").
			Msg("failed to delete session credential")
		return fmt.Errorf("failed to clear session credential: %w", err)
	}

	return nil
}
