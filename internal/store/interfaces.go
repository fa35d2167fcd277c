package store

import (
	"context"

	"github.com/qryptify/qryptify-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository owns the single persisted credential row. It is the
// durable half of the session holder's write-through scheme: every
// in-memory credential change is mirrored here so a restarted client can
// resume the session.
type SessionRepository interface {
	// SaveCredential upserts the persisted credential. There is at most
	// one row; saving always supersedes the previous credential.
	SaveCredential(ctx context.Context, cred models.Credential) error

	// LoadCredential returns the persisted credential, or
	// [ErrLocalSessionNotFound] when none is stored.
	LoadCredential(ctx context.Context) (models.Credential, error)

	// ClearCredential removes the persisted credential. Clearing an
	// already-empty store is not an error.
	ClearCredential(ctx context.Context) error
}

// AnalysisHistoryRepository records completed file analyses locally so
// past results stay available without another backend round trip.
type AnalysisHistoryRepository interface {
	// SaveRecord appends one analysis result to the history.
	SaveRecord(ctx context.Context, rec models.AnalysisRecord) error

	// ListRecords returns history entries, newest first. A non-empty
	// algorithm filters to matching results; limit caps the result
	// size when positive.
	ListRecords(ctx context.Context, algorithm string, limit int) ([]models.AnalysisRecord, error)
}
