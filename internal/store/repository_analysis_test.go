package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/models"
)

func seedHistory(t *testing.T, repo AnalysisHistoryRepository) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []models.AnalysisRecord{
		{FileName: "a.enc", Algorithm: "AES", Category: "modern", Confidence: 91.5, AnalyzedAt: base},
		{FileName: "b.enc", Algorithm: "RSA", Category: "classical", Confidence: 84.0, AnalyzedAt: base.Add(time.Minute)},
		{FileName: "c.enc", Algorithm: "AES", Category: "modern", Confidence: 77.25, AnalyzedAt: base.Add(2 * time.Minute)},
	}
	for _, rec := range records {
		require.NoError(t, repo.SaveRecord(ctx, rec))
	}
}

func TestAnalysisHistoryRepository_ListNewestFirst(t *testing.T) {
	repo := NewAnalysisHistoryRepository(newTestDB(t), logger.Nop())
	seedHistory(t, repo)

	got, err := repo.ListRecords(context.Background(), "", 0)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "c.enc", got[0].FileName)
	assert.Equal(t, "a.enc", got[2].FileName)
}

func TestAnalysisHistoryRepository_FilterByAlgorithm(t *testing.T) {
	repo := NewAnalysisHistoryRepository(newTestDB(t), logger.Nop())
	seedHistory(t, repo)

	got, err := repo.ListRecords(context.Background(), "AES", 0)

	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, rec := range got {
		assert.Equal(t, "AES", rec.Algorithm)
	}
}

func TestAnalysisHistoryRepository_Limit(t *testing.T) {
	repo := NewAnalysisHistoryRepository(newTestDB(t), logger.Nop())
	seedHistory(t, repo)

	got, err := repo.ListRecords(context.Background(), "", 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c.enc", got[0].FileName)
}

func TestAnalysisHistoryRepository_EmptyHistory(t *testing.T) {
	repo := NewAnalysisHistoryRepository(newTestDB(t), logger.Nop())

	got, err := repo.ListRecords(context.Background(), "", 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}
