package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/models"
)

type analysisHistoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnalysisHistoryRepository(db *DB, logger *logger.Logger) AnalysisHistoryRepository {
	return &analysisHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *analysisHistoryRepository) SaveRecord(ctx context.Context, rec models.AnalysisRecord) error {
	log := logger.FromContext(ctx)

	_, err := a.DB.ExecContext(ctx, saveAnalysisRecord,
		rec.FileName,
		rec.Algorithm,
		rec.Category,
		rec.Confidence,
		rec.AnalyzedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "analysisHistoryRepository.SaveRecord").
			Str("file_name", rec.FileName).
			Msg("failed to insert analysis record")
		return fmt.Errorf("failed to save analysis record (file=%s): %w", rec.FileName, err)
	}

	return nil
}

func (a *analysisHistoryRepository) ListRecords(ctx context.Context, algorithm string, limit int) ([]models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "file_name", "algorithm", "category", "confidence", "analyzed_at").
		From("analysis_history").
		OrderBy("analyzed_at DESC").
		PlaceholderFormat(sq.Dollar)

	if algorithm != "" {
		builder = builder.Where(sq.Eq{"algorithm": algorithm})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history query: %w", err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "analysisHistoryRepository.ListRecords").
			Msg("failed to query analysis history")
		return nil, fmt.Errorf("failed to query analysis history: %w", err)
	}
	defer rows.Close()

	var records []models.AnalysisRecord
	for rows.Next() {
		var rec models.AnalysisRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.FileName,
			&rec.Algorithm,
			&rec.Category,
			&rec.Confidence,
			&rec.AnalyzedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis history: %w", err)
	}

	return records, nil
}
