package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/store"
	"github.com/qryptify/qryptify-client/models"
)

type analysisService struct {
	gateway adapter.BackendGateway
	history store.AnalysisHistoryRepository
	logger  *logger.Logger
}

func NewAnalysisService(gateway adapter.BackendGateway, history store.AnalysisHistoryRepository, logger *logger.Logger) AnalysisService {
	return &analysisService{gateway: gateway, history: history, logger: logger}
}

func (s *analysisService) Analyze(ctx context.Context, fileName string, content io.Reader) (models.AnalysisReport, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return models.AnalysisReport{}, fmt.Errorf("file name is required")
	}
	if content == nil {
		return models.AnalysisReport{}, fmt.Errorf("file content is required")
	}

	report, err := s.gateway.AnalyzeFile(ctx, fileName, content)
	if err != nil {
		return models.AnalysisReport{}, fmt.Errorf("analyze %s: %w", fileName, err)
	}

	// History is a convenience; a failed write must not hide a
	// successful analysis.
	rec := models.AnalysisRecord{
		FileName:   fileName,
		Algorithm:  report.Algorithm,
		Category:   report.Category,
		Confidence: report.Confidence,
		AnalyzedAt: time.Now(),
	}
	if saveErr := s.history.SaveRecord(ctx, rec); saveErr != nil {
		s.logger.Warn().Err(saveErr).Str("file", fileName).Msg("failed to record analysis history")
	}

	s.logger.Info().
		Str("file", fileName).
		Str("algorithm", report.Algorithm).
		Float64("confidence", report.Confidence).
		Msg("analysis completed")
	return report, nil
}

func (s *analysisService) History(ctx context.Context, algorithm string, limit int) ([]models.AnalysisRecord, error) {
	records, err := s.history.ListRecords(ctx, strings.TrimSpace(algorithm), limit)
	if err != nil {
		return nil, fmt.Errorf("list analysis history: %w", err)
	}
	return records, nil
}
