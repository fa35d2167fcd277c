package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/mock"
	"github.com/qryptify/qryptify-client/models"
)

func newAnalysisHarness(t *testing.T) (AnalysisService, *mock.MockBackendGateway, *mock.MockAnalysisHistoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockBackendGateway(ctrl)
	history := mock.NewMockAnalysisHistoryRepository(ctrl)
	return NewAnalysisService(gateway, history, logger.Nop()), gateway, history
}

func TestAnalyzeRecordsHistory(t *testing.T) {
	svc, gateway, history := newAnalysisHarness(t)

	report := models.AnalysisReport{Algorithm: "AES", Category: "modern", Confidence: 97.4}
	gateway.EXPECT().AnalyzeFile(gomock.Any(), "secret.enc", gomock.Any()).Return(report, nil)
	history.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.AnalysisRecord) error {
			assert.Equal(t, "secret.enc", rec.FileName)
			assert.Equal(t, "AES", rec.Algorithm)
			assert.InDelta(t, 97.4, rec.Confidence, 0.001)
			assert.False(t, rec.AnalyzedAt.IsZero())
			return nil
		})

	got, err := svc.Analyze(context.Background(), "secret.enc", strings.NewReader("ciphertext"))
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestAnalyzeSurvivesHistoryFailure(t *testing.T) {
	svc, gateway, history := newAnalysisHarness(t)

	gateway.EXPECT().AnalyzeFile(gomock.Any(), "secret.enc", gomock.Any()).
		Return(models.AnalysisReport{Algorithm: "RSA", Confidence: 81}, nil)
	history.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	got, err := svc.Analyze(context.Background(), "secret.enc", strings.NewReader("ciphertext"))
	require.NoError(t, err, "a history write failure must not hide a successful analysis")
	assert.Equal(t, "RSA", got.Algorithm)
}

func TestAnalyzeValidation(t *testing.T) {
	svc, _, _ := newAnalysisHarness(t)

	_, err := svc.Analyze(context.Background(), "  ", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = svc.Analyze(context.Background(), "secret.enc", nil)
	assert.Error(t, err)
}

func TestHistoryDelegatesToRepository(t *testing.T) {
	svc, _, history := newAnalysisHarness(t)

	want := []models.AnalysisRecord{{FileName: "a.enc", Algorithm: "AES"}}
	history.EXPECT().ListRecords(gomock.Any(), "AES", 10).Return(want, nil)

	got, err := svc.History(context.Background(), " AES ", 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
