package service

import (
	"context"

	"github.com/qryptify/qryptify-client/internal/faq"
	"github.com/qryptify/qryptify-client/internal/logger"
)

type supportService struct {
	matcher *faq.Matcher
	advisor Advisor
	logger  *logger.Logger
}

// NewSupportService builds the support ladder. advisor may be nil when no
// model API key is configured; the service then answers from the FAQ
// catalog alone.
func NewSupportService(matcher *faq.Matcher, advisor Advisor, logger *logger.Logger) SupportService {
	return &supportService{matcher: matcher, advisor: advisor, logger: logger}
}

func (s *supportService) Ask(ctx context.Context, question string) string {
	if answer, ok := s.matcher.Reply(question); ok {
		return answer
	}

	if s.advisor == nil {
		return faq.Fallback
	}

	answer, err := s.advisor.Ask(ctx, question)
	if err != nil {
		s.logger.Warn().Err(err).Msg("advisor unavailable, falling back to canned reply")
		return faq.Fallback
	}
	return answer
}
