package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/models"
)

type mailService struct {
	gateway adapter.BackendGateway
	logger  *logger.Logger
}

func NewMailService(gateway adapter.BackendGateway, logger *logger.Logger) MailService {
	return &mailService{gateway: gateway, logger: logger}
}

func (m *mailService) Send(ctx context.Context, req models.MailRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return ErrMessageRequired
	}

	env, err := m.gateway.IssueMail(ctx, req)
	if err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	if !env.OK() {
		return declined(env)
	}

	m.logger.Info().Str("from", req.Email).Msg("contact mail submitted")
	return nil
}
