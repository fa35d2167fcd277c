package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/mock"
	"github.com/qryptify/qryptify-client/models"
)

func TestMailSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockBackendGateway(ctrl)
	svc := NewMailService(gateway, logger.Nop())

	gateway.EXPECT().IssueMail(gomock.Any(), models.MailRequest{
		Name:    "Eve",
		Email:   "eve@qryptify.io",
		Message: "The result page shows no confidence score.",
	}).Return(models.Envelope{Status: true, Message: "Mail sent"}, nil)

	err := svc.Send(context.Background(), models.MailRequest{
		Name:    " Eve ",
		Email:   " eve@qryptify.io ",
		Message: " The result page shows no confidence score. ",
	})
	assert.NoError(t, err)
}

func TestMailSendDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockBackendGateway(ctrl)
	svc := NewMailService(gateway, logger.Nop())

	gateway.EXPECT().IssueMail(gomock.Any(), gomock.Any()).
		Return(models.Envelope{Status: false, Message: "mailer unavailable"}, nil)

	err := svc.Send(context.Background(), models.MailRequest{Message: "hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeclined)
}
