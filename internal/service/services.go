package service

import (
	"github.com/qryptify/qryptify-client/internal/adapter"
	"github.com/qryptify/qryptify-client/internal/faq"
	"github.com/qryptify/qryptify-client/internal/logger"
	"github.com/qryptify/qryptify-client/internal/session"
	"github.com/qryptify/qryptify-client/internal/store"
)

// Services bundles every client-side service behind one constructor.
type Services struct {
	Auth     AuthService
	Profile  ProfileService
	Analysis AnalysisService
	Support  SupportService
	Mail     MailService
}

// NewServices wires the service layer. advisor may be nil; the support
// service then runs on the FAQ catalog alone.
func NewServices(sess *session.Session, gateway adapter.BackendGateway, storages *store.ClientStorages, advisor Advisor, logger *logger.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(sess, gateway, logger),
		Profile:  NewProfileService(sess, gateway, logger),
		Analysis: NewAnalysisService(gateway, storages.AnalysisHistory, logger),
		Support:  NewSupportService(faq.NewMatcher(), advisor, logger),
		Mail:     NewMailService(gateway, logger),
	}
}
