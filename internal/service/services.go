package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stf-adrian/start-from-scratch/internal/config"
	"github.com/stf-adrian/start-from-scratch/internal/repository"
)

type Services struct {
	Auth   *AuthService
	Audit  *AuditService
	Tokens *TokenIssuer
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *logrus.Logger) *Services {
	hasher := NewPasswordHasher(cfg.BcryptCost)
	tokens := NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	audit := NewAuditService(repos.LoginRecord, log)

	return &Services{
		Auth:   NewAuthService(repos.User, hasher, tokens, audit),
		Audit:  audit,
		Tokens: tokens,
	}
}
