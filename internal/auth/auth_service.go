package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "go-resto/internal/auth/errors"
	"go-resto/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
}

type tokenClaims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

type service struct {
	repo   Repository
	jwt    config.JWTConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, jwtCfg config.JWTConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if jwtCfg.AccessTTL <= 0 {
		jwtCfg.AccessTTL = 15 * time.Minute
	}
	if jwtCfg.RefreshTTL <= 0 {
		jwtCfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &service{repo: repo, jwt: jwtCfg, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	cred, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return TokenPair{}, AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHashed), []byte(password)); err != nil {
		s.logger.Info("login rejected", zap.String("employee_id", cred.EmployeeID))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !cred.IsFeatured {
		return TokenPair{}, AuthResponse{}, autherrors.ErrAccountDisabled
	}

	pair, err := s.issuePair(cred.EmployeeID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, mapToResponse(cred), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.Type != TokenTypeRefresh || claims.Subject == "" {
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	cred, err := s.repo.FindByEmployeeID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenPair{}, AuthResponse{}, err
	}
	if !cred.IsFeatured {
		return TokenPair{}, AuthResponse{}, autherrors.ErrAccountDisabled
	}

	pair, err := s.issuePair(cred.EmployeeID)
	if err != nil {
		return TokenPair{}, AuthResponse{}, err
	}
	return pair, mapToResponse(cred), nil
}

func (s *service) issuePair(employeeID string) (TokenPair, error) {
	access, err := s.sign(employeeID, TokenTypeAccess, s.jwt.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.sign(employeeID, TokenTypeRefresh, s.jwt.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) sign(subject, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwt.Secret))
	if err != nil {
		s.logger.Error("sign token failed", zap.String("type", typ), zap.Error(err))
		return "", autherrors.ErrTokenGenerationFailed
	}
	return signed, nil
}

func mapToResponse(c *Credential) AuthResponse {
	return AuthResponse{
		EmployeeID: c.EmployeeID,
		FullName:   c.FullName,
		Email:      c.Email,
		RoleID:     c.RoleID,
		RoleName:   c.RoleName,
	}
}
