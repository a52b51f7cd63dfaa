package usecase

import (
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/jwt"
)

var ErrForbiddenRole = errs.New("insufficient permissions")

// Principal is who a validated token speaks for.
type Principal struct {
	Subject string
	Role    string
}

func (p Principal) IsAdmin() bool {
	return p.Role == jwt.RoleAdmin
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &Principal{Subject: claims.Subject, Role: claims.Role}, nil
}
