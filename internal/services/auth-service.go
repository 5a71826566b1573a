package services

import (
	"errors"
	"strings"

	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService is the single login/refresh flow shared by all three
// roles. Each role gets its own instance bound to that role's
// credential store.
type AuthService interface {
	Login(email, password string) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	Role() string
}

type authService struct {
	store repository.CredentialStore
	role  string
	auth  helper.Auth
}

func NewAuthService(store repository.CredentialStore, role string, auth helper.Auth) AuthService {
	return &authService{store: store, role: role, auth: auth}
}

func (s *authService) Role() string {
	return s.role
}

func (s *authService) Login(email, password string) (*dto.LoginResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, helper.ErrValidation("email and password are required")
	}

	cred, err := s.store.CredentialByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUnauthenticated("invalid email")
		}
		return nil, helper.ErrInternal("failed to look up account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, helper.ErrUnauthenticated("invalid password")
	}

	// blocked accounts cannot log in, regardless of role
	if cred.IsBlocked {
		return nil, helper.ErrForbidden("account is blocked")
	}

	accessToken, err := s.auth.GenerateAccessToken(cred.ID, s.role)
	if err != nil {
		return nil, helper.ErrInternal("could not generate access token", err)
	}
	refreshToken, err := s.auth.GenerateRefreshToken(cred.ID, s.role)
	if err != nil {
		return nil, helper.ErrInternal("could not generate refresh token", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       cred.ID,
	}, nil
}

func (s *authService) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Role != s.role {
		return nil, helper.ErrForbidden("token role mismatch")
	}

	cred, err := s.store.CredentialByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("account not found")
		}
		return nil, helper.ErrInternal("failed to look up account", err)
	}
	if cred.IsBlocked {
		return nil, helper.ErrForbidden("account is blocked")
	}

	accessToken, err := s.auth.GenerateAccessToken(cred.ID, s.role)
	if err != nil {
		return nil, helper.ErrInternal("could not generate access token", err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}
