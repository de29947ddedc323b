package services

import (
	"bienesraices/internal/auth"
	"bienesraices/internal/email"
	"bienesraices/internal/logger"
	"bienesraices/internal/models"
	"bienesraices/internal/repositories"
	"bienesraices/internal/services/dto"
	"bienesraices/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterForm) error
	ConfirmAccount(token string) error
	Login(req *dto.LoginForm) (string, error)
	RequestPasswordReset(emailAddr string) error
	CheckResetToken(token string) error
	ResetPassword(token, newPassword string) error
	// ResolveUser re-fetches the user behind a session claim so the
	// request always sees fresh confirmation/ownership state.
	ResolveUser(userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
	jwtManager    *auth.JWTManager
}

func NewAuthService(
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	jwtManager *auth.JWTManager,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
		jwtManager:    jwtManager,
	}
}

// Register creates an unconfirmed user and sends the confirmation
// email. A failed send is logged but does not fail the registration;
// the token stays valid and support can resend the link.
func (s *AuthServiceImpl) Register(req *dto.RegisterForm) error {
	if len(req.Password) < auth.MinPasswordLength {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Confirmed:    false,
		ConfirmToken: auth.GenerateOneTimeToken(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendConfirmation(user.Email, user.Name, user.ConfirmToken); err != nil {
		logger.Error("failed to send confirmation email", "email", user.Email, "error", err)
	}

	return nil
}

// ConfirmAccount consumes a confirmation token. The token is cleared
// exactly once; an unknown token mutates nothing.
func (s *AuthServiceImpl) ConfirmAccount(token string) error {
	user, err := s.userRepo.FindByConfirmToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	user.ConfirmToken = ""
	user.Confirmed = true

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// Login authenticates and returns a signed session token.
func (s *AuthServiceImpl) Login(req *dto.LoginForm) (string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUnknownUser
		}
		return "", apperrors.InternalError(err)
	}

	if !user.Confirmed {
		return "", apperrors.ErrAccountNotConfirmed
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", apperrors.ErrWrongPassword
	}

	token, err := s.jwtManager.Generate(user.ID, user.Name)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	return token, nil
}

// RequestPasswordReset issues a fresh reset token and mails the link.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUnknownUser
		}
		return apperrors.InternalError(err)
	}

	user.ResetToken = auth.GenerateOneTimeToken()
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordReset(user.Email, user.Name, user.ResetToken); err != nil {
		logger.Error("failed to send reset email", "email", user.Email, "error", err)
	}

	return nil
}

// CheckResetToken reports whether a reset token belongs to a user.
func (s *AuthServiceImpl) CheckResetToken(token string) error {
	if _, err := s.userRepo.FindByResetToken(token); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ResetPassword consumes the reset token and stores the new hash.
// The token is validated again here, not only on the GET that showed
// the form.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLength {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func (s *AuthServiceImpl) ResolveUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	// Views and session state never need the hash.
	user.PasswordHash = ""
	return user, nil
}
