package passwordreset

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/user"
)

type Service interface {
	RequestReset(email string) error
	VerifyCode(email, code string) error
	ConfirmReset(email, code, newPassword string) error
}

type service struct {
	repo  Repository
	users user.UserRepository
}

func NewService(repo Repository, users user.UserRepository) Service {
	return &service{repo: repo, users: users}
}

// RequestReset issues a code for the email. An unknown address is not
// reported to the caller; only an insertion failure surfaces.
func (s *service) RequestReset(email string) error {
	if email == "" {
		return apperror.Validation("Email is required")
	}

	code, err := s.repo.CreateResetRequest(email)
	if err != nil {
		if errors.Is(err, ErrEmailNotFound) {
			logrus.WithField("email", email).Info("Reset requested for unknown email")
			return nil
		}
		return apperror.Persistence("Failed to create reset request", err)
	}

	// Out-of-band delivery hook: the mailer picks the code up from here.
	logrus.WithField("email", email).WithField("code", code).Info("Verification code issued")
	return nil
}

func (s *service) VerifyCode(email, code string) error {
	reset, err := s.repo.ValidateResetCode(email, code)
	if err != nil {
		return apperror.Persistence("Failed to validate code", err)
	}
	if reset == nil {
		return apperror.Validation("Invalid or expired verification code")
	}
	return nil
}

// ConfirmReset validates the code, stores the new password hash, consumes
// the code, then clears remaining reset rows for the email.
func (s *service) ConfirmReset(email, code, newPassword string) error {
	reset, err := s.repo.ValidateResetCode(email, code)
	if err != nil {
		return apperror.Persistence("Failed to validate code", err)
	}
	if reset == nil {
		return apperror.Validation("Invalid or expired verification code")
	}
	if len(newPassword) < 8 {
		return apperror.Validation("New password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Persistence("Failed to reset password", err)
	}
	if err := s.users.UpdatePasswordHash(email, string(hash)); err != nil {
		return apperror.Persistence("Failed to reset password", err)
	}

	if err := s.repo.MarkCodeAsUsed(reset.ResetID); err != nil {
		return apperror.Persistence("Failed to consume verification code", err)
	}
	s.repo.DeleteResetRequest(email)
	return nil
}
