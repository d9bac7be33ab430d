package passwordreset

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jpdeguzman/alkansave/internal/user"
)

// ErrEmailNotFound reports that no account exists for the address a reset
// was requested for.
var ErrEmailNotFound = errors.New("email not found")

const codeTTL = time.Hour

type Repository interface {
	CreateResetRequest(email string) (string, error)
	ValidateResetCode(email, code string) (*PasswordReset, error)
	MarkCodeAsUsed(resetID uint) error
	DeleteResetRequest(email string) bool
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateResetRequest issues a fresh 6-digit code expiring in one hour and
// returns it for out-of-band delivery. Outstanding codes for the same email
// are left untouched.
func (r *repository) CreateResetRequest(email string) (string, error) {
	var u user.User
	if err := r.db.Select("user_id").First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmailNotFound
		}
		return "", err
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	reset := PasswordReset{
		UserID:           u.UserID,
		Email:            email,
		VerificationCode: code,
		Expiration:       time.Now().Add(codeTTL),
	}
	if err := r.db.Create(&reset).Error; err != nil {
		return "", err
	}
	return code, nil
}

// ValidateResetCode returns the matching reset record only while it is
// unused and unexpired.
func (r *repository) ValidateResetCode(email, code string) (*PasswordReset, error) {
	var reset PasswordReset
	err := r.db.
		Where("email = ? AND verification_code = ? AND used = ? AND expiration > ?",
			email, code, false, time.Now()).
		First(&reset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reset, nil
}

func (r *repository) MarkCodeAsUsed(resetID uint) error {
	return r.db.Model(&PasswordReset{}).
		Where("reset_id = ?", resetID).
		Update("used", true).Error
}

// DeleteResetRequest removes all reset rows for the email. Failures are
// logged and swallowed; cleanup never blocks the reset flow.
func (r *repository) DeleteResetRequest(email string) bool {
	if err := r.db.Delete(&PasswordReset{}, "email = ?", email).Error; err != nil {
		logrus.WithError(err).WithField("email", email).Error("Failed to delete reset request")
		return false
	}
	return true
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
