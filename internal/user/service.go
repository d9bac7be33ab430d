package user

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/utils"
)

type Service interface {
	Register(dto RegisterDTO) (*User, error)
	Login(email, password string) (*User, error)
	GetProfile(userID uint, sessionID string) (*ProfileData, error)
	UpdateProfile(userID uint, input UpdateProfileInput) (*UpdateResult, error)
}

type service struct {
	repo          UserRepository
	defaultAvatar string
}

func NewService(repo UserRepository, defaultAvatar string) Service {
	return &service{repo: repo, defaultAvatar: defaultAvatar}
}

func (s *service) Register(dto RegisterDTO) (*User, error) {
	dto.FirstName = strings.TrimSpace(dto.FirstName)
	dto.LastName = strings.TrimSpace(dto.LastName)
	dto.Email = sanitizeEmail(strings.TrimSpace(dto.Email))

	if dto.FirstName == "" || dto.LastName == "" || dto.Email == "" {
		return nil, apperror.Validation("First name, last name, and email are required")
	}
	if !strings.Contains(dto.Email, "@") {
		return nil, apperror.Validation("Invalid email address")
	}
	if len(dto.Password) < 8 {
		return nil, apperror.Validation("Password must be at least 8 characters")
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, apperror.Persistence("Failed to create account", err)
	}
	if existing != nil && !existing.IsDeleted {
		return nil, apperror.Validation("Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Persistence("Failed to create account", err)
	}

	u := User{
		FirstName:     dto.FirstName,
		LastName:      dto.LastName,
		Email:         dto.Email,
		PasswordHash:  string(hash),
		Role:          RoleUser,
		AccountStatus: "Active",
	}
	if dto.DOB != "" {
		dob, err := utils.ParseDate(dto.DOB)
		if err != nil {
			return nil, apperror.Validation("Invalid date of birth")
		}
		u.DOB = dob
	}

	if err := s.repo.Create(&u); err != nil {
		return nil, apperror.Persistence("Failed to create account", err)
	}
	return &u, nil
}

func (s *service) Login(email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, apperror.Persistence("Login failed", err)
	}
	if u == nil || u.IsDeleted {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	return u, nil
}

func (s *service) GetProfile(userID uint, sessionID string) (*ProfileData, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, apperror.Persistence("Failed to load profile", err)
	}
	if u == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	avatar := s.defaultAvatar
	if u.ProfilePicture != nil && *u.ProfilePicture != "" {
		avatar = *u.ProfilePicture
	}

	return &ProfileData{
		FirstName: escapeHTML(u.FirstName),
		LastName:  escapeHTML(u.LastName),
		DOB:       u.DOB.String(),
		Email:     sanitizeEmail(u.Email),
		Avatar:    sanitizeURL(avatar),
		SessionID: sessionID,
	}, nil
}

func (s *service) UpdateProfile(userID uint, input UpdateProfileInput) (*UpdateResult, error) {
	updates := map[string]interface{}{
		"first_name": strings.TrimSpace(input.FirstName),
		"last_name":  strings.TrimSpace(input.LastName),
		"email":      sanitizeEmail(strings.TrimSpace(input.Email)),
	}

	if input.DOB == "" {
		updates["dob"] = nil
	} else {
		dob, err := utils.ParseDate(input.DOB)
		if err != nil {
			return nil, apperror.Validation("Invalid date of birth")
		}
		updates["dob"] = dob
	}

	if input.NewPassword != "" {
		if input.Password == "" {
			return nil, apperror.Validation("Current password is required for changes")
		}

		u, err := s.repo.FindByID(userID)
		if err != nil {
			return nil, apperror.Persistence("Failed to update profile", err)
		}
		if u == nil {
			return nil, apperror.NotFound("Profile not found")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
			return nil, apperror.Unauthorized("Current password is incorrect")
		}
		if len(input.NewPassword) < 8 {
			return nil, apperror.Validation("New password must be at least 8 characters")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Persistence("Failed to update profile", err)
		}
		updates["password_hash"] = string(hash)
	}

	if input.AvatarPath != "" {
		updates["profile_picture"] = input.AvatarPath
	}

	if err := s.repo.UpdateProfile(userID, updates); err != nil {
		return nil, apperror.Persistence("Failed to update profile in database", err)
	}

	result := &UpdateResult{
		FirstName: updates["first_name"].(string),
		LastName:  updates["last_name"].(string),
	}
	if input.AvatarPath != "" {
		result.Avatar = &input.AvatarPath
	}
	return result, nil
}
