package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	UserType        string
	FullName        string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string

	// Vendor-only fields.
	BusinessName string
	MarketName   string
	Category     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.BusinessName = strings.TrimSpace(in.BusinessName)
	in.MarketName = strings.TrimSpace(in.MarketName)
	in.Category = strings.TrimSpace(in.Category)

	if in.UserType == "" || in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, validationf("Please fill in all required fields")
	}
	userType := model.UserType(in.UserType)
	if userType != model.UserTypeCustomer && userType != model.UserTypeVendor {
		return nil, validationf("Please select account type")
	}
	if in.Password != in.ConfirmPassword {
		return nil, validationf("Passwords do not match")
	}
	if len(in.Password) < 6 {
		return nil, validationf("Password must be at least 6 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, validationf("Please enter a valid email address")
	}
	if userType == model.UserTypeVendor {
		if in.BusinessName == "" || in.MarketName == "" || in.Category == "" {
			return nil, validationf("Please fill in all business information")
		}
	}

	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:         in.Email,
		PasswordHash:  string(hash),
		UserType:      userType,
		FullName:      in.FullName,
		PhoneNumber:   in.PhoneNumber,
		IsActive:      true,
		EmailVerified: true,
	}

	var vendor *model.VendorProfile
	var customer *model.CustomerProfile
	switch userType {
	case model.UserTypeVendor:
		vendor = &model.VendorProfile{
			BusinessName: in.BusinessName,
			MarketName:   in.MarketName,
			Category:     in.Category,
			IsActive:     true,
		}
	case model.UserTypeCustomer:
		customer = &model.CustomerProfile{}
	}

	if err := s.users.CreateWithProfile(ctx, user, vendor, customer); err != nil {
		return nil, err
	}

	_ = s.users.LogActivity(ctx, &model.ActivityLog{
		UserID:  user.ID,
		Action:  "register",
		Details: fmt.Sprintf("registered as %s", userType),
	})
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, validationf("Please fill in all fields")
	}
	user, err := s.users.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	// Losing the timestamp must not fail the login.
	_ = s.users.TouchLastLogin(ctx, user.ID)
	_ = s.users.LogActivity(ctx, &model.ActivityLog{UserID: user.ID, Action: "login"})
	return user, nil
}
