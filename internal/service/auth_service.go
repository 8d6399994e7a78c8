package service

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"prepwise-backend-V1.0/internal/model"
	"prepwise-backend-V1.0/internal/repository"
	"prepwise-backend-V1.0/utilities"
)

// AuthService handles signup and login. Both return the user plus a signed
// token.
type AuthService interface {
	Register(name, email, password string) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := utilities.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func (s *authService) Login(email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utilities.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	user.Password = ""
	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
