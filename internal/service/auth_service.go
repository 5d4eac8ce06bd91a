package service

import (
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService issues and verifies the bearer tokens used by the API. Tokens
// are HS256 JWTs with a fixed expiry window; there is no refresh mechanism.
type AuthService struct {
	userRepo    *repository.UserRepository
	tenantRepo  *repository.TenantRepository
	secretKey   string
	tokenExpiry time.Duration
}

// JWTClaims carries the identity reference and role tag.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(
	userRepo *repository.UserRepository,
	tenantRepo *repository.TenantRepository,
	secretKey string,
	tokenExpiry time.Duration,
) *AuthService {
	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}
	return &AuthService{
		userRepo:    userRepo,
		tenantRepo:  tenantRepo,
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a login account. Role defaults to tenant; registering a
// tenant also creates the linked tenant profile in the same transaction.
func (s *AuthService) Register(req model.RegisterRequest) (*model.User, error) {
	role := req.Role
	if role == "" {
		role = model.RoleTenant
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	repoUser := &repository.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	err = s.userRepo.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(repoUser).Error; err != nil {
			return err
		}

		if role == model.RoleTenant {
			userID := repoUser.ID
			tenant := &model.Tenant{
				UserID: &userID,
				Name:   req.Name,
				Phone:  "",
			}
			if err := tx.Create(tenant).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &model.User{
		ID:    repoUser.ID,
		Name:  repoUser.Name,
		Email: repoUser.Email,
		Role:  repoUser.Role,
	}, nil
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (*model.AuthResponse, error) {
	repoUser, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(repoUser.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := &model.User{
		ID:    repoUser.ID,
		Name:  repoUser.Name,
		Email: repoUser.Email,
		Role:  repoUser.Role,
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	repoUser.LastLoginAt = &now
	if err := s.userRepo.Update(repoUser); err != nil {
		// Not fatal: login proceeds with a stale last-login timestamp.
		log.Printf("Failed to update last login time: %v", err)
	}

	return &model.AuthResponse{
		Token:     token,
		Role:      user.Role,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.tokenExpiry),
		User:      user,
	}, nil
}

// ValidateToken parses and verifies a token, resolving the current user.
func (s *AuthService) ValidateToken(tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	repoUser, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return &model.User{
		ID:    repoUser.ID,
		Name:  repoUser.Name,
		Email: repoUser.Email,
		Role:  repoUser.Role,
	}, nil
}

// ValidateUser resolves a user by id, for requests already authenticated by
// the middleware.
func (s *AuthService) ValidateUser(userID string) (*model.User, error) {
	repoUser, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return &model.User{
		ID:    repoUser.ID,
		Name:  repoUser.Name,
		Email: repoUser.Email,
		Role:  repoUser.Role,
	}, nil
}

func (s *AuthService) generateToken(user *model.User) (string, error) {
	claims := JWTClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "hostel-management",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}
