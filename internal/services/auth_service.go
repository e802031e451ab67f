package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/authorflow/backend/internal/config"
	"github.com/authorflow/backend/internal/dto"
	"github.com/authorflow/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingFields      = errors.New("email, password and username are required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// AuthService owns credentials and token issuance. Projects and entities
// only ever see the User profile it writes as a side effect of SignUp.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// SignUp creates a credential and then, best-effort, the matching profile
// row. A profile insert failure is logged and does not fail the signup; the
// two tables are not kept consistent transactionally.
func (s *AuthService) SignUp(req *dto.SignupRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	var existing models.Credential
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cred := models.Credential{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&cred).Error; err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	user := models.User{
		ID:               cred.ID,
		Email:            req.Email,
		Username:         req.Username,
		SubscriptionTier: models.TierFree,
	}
	if err := s.db.Create(&user).Error; err != nil {
		slog.Error("profile creation failed after signup",
			"user_id", cred.ID.String(), "action", "signup", "error", err.Error())
	}

	return &user, nil
}

// SignIn verifies the password and returns the profile plus a fresh session.
// A missing profile row does not block login; the returned user then carries
// only the credential's id and email.
func (s *AuthService) SignIn(req *dto.LoginRequest) (*models.User, *dto.Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, nil, ErrMissingFields
	}

	var cred models.Credential
	if err := s.db.Where("email = ?", req.Email).First(&cred).Error; err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	user := models.User{ID: cred.ID, Email: cred.Email}
	if err := s.db.First(&user, "id = ?", cred.ID).Error; err != nil {
		slog.Warn("profile missing on login", "user_id", cred.ID.String())
	}

	session, err := s.generateSession(cred.ID, cred.Email)
	if err != nil {
		return nil, nil, err
	}

	return &user, session, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// session is issued.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.Session, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var cred models.Credential
	if err := s.db.First(&cred, "id = ?", stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("credential not found: %w", err)
	}

	return s.generateSession(cred.ID, cred.Email)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) generateSession(userID uuid.UUID, email string) (*dto.Session, error) {
	accessToken, err := s.generateAccessToken(userID, email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &dto.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.cfg.JWTAccessExpiry.Seconds()),
	}, nil
}

func (s *AuthService) generateAccessToken(userID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(userID uuid.UUID) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
