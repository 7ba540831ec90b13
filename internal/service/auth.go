package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/models"
	"github.com/ADITYAVOFFICIAL/AI-Recipes-Generator/internal/types"
)

var (
	// ErrInvalidCredentials deliberately covers both wrong-password and
	// unknown-account so login responses cannot distinguish them.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
)

const sessionTTL = 30 * 24 * time.Hour

// AuthService handles accounts and sessions.
type AuthService struct {
	db        *gorm.DB
	sessions  SessionStore
	jwtSecret string
}

var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates an AuthService over the identity table and session
// registry.
func NewAuthService(db *gorm.DB, sessions SessionStore, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// Register creates an account. The name is optional.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateSession verifies the credentials and issues a session token.
func (s *AuthService) CreateSession(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.New()
	token, err := s.generateToken(user.ID, sessionID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Put(ctx, sessionID.String(), user.ID.String(), sessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// DeleteSession revokes the session carried by the token. A token that does
// not parse has no session to revoke and is not an error.
func (s *AuthService) DeleteSession(ctx context.Context, token string) error {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID.String())
}

// CurrentUser resolves the token to its account. Every failure mode, from an
// expired token to a backend error, reports "no session" with a nil error;
// unexpected failures are logged before being collapsed. A caller cannot tell
// a transient backend failure from being logged out.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, nil
	}
	ok, err := s.sessions.Exists(ctx, claims.SessionID.String())
	if err != nil {
		log.Printf("session lookup failed, treating as no session: %v", err)
		return nil, nil
	}
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", claims.UserID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("account lookup failed, treating as no session: %v", err)
		}
		return nil, nil
	}
	return &user, nil
}

func (s *AuthService) generateToken(userID, sessionID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"session_id": sessionID.String(),
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token. It checks the signature
// and expiry only; session revocation is checked by CurrentUser and the auth
// middleware.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, err
	}

	sessionIDStr, ok := claims["session_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return nil, err
	}

	return &types.TokenClaims{UserID: userID, SessionID: sessionID}, nil
}

// SessionActive reports whether the session in claims is still registered.
func (s *AuthService) SessionActive(ctx context.Context, claims *types.TokenClaims) (bool, error) {
	return s.sessions.Exists(ctx, claims.SessionID.String())
}
