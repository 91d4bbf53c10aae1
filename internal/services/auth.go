package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) error
}

// SessionStore keeps the live sessions of connected clients.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenGenerator issues the token a client presents to resume its session.
type TokenGenerator interface {
	Generate(ctx context.Context, session *models.Session) (string, error)
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenGenerator

	writeMu sync.Mutex
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register creates a new account. The password is stored as a bcrypt hash.
// An existing account is left untouched and ErrUserAlreadyExists is returned.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	svc.writeMu.Lock()
	defer svc.writeMu.Unlock()

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Infow("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("user already exists", "username", username)
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	logger.Log.Infow("user registered", "username", username)
	return nil
}

// Authenticate returns the user matching username and password, or nil when
// there is no match. Unknown users and wrong passwords are not told apart.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return &models.User{Username: user.Username}, nil
}

// Login authenticates the user, opens a session for them and returns the
// session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if user == nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	session := models.NewSession()
	session.SetCurrentUser(user.Username)

	token, err := svc.tokens.Generate(ctx, session)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, session); err != nil {
		logger.Log.Errorw("failed to store session", "err", err)
		return "", err
	}

	logger.Log.Infow("user logged in", "username", user.Username, "session_id", session.ID)
	return token, nil
}

// Logout clears the current user of the session and forgets the session.
func (svc *AuthService) Logout(ctx context.Context, session *models.Session) error {
	username, _ := session.CurrentUser()
	session.ClearCurrentUser()

	if err := svc.sessions.Delete(ctx, session.ID); err != nil {
		logger.Log.Errorw("failed to drop session", "session_id", session.ID, "err", err)
		return err
	}

	logger.Log.Infow("user logged out", "username", username, "session_id", session.ID)
	return nil
}
