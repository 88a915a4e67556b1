package services

import (
	"context"
	"errors"
	"strings"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/nexuscare/nexuscare/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrIdentityConflict        = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrIdentityNotFound        = errors.New("identity not found")
	ErrSecurityChallengeFailed = errors.New("security challenge failed")
	ErrNotFound                = errors.New("record not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	UpdateRole(ctx context.Context, id string, role string) (int64, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID string, role string) (string, error)
}

// SignupInput carries the account-creation payload.
type SignupInput struct {
	Name             string
	Email            string
	Password         string
	Role             models.UserRole
	SecurityQuestion string
	SecurityAnswer   string
}

// AuthService handles signup, login and account recovery.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Signup creates an account. Emails are stored lower-cased, recovery
// answers lower-cased and trimmed, passwords as bcrypt hashes.
func (svc *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	email := strings.ToLower(in.Email)

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already registered", "email", email)
		return nil, ErrIdentityConflict
	}

	role := in.Role
	if role == "" {
		role = models.RolePatient
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := models.UserDB{
		ID:               models.NewRecordID(models.UserIDPrefix),
		Username:         in.Name,
		Email:            email,
		PasswordHash:     string(hashed),
		Role:             string(role),
		IsVerified:       false,
		SecurityQuestion: in.SecurityQuestion,
		SecurityAnswer:   strings.ToLower(strings.TrimSpace(in.SecurityAnswer)),
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// Login authenticates a user and returns the identity with a session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Errorw("identity does not exist", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	pub := user.Public()
	return &pub, token, nil
}

// VerifyIdentity returns the security question for an account.
func (svc *AuthService) VerifyIdentity(ctx context.Context, email string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrIdentityNotFound
	}
	return user.SecurityQuestion, nil
}

// ResetPassword checks the recovery answer and returns the dispatch
// message. The actual mail carries the reset link; the password itself is
// not rotated here.
func (svc *AuthService) ResetPassword(ctx context.Context, email, answer string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || user.SecurityAnswer != strings.ToLower(strings.TrimSpace(answer)) {
		logger.Log.Errorw("security challenge failed", "email", email)
		return "", ErrSecurityChallengeFailed
	}
	return "Recovery payload dispatched via SMTP Emulator.", nil
}

// UpdateRole overwrites a user's role.
func (svc *AuthService) UpdateRole(ctx context.Context, userID string, role models.UserRole) error {
	n, err := svc.writer.UpdateRole(ctx, userID, string(role))
	if err != nil {
		logger.Log.Errorw("failed to update role", "userID", userID, "err", err)
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
