package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/nexuscare/nexuscare/internal/models"
	"github.com/nexuscare/nexuscare/internal/storage"
)

// Master admin credentials honored by the fallback path only, so the admin
// console stays reachable with an empty local database.
const (
	masterAdminEmail    = "admin@gmail.com"
	masterAdminPassword = "admin123"
)

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Password         string          `json:"password"`
	Role             models.UserRole `json:"role,omitempty"`
	SecurityQuestion string          `json:"securityQuestion"`
	SecurityAnswer   string          `json:"securityAnswer"`
}

// authResponse is the wire shape shared by the signup and login endpoints.
type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// normalizeAnswer applies the single recovery-answer normalization rule:
// lower-cased and trimmed, on store and on compare.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Signup creates an account. The email must be unused; the role defaults to
// PATIENT. New accounts start unverified.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrValidation
	}
	if req.Role == "" {
		req.Role = models.RolePatient
	}
	if !models.ValidRole(req.Role) {
		return nil, ErrValidation
	}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", req, &resp); err != nil {
		c.fallback("signup", err)
		return c.signupLocal(req)
	}
	if !resp.Success || resp.User == nil {
		return nil, ErrIdentityConflict
	}
	return resp.User, nil
}

func (c *Client) signupLocal(req SignupRequest) (*models.User, error) {
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == req.Email {
			return nil, ErrIdentityConflict
		}
	}

	rec := models.UserRecord{
		User: models.User{
			ID:               models.NewRecordID(models.UserIDPrefix),
			Username:         req.Name,
			Email:            req.Email,
			Role:             req.Role,
			IsVerified:       false,
			SecurityQuestion: req.SecurityQuestion,
		},
		Password:       req.Password,
		SecurityAnswer: normalizeAnswer(req.SecurityAnswer),
	}
	users = append(users, rec)
	if err := c.store.Save(storage.CollectionUsers, users); err != nil {
		return nil, err
	}
	user := rec.User
	return &user, nil
}

// Login authenticates by exact email and password equality against the
// local store when the API is unreachable.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		c.fallback("login", err)
		return c.loginLocal(email, password)
	}
	if !resp.Success || resp.User == nil {
		return nil, ErrInvalidCredentials
	}
	return resp.User, nil
}

func (c *Client) loginLocal(email, password string) (*models.User, error) {
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			user := u.User
			return &user, nil
		}
	}
	if email == masterAdminEmail && password == masterAdminPassword {
		return &models.User{
			ID:         "USR-ADMIN",
			Username:   "System Admin",
			Email:      masterAdminEmail,
			Role:       models.RoleAdmin,
			IsVerified: true,
		}, nil
	}
	return nil, ErrInvalidCredentials
}

// verifyIdentityResponse carries the recovery question for an account.
type verifyIdentityResponse struct {
	Success  bool   `json:"success"`
	Question string `json:"question,omitempty"`
	Message  string `json:"message,omitempty"`
}

// VerifyIdentity returns the stored security question for account recovery.
func (c *Client) VerifyIdentity(ctx context.Context, email string) (string, error) {
	body := map[string]string{"email": email}
	var resp verifyIdentityResponse
	if err := c.do(ctx, http.MethodPost, "/verify-identity", body, &resp); err != nil {
		c.fallback("verify-identity", err)
		return c.verifyIdentityLocal(email)
	}
	if !resp.Success {
		return "", ErrIdentityNotFound
	}
	return resp.Question, nil
}

func (c *Client) verifyIdentityLocal(email string) (string, error) {
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return "", err
	}
	for _, u := range users {
		if u.Email == email {
			return u.SecurityQuestion, nil
		}
	}
	return "", ErrIdentityNotFound
}

// resetResponse reports the recovery dispatch message.
type resetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ResetPassword checks the security answer and reports the recovery
// message. The stored password is not rotated by the fallback path; the
// recovery mail carries the actual reset link.
func (c *Client) ResetPassword(ctx context.Context, email, answer string) (string, error) {
	body := map[string]string{"email": email, "answer": answer}
	var resp resetResponse
	if err := c.do(ctx, http.MethodPost, "/reset-password", body, &resp); err != nil {
		c.fallback("reset-password", err)
		return c.resetPasswordLocal(email, answer)
	}
	if !resp.Success {
		return "", ErrSecurityChallengeFailed
	}
	return resp.Message, nil
}

func (c *Client) resetPasswordLocal(email, answer string) (string, error) {
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return "", err
	}
	for _, u := range users {
		if u.Email == email && u.SecurityAnswer == normalizeAnswer(answer) {
			return "Recovery payload dispatched via SMTP Emulator.", nil
		}
	}
	return "", ErrSecurityChallengeFailed
}

// VerifyUser marks an account as verified. Local-only operation: the
// original backend has no corresponding endpoint.
func (c *Client) VerifyUser(ctx context.Context, userID string) error {
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].IsVerified = true
			return c.store.Save(storage.CollectionUsers, users)
		}
	}
	return ErrNotFound
}

// Patients lists all accounts with the PATIENT role. Local-only operation.
func (c *Client) Patients(ctx context.Context) ([]models.User, error) {
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	patients := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RolePatient {
			patients = append(patients, u.User)
		}
	}
	return patients, nil
}

// UpdateUserRole overwrites the role of an account. Local-only operation;
// authorization is the caller's concern.
func (c *Client) UpdateUserRole(ctx context.Context, userID string, role models.UserRole) error {
	if !models.ValidRole(role) {
		return ErrValidation
	}
	var users []models.UserRecord
	if err := c.store.List(storage.CollectionUsers, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == userID {
			users[i].Role = role
			return c.store.Save(storage.CollectionUsers, users)
		}
	}
	return ErrNotFound
}
