package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "USR-AB12CD", "PATIENT")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	assert.NoError(t, j.Validate(ctx, token))

	userID, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "USR-AB12CD", userID)

	role, err := j.GetRole(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "PATIENT", role)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := j.Generate(ctx, "USR-AB12CD", "PATIENT")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail
	assert.Error(t, j.Validate(ctx, token))

	userID, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Empty(t, userID)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	// Totally invalid string
	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	userID, err := j.GetUserID(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Empty(t, userID)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	// Create token with one secret
	j1 := New("secret1", time.Minute)
	j2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := j1.Generate(ctx, "USR-AB12CD", "ADMIN")
	assert.NoError(t, err)

	// Validate with wrong secret should fail
	assert.Error(t, j2.Validate(ctx, token))
}
