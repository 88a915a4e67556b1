package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nexuscare/nexuscare/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestVerifyIdentityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockIdentityVerifier(ctrl)
	handler := NewVerifyIdentityHandler(mockSvc)

	t.Run("question returned", func(t *testing.T) {
		mockSvc.EXPECT().
			VerifyIdentity(gomock.Any(), "jane@example.com").
			Return("First pet?", nil)

		body, _ := json.Marshal(VerifyIdentityRequest{Email: "jane@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/verify-identity", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp VerifyIdentityResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "First pet?", resp.Question)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockSvc.EXPECT().
			VerifyIdentity(gomock.Any(), "nobody@example.com").
			Return("", services.ErrIdentityNotFound)

		body, _ := json.Marshal(VerifyIdentityRequest{Email: "nobody@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/verify-identity", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/verify-identity", bytes.NewReader([]byte("{bad")))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPasswordResetter(ctrl)
	handler := NewResetPasswordHandler(mockSvc)

	t.Run("correct answer", func(t *testing.T) {
		mockSvc.EXPECT().
			ResetPassword(gomock.Any(), "jane@example.com", "Rex").
			Return("Recovery payload dispatched via SMTP Emulator.", nil)

		body, _ := json.Marshal(ResetPasswordRequest{Email: "jane@example.com", Answer: "Rex"})
		req := httptest.NewRequest(http.MethodPost, "/reset-password", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ResetPasswordResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("wrong answer", func(t *testing.T) {
		mockSvc.EXPECT().
			ResetPassword(gomock.Any(), "jane@example.com", "fido").
			Return("", services.ErrSecurityChallengeFailed)

		body, _ := json.Marshal(ResetPasswordRequest{Email: "jane@example.com", Answer: "fido"})
		req := httptest.NewRequest(http.MethodPost, "/reset-password", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
