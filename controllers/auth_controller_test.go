package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/humspot/api-go/config"
	"github.com/humspot/api-go/models"
)

func TestGuestLoginIssuesUsableToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/guest", "", nil)
	assertStatus(t, w, http.StatusOK)
	body := decodeJSONMap(t, w)

	token, ok := body["access_token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected access token, got %v", body)
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok || user["accountType"] != models.AccountTypeGuest {
		t.Fatalf("expected guest account, got %v", body["user"])
	}

	w = env.do(t, http.MethodGet, "/api/profile", token, nil)
	assertStatus(t, w, http.StatusOK)
}

func TestGoogleLoginCreatesUserOnce(t *testing.T) {
	env := setupTestEnv(t)

	tokenInfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(config.GoogleUserInfo{
			ID:            "google-123",
			Email:         "jane@example.com",
			VerifiedEmail: true,
			Name:          "Jane Doe",
			Picture:       "https://example.com/jane.png",
		})
	}))
	defer tokenInfo.Close()
	env.auth.GoogleConfig.TokenInfoURL = tokenInfo.URL

	w := env.do(t, http.MethodPost, "/api/auth/google", "", map[string]string{"id_token": "fake"})
	assertStatus(t, w, http.StatusOK)
	body := decodeJSONMap(t, w)
	user := body["user"].(map[string]interface{})
	if user["username"] != "jane" {
		t.Fatalf("expected username derived from email, got %v", user["username"])
	}

	// Same identity again reuses the row.
	w = env.do(t, http.MethodPost, "/api/auth/google", "", map[string]string{"id_token": "fake"})
	assertStatus(t, w, http.StatusOK)

	if got := env.countRows(t, &models.User{}, "google_id = ?", "google-123"); got != 1 {
		t.Fatalf("expected a single user row for the identity, got %d", got)
	}
}

func TestGoogleLoginRejectsBadToken(t *testing.T) {
	env := setupTestEnv(t)

	tokenInfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_token", http.StatusBadRequest)
	}))
	defer tokenInfo.Close()
	env.auth.GoogleConfig.TokenInfoURL = tokenInfo.URL

	w := env.do(t, http.MethodPost, "/api/auth/google", "", map[string]string{"id_token": "expired"})
	assertStatus(t, w, http.StatusUnauthorized)

	if got := env.countRows(t, &models.User{}, ""); got != 0 {
		t.Fatalf("rejected login must not create users, got %d", got)
	}
}

func TestGoogleLoginRequiresSomeToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/google", "", map[string]string{})
	assertStatus(t, w, http.StatusBadRequest)
}

func TestUpdateProfile(t *testing.T) {
	env := setupTestEnv(t)
	user, token := env.createUser(t, models.AccountTypeUser, models.AccountStatusActive)

	w := env.do(t, http.MethodPut, "/api/profile", token, map[string]string{
		"username": "new_handle",
	})
	assertStatus(t, w, http.StatusOK)

	var stored models.User
	if err := env.db.First(&stored, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if stored.Username != "new_handle" {
		t.Fatalf("expected username update, got %q", stored.Username)
	}
}
