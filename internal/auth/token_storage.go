package auth

import (
	"encoding/json"
	"fmt"
	"os"
)

// TokenStorage keeps the OAuth2 refresh token between runs. Access tokens are
// never stored, they are refreshed on every run.
type TokenStorage struct {
	path string
}

func NewTokenStorage(path string) *TokenStorage {
	return &TokenStorage{path: path}
}

func (s *TokenStorage) Path() string {
	return s.path
}

type storedToken struct {
	RefreshToken string `json:"refresh_token"`
}

// Get returns the stored refresh token.
func (s *TokenStorage) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	var tok storedToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return "", fmt.Errorf("decoding %s: %w", s.path, err)
	}
	if tok.RefreshToken == "" {
		return "", fmt.Errorf("%s has no refresh_token", s.path)
	}
	return tok.RefreshToken, nil
}

func (s *TokenStorage) Put(refreshToken string) error {
	data, err := json.MarshalIndent(storedToken{RefreshToken: refreshToken}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o600)
}
