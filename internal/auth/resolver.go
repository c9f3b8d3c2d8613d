package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"shopping-samples/internal/config"
	"shopping-samples/internal/merchant"
)

// Resolver finds credentials for the samples, trying in order: application
// default credentials, a service account key, a stored refresh token and
// finally the interactive consent flow.
type Resolver struct {
	FindDefault func(ctx context.Context, scopes ...string) (*google.Credentials, error)
	Consent     func(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)
	Out         io.Writer
}

func NewResolver() *Resolver {
	return &Resolver{
		FindDefault: google.FindDefaultCredentials,
		Consent:     NewConsentFlow().Run,
		Out:         os.Stdout,
	}
}

// Client returns an HTTP client that authorizes its requests for the
// Content API.
func (r *Resolver) Client(ctx context.Context, info *config.MerchantInfo) (*http.Client, error) {
	if creds, err := r.FindDefault(ctx, merchant.Scope); err == nil {
		fmt.Fprintln(r.Out, "Using application default credentials.")
		return oauth2.NewClient(ctx, creds.TokenSource), nil
	}

	if info.Path == "" {
		return nil, errors.New("Must use Application Default Credentials with no configuration.")
	}

	serviceAccountFile := info.File(config.ServiceAccountFile)
	clientSecretsFile := info.File(config.ClientSecretsFile)

	if isFile(serviceAccountFile) {
		fmt.Fprintf(r.Out, "Using service account credentials from %s.\n", serviceAccountFile)
		data, err := os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, err
		}
		jwt, err := google.JWTConfigFromJSON(data, merchant.Scope)
		if err != nil {
			return nil, fmt.Errorf("reading service account key %s: %w", serviceAccountFile, err)
		}
		return jwt.Client(ctx), nil
	}

	if isFile(clientSecretsFile) {
		fmt.Fprintf(r.Out, "Using OAuth2 client secrets from %s.\n", clientSecretsFile)
		cfg, err := installedClientConfig(clientSecretsFile)
		if err != nil {
			return nil, err
		}
		return r.installedAppClient(ctx, cfg, NewTokenStorage(info.File(config.TokenFile)))
	}

	return nil, errors.New(strings.Join([]string{
		"No OAuth2 authentication files found. Checked:",
		"- Google Application Default Credentials",
		"- " + serviceAccountFile,
		"- " + clientSecretsFile,
		"Please read the accompanying documentation.",
	}, "\n"))
}

func (r *Resolver) installedAppClient(ctx context.Context, cfg *oauth2.Config, storage *TokenStorage) (*http.Client, error) {
	if refreshToken, err := storage.Get(); err == nil {
		ts := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
		tok, err := ts.Token()
		var re *oauth2.RetrieveError
		switch {
		case err == nil:
			fmt.Fprintf(r.Out, "Using stored credentials from %s.\n", storage.Path())
			return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(tok, ts)), nil
		case errors.As(err, &re):
			fmt.Fprintf(r.Out, "The stored credentials in the file %s cannot be refreshed, re-requesting access.\n", storage.Path())
		default:
			return nil, fmt.Errorf("refreshing stored credentials: %w", err)
		}
	}

	tok, err := r.Consent(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("requesting authorization: %w", err)
	}
	if tok.RefreshToken != "" {
		if err := storage.Put(tok.RefreshToken); err != nil {
			return nil, fmt.Errorf("storing credentials in %s: %w", storage.Path(), err)
		}
	}
	return cfg.Client(ctx, tok), nil
}

func installedClientConfig(file string) (*oauth2.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var secrets map[string]json.RawMessage
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	if _, ok := secrets["installed"]; !ok {
		return nil, errors.New("Please read the note about OAuth2 client IDs in the top-level README.")
	}
	cfg, err := google.ConfigFromJSON(data, merchant.Scope)
	if err != nil {
		return nil, fmt.Errorf("reading client secrets %s: %w", file, err)
	}
	return cfg, nil
}

func isFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
