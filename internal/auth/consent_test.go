package auth

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestConsentFlowExchangesCode(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token": "access", "refresh_token": "refresh", "token_type": "Bearer", "expires_in": 3600}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	cfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{AuthURL: "https://accounts.example.com/auth", TokenURL: srv.URL + "/token"},
		Scopes:       []string{"https://www.googleapis.com/auth/content"},
	}
	var out bytes.Buffer
	favicon := make(chan int, 1)
	flow := &ConsentFlow{
		Addr: "127.0.0.1:0",
		Out:  &out,
		OpenBrowser: func(authURL string) error {
			u, err := url.Parse(authURL)
			if err != nil {
				return err
			}
			q := u.Query()
			redirect := q.Get("redirect_uri") + "?state=" + url.QueryEscape(q.Get("state")) + "&code=the-code"
			go func() {
				status := 0
				resp, err := http.Get(q.Get("redirect_uri") + "favicon.ico")
				if err == nil {
					resp.Body.Close()
					status = resp.StatusCode
				}
				favicon <- status
				resp, err = http.Get(redirect)
				if err == nil {
					resp.Body.Close()
				}
			}()
			return nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	tok, err := flow.Run(ctx, cfg)
	require.NoError(t, err)

	assert.Equal(t, "refresh", tok.RefreshToken)
	assert.Equal(t, http.StatusNotFound, <-favicon)
	assert.Contains(t, out.String(), "Please visit this URL to authorize this application: https://accounts.example.com/auth?")
	assert.Contains(t, out.String(), "access_type=offline")
}

func TestConsentFlowCancelled(t *testing.T) {
	flow := &ConsentFlow{Addr: "127.0.0.1:0", Out: &bytes.Buffer{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.Run(ctx, &oauth2.Config{Endpoint: oauth2.Endpoint{AuthURL: "https://accounts.example.com/auth"}})

	assert.ErrorIs(t, err, context.Canceled)
}
