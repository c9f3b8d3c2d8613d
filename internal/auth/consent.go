package auth

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"

	"shopping-samples/internal/handler/oauth"
	"shopping-samples/internal/logger"
	"shopping-samples/platform/web"
)

// ConsentFlow runs the installed application authorization flow: it serves
// the redirect on a loopback port, sends the user to the consent page and
// exchanges the returned code for a token.
type ConsentFlow struct {
	Addr        string
	Out         io.Writer
	OpenBrowser func(url string) error
}

func NewConsentFlow() *ConsentFlow {
	return &ConsentFlow{
		Addr:        "127.0.0.1:0",
		Out:         os.Stdout,
		OpenBrowser: browser.OpenURL,
	}
}

func (f *ConsentFlow) Run(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", f.Addr)
	if err != nil {
		return nil, fmt.Errorf("starting local callback server: %w", err)
	}

	flowCfg := *cfg
	flowCfg.RedirectURL = "http://" + ln.Addr().String() + "/"

	state := uuid.New().String()
	results := make(chan oauth.Result, 1)
	handler := oauth.NewCallbackHandler(state, results)

	router := web.NewRouter()
	router.Use(web.LogRequests)
	router.Handle(http.MethodGet, "/", handler.Callback)
	router.NotFound(handler.NotFound)

	stop := router.Start(ln)
	defer stop()

	authURL := flowCfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Fprintf(f.Out, "Please visit this URL to authorize this application: %s\n", authURL)
	if f.OpenBrowser != nil {
		if err := f.OpenBrowser(authURL); err != nil {
			logger.Debug("could not open browser", "error", err)
		}
	}

	select {
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		tok, err := flowCfg.Exchange(ctx, res.Code)
		if err != nil {
			return nil, fmt.Errorf("exchanging authorization code: %w", err)
		}
		return tok, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
