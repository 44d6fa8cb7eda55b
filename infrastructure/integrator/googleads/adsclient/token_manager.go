package adsclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mcp-api/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TokenManager exchanges the configured refresh token for access tokens and
// keeps a valid one cached. Refreshes are serialized behind a mutex so
// concurrent tool calls never race the OAuth endpoint.
type TokenManager struct {
	cfg         config.GoogleAds
	oauthConfig *oauth2.Config

	mu          sync.Mutex
	token       *oauth2.Token
	stopRefresh chan struct{}
	stopOnce    sync.Once
}

func NewTokenManager(cfg config.GoogleAds) *TokenManager {
	return &TokenManager{
		cfg: cfg,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
		},
		stopRefresh: make(chan struct{}),
	}
}

// AccessToken returns a valid access token, refreshing when the cached one
// is missing or within a minute of expiry.
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.token != nil && tm.token.Valid() && time.Until(tm.token.Expiry) > time.Minute {
		return tm.token.AccessToken, nil
	}

	if err := tm.refreshLocked(ctx); err != nil {
		return "", err
	}

	return tm.token.AccessToken, nil
}

// ForceRefresh discards the cached token and fetches a new one. Used after
// the API answers UNAUTHENTICATED with a token the manager thought valid.
func (tm *TokenManager) ForceRefresh(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.token = nil
	return tm.refreshLocked(ctx)
}

func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	src := tm.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: tm.cfg.RefreshToken})

	token, err := src.Token()
	if err != nil {
		return fmt.Errorf("refreshing Google Ads access token: %w", err)
	}

	tm.token = token
	logrus.WithField("expires_at", token.Expiry.Format(time.RFC3339)).Debug("Google Ads access token refreshed")

	return nil
}

// StartAutoRefresh renews the token periodically so the first tool call
// after an idle stretch does not pay the refresh round trip.
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.ForceRefresh(context.Background()); err != nil {
		logrus.WithError(err).Error("initial Google Ads token refresh failed")
	}

	// Access tokens last one hour; renew well before that.
	refreshInterval := 45 * time.Minute
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := tm.ForceRefresh(context.Background()); err != nil {
				logrus.WithError(err).Error("periodic Google Ads token refresh failed")
				ticker.Reset(5 * time.Minute)
			} else {
				ticker.Reset(refreshInterval)
			}
		case <-tm.stopRefresh:
			logrus.Info("stopping Google Ads token refresh loop")
			return
		}
	}
}

// StopAutoRefresh stops the background refresh goroutine.
func (tm *TokenManager) StopAutoRefresh() {
	tm.stopOnce.Do(func() {
		close(tm.stopRefresh)
	})
}
