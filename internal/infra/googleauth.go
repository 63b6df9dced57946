package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	googleTokenURL = "https://oauth2.googleapis.com/token"
	sheetsScope    = "https://www.googleapis.com/auth/spreadsheets"
	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// TokenSource produces OAuth2 bearer tokens for the Sheets API using the
// service-account JWT assertion flow: sign an RS256 assertion with the
// account's private key, exchange it at the token endpoint, cache the result
// until shortly before expiry.
type TokenSource struct {
	email      string
	privateKey string // PEM
	httpClient *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewTokenSource(email, privateKeyPEM string) *TokenSource {
	return &TokenSource{
		email:      email,
		privateKey: privateKeyPEM,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Token returns a valid access token, refreshing it when the cached one is
// within a minute of expiry.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Until(ts.expires) > time.Minute {
		return ts.token, nil
	}

	assertion, err := ts.signAssertion()
	if err != nil {
		return "", fmt.Errorf("googleauth: sign assertion: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("googleauth: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("googleauth: token endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("googleauth: token endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("googleauth: decode token response: %w", err)
	}

	ts.token = body.AccessToken
	ts.expires = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return ts.token, nil
}

func (ts *TokenSource) signAssertion() (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(ts.privateKey))
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   ts.email,
		"scope": sheetsScope,
		"aud":   googleTokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
}
