package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// IntentCreator is the contract the payment ledger consumes: hand the
// provider an amount, get back a client-usable charge secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error)
}

// Client talks to the payment provider's REST API.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a new provider client with a bounded request timeout.
func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent asks the provider for a charge intent and returns its client
// secret. Amount is in integer minor-currency units; no state is kept here.
func (c *Client) CreateIntent(ctx context.Context, amountInCents int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountInCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var perr providerError
		if err := json.NewDecoder(resp.Body).Decode(&perr); err == nil && perr.Error.Message != "" {
			return "", fmt.Errorf("payment provider rejected intent: %s", perr.Error.Message)
		}
		return "", fmt.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", fmt.Errorf("decode intent response: %w", err)
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("intent response missing client secret")
	}
	return intent.ClientSecret, nil
}
