// internal/services/paypal.go
package services

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/config"
)

// PayPalOrderResponse is the slice of the Orders v2 API response we care
// about when verifying a client-side capture.
type PayPalOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"` // CREATED, APPROVED, COMPLETED, ...
	Payer  struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// paypalAPIError is the error body PayPal returns on non-2xx responses.
type paypalAPIError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// PayPalClient verifies PayPal SDK captures server-side. When no credentials
// are configured, Configured() is false and the caller decides whether to
// trust the client capture.
type PayPalClient struct {
	clientID string
	secret   string
	apiBase  string
	http     *resty.Client
}

func NewPayPalClient(cfg *config.Config) *PayPalClient {
	return &PayPalClient{
		clientID: cfg.PayPalClientID,
		secret:   cfg.PayPalSecret,
		apiBase:  cfg.PayPalAPIBase,
		http:     resty.New(),
	}
}

func (p *PayPalClient) Configured() bool {
	return p.clientID != "" && p.secret != ""
}

// accessToken fetches a client-credentials token for the REST API.
func (p *PayPalClient) accessToken() (string, error) {
	var tokenResp paypalTokenResponse
	var errorResp paypalAPIError

	resp, err := p.http.R().
		SetBasicAuth(p.clientID, p.secret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tokenResp).
		SetError(&errorResp).
		Post(p.apiBase + "/v1/oauth2/token")

	if err != nil {
		return "", fmt.Errorf("could not connect to PayPal: %w", err)
	}
	if resp.IsError() {
		log.Printf("ERROR: PayPal token request failed - Status: %s, Message: '%s'", resp.Status(), errorResp.Message)
		return "", fmt.Errorf("PayPal auth error: received status %s", resp.Status())
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("PayPal auth error: empty access token")
	}
	return tokenResp.AccessToken, nil
}

// VerifyOrder fetches the order and reports whether PayPal considers it
// COMPLETED. The full order is returned for logging and payer cross-checks.
func (p *PayPalClient) VerifyOrder(orderID string) (bool, *PayPalOrderResponse, error) {
	if !p.Configured() {
		return false, nil, fmt.Errorf("server is not configured for PayPal verification")
	}

	token, err := p.accessToken()
	if err != nil {
		return false, nil, err
	}

	var orderResp PayPalOrderResponse
	var errorResp paypalAPIError

	resp, err := p.http.R().
		SetAuthToken(token).
		SetResult(&orderResp).
		SetError(&errorResp).
		Get(fmt.Sprintf("%s/v2/checkout/orders/%s", p.apiBase, orderID))

	if err != nil {
		log.Printf("ERROR: PayPal order lookup failed for order '%s': %v", orderID, err)
		return false, nil, fmt.Errorf("could not connect to PayPal for verification: %w", err)
	}
	if resp.IsError() {
		log.Printf("ERROR: PayPal order API returned an error for order '%s' - Status: %s, Message: '%s'",
			orderID, resp.Status(), errorResp.Message)
		if errorResp.Message != "" {
			return false, nil, fmt.Errorf("PayPal order API error: %s", errorResp.Message)
		}
		return false, nil, fmt.Errorf("PayPal order API error: received status %s for order '%s'", resp.Status(), orderID)
	}

	log.Printf("INFO: PayPal verification for order '%s' returned status: '%s'", orderID, orderResp.Status)

	return orderResp.Status == "COMPLETED", &orderResp, nil
}
