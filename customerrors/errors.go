package customerrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Provider identifies one upstream and knows how to dig its error message
// out of a failure body. Every upstream wraps errors differently, so each
// provider carries the JSON paths to try, in order.
type Provider struct {
	// Name as used in configuration messages ("CoinAPI.io API key not configured.").
	Name string
	// Label as used in upstream error messages ("CoinAPI Error: 429 - ...").
	Label string
	// messagePaths are dot-separated JSON paths tried in order.
	messagePaths []string
}

var (
	CoinMarketCap = Provider{"CoinMarketCap", "CoinMarketCap API Error", []string{"status.error_message"}}
	CoinAPI       = Provider{"CoinAPI.io", "CoinAPI Error", []string{"error"}}
	Coinalyze     = Provider{"Coinalyze", "Coinalyze API Error", []string{"error"}}
	TwelveData    = Provider{"Twelve Data", "Twelve Data API Error", []string{"message"}}
	Gemini        = Provider{"Google AI", "Gemini API Error", []string{"error", "message"}}
	Tavily        = Provider{"Tavily", "Tavily API Error", []string{"error", "message"}}
)

// extractMessage walks the provider's candidate paths through the response
// body. Falls back to the HTTP status text when the body is unparsable or
// carries none of the expected fields.
func (p Provider) extractMessage(status int, body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, path := range p.messagePaths {
			if msg := lookupMessage(payload, path); msg != "" {
				return msg
			}
		}
	}
	return http.StatusText(status)
}

func lookupMessage(payload map[string]any, path string) string {
	var node any = payload
	for _, key := range strings.Split(path, ".") {
		obj, ok := node.(map[string]any)
		if !ok {
			return ""
		}
		node = obj[key]
	}
	switch v := node.(type) {
	case string:
		return v
	case map[string]any:
		// Gemini nests {error: {code, message, status}}.
		if msg, ok := v["message"].(string); ok {
			return msg
		}
	}
	return ""
}

// ConfigurationError means the key for one provider is missing from the
// environment. It is fatal to that provider's endpoints only.
type ConfigurationError struct {
	Provider Provider
}

func (e *ConfigurationError) Error() string {
	return e.Provider.Name + " API key not configured."
}

// ValidationError means a required request input is missing or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError is a non-success response from a third party.
type UpstreamError struct {
	Provider Provider
	Status   int
	Message  string
}

// NewUpstreamError builds an UpstreamError from a failure body using the
// provider's extraction paths.
func NewUpstreamError(p Provider, status int, body []byte) *UpstreamError {
	return &UpstreamError{
		Provider: p,
		Status:   status,
		Message:  p.extractMessage(status, body),
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %d - %s", e.Provider.Label, e.Status, e.Message)
}

// TimeoutError means one upstream call exceeded the client timeout.
type TimeoutError struct {
	Provider Provider
}

func (e *TimeoutError) Error() string {
	return e.Provider.Name + " request timed out."
}

// TransportError is a network-level failure talking to an upstream.
type TransportError struct {
	Provider Provider
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider.Name, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// WrapTransport classifies a client-side error as a timeout or a generic
// transport failure for the given provider.
func WrapTransport(p Provider, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Provider: p}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Provider: p}
	}
	return &TransportError{Provider: p, Err: err}
}
