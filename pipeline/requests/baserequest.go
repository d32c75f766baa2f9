package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Shared client with a per request timeout, so a stuck source API can't
// stall a batch.
var client = &http.Client{Timeout: 15 * time.Second}

// Do a simple request to the given url and return the response.
func Request(url string, method string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	return client.Do(req)
}

// PostJSON does a POST request with a JSON encoded payload.
// The InTeleria champion list endpoint expects the page length on the body.
func PostJSON(url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return client.Do(req)
}
