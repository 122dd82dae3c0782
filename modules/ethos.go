package modules

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// DefaultBaseURL is the assumed Ethos profile endpoint. The real API contract
// (URL, auth scheme, fields beyond "score") is unconfirmed; override with
// ETHOS_API_URL once real documentation is available.
const DefaultBaseURL = "https://api.ethos.com/v1/profile"

// ScoreUnavailable is rendered when the API response carries no score.
const ScoreUnavailable = "N/A"

// Outcome classifies a lookup attempt.
type Outcome int

const (
	// OutcomeOK means the API returned 200 and the body was parsed.
	OutcomeOK Outcome = iota
	// OutcomeLookupFailed means the API answered with a non-200 status.
	OutcomeLookupFailed
	// OutcomeUnexpected means the request or parse itself failed.
	OutcomeUnexpected
)

// LookupResult is the typed outcome of one profile lookup. Handle is always
// the normalized handle; Score is set only for OutcomeOK and Err only for
// OutcomeUnexpected.
type LookupResult struct {
	Outcome Outcome
	Handle  string
	Score   string
	Err     error
}

// Client calls the Ethos profile API. Construct one at startup and share it
// across invocations; it holds no per-call state.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient returns a client for the given bearer key. An empty baseURL
// selects DefaultBaseURL. No timeout is configured on the outbound call.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: http.DefaultClient,
	}
}

// NormalizeHandle strips a single leading "@" if present. No other
// validation: any string is accepted and passed through to the API.
func NormalizeHandle(handle string) string {
	return strings.TrimPrefix(handle, "@")
}

// Lookup fetches the Ethos profile for a handle and classifies the outcome.
// Every failure is absorbed into the result; nothing escapes as an error.
func (c *Client) Lookup(handle string) LookupResult {
	handle = NormalizeHandle(handle)

	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/"+handle, nil)
	if err != nil {
		return LookupResult{Outcome: OutcomeUnexpected, Handle: handle, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	httpc := c.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return LookupResult{
			Outcome: OutcomeUnexpected,
			Handle:  handle,
			Err:     fmt.Errorf("ethos http err: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LookupResult{Outcome: OutcomeLookupFailed, Handle: handle}
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return LookupResult{
			Outcome: OutcomeUnexpected,
			Handle:  handle,
			Err:     fmt.Errorf("ethos decode err: %w", err),
		}
	}

	return LookupResult{Outcome: OutcomeOK, Handle: handle, Score: renderScore(body)}
}

// renderScore extracts the "score" field, tolerating numeric and string
// values. JSON numbers arrive as float64; integral ones render without a
// decimal point.
func renderScore(body map[string]interface{}) string {
	v, ok := body["score"]
	if !ok || v == nil {
		return ScoreUnavailable
	}
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
