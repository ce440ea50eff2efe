package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted spreadsheet values endpoint.
const DefaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Locator addresses one rectangular range in one spreadsheet,
// e.g. SheetID="1BxiMVs..." Range="Sheet1!A1:K100".
type Locator struct {
	SheetID string `json:"sheetId"`
	Range   string `json:"range"`
}

// Key returns a stable cache key for the locator.
func (l Locator) Key() string { return l.SheetID + "|" + l.Range }

func (l Locator) String() string { return l.SheetID + " " + l.Range }

// Credential is the opaque secret handed to the adapter. Exactly one of
// AccessToken (sent as a Bearer header) or APIKey (sent as a query parameter)
// must be set; the surrounding fields are carried but not interpreted.
type Credential struct {
	AccessToken string   `json:"access_token,omitempty"`
	APIKey      string   `json:"api_key,omitempty"`
	ClientEmail string   `json:"client_email,omitempty"`
	Scopes      []string `json:"scopes,omitempty"`
}

func (c *Credential) valid() bool {
	return c != nil && (c.AccessToken != "" || c.APIKey != "")
}

// LoadCredential reads a credential JSON file.
func LoadCredential(path string) (*Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials %q: %w", path, err)
	}
	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("parse credentials %q: %w", path, err)
	}
	if !cred.valid() {
		return nil, fmt.Errorf("credentials %q: need access_token or api_key", path)
	}
	return &cred, nil
}

// Client fetches spreadsheet values over HTTP. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	cred    *Credential
}

// NewClient builds a Client against baseURL (empty = DefaultBaseURL) with a
// conservative request timeout.
func NewClient(cred *Credential, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cred:    cred,
	}
}

// valuesResponse mirrors the values.get payload: a ragged 2D array of cell
// text where the first row is the header row.
type valuesResponse struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// Values fetches the locator's range and returns its rows, header row first.
// Failures are *APIError wrapping ErrAuth, ErrNotFound, or ErrTransient.
// An empty range resolves to ErrNotFound: the dashboard has nothing to show
// and "the range is empty" is indistinguishable from "the range is wrong".
func (c *Client) Values(ctx context.Context, loc Locator) ([][]string, error) {
	if !c.cred.valid() {
		return nil, &APIError{Kind: ErrAuth, Message: "no credential configured"}
	}

	u := fmt.Sprintf("%s/%s/values/%s", c.baseURL, url.PathEscape(loc.SheetID), url.PathEscape(loc.Range))
	if c.cred.APIKey != "" {
		u += "?key=" + url.QueryEscape(c.cred.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &APIError{Kind: ErrTransient, Message: err.Error()}
	}
	if c.cred.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cred.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: ErrTransient, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &APIError{Kind: ErrTransient, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    snippet(body),
		}
	}

	var vr valuesResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, &APIError{Kind: ErrTransient, Message: "decode values response: " + err.Error()}
	}
	if len(vr.Values) == 0 {
		return nil, &APIError{Kind: ErrNotFound, Message: fmt.Sprintf("range %q resolved to no rows", loc.Range)}
	}
	return vr.Values, nil
}

// snippet trims a response body down to something loggable.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
