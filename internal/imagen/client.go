// Package imagen calls the Gemini Imagen prediction API and stores the
// resulting image in the artifact store.
package imagen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hamflx/imagen3-mcp/internal/store"
)

// Client generates images through the Imagen prediction endpoint and writes
// them to the store. One successful call writes exactly one file; failed
// calls write nothing.
type Client struct {
	Config     *Config
	Store      *store.Store
	HTTPClient *http.Client
}

// NewClient creates a client with the configured request timeout.
func NewClient(cfg *Config, st *store.Store) *Client {
	return &Client{
		Config: cfg,
		Store:  st,
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// predictRequest is the Imagen prediction request body.
type predictRequest struct {
	Instances  []instance `json:"instances"`
	Parameters parameters `json:"parameters"`
}

type instance struct {
	Prompt string `json:"prompt"`
}

type parameters struct {
	SampleCount int `json:"sampleCount"`
}

// predictResponse is the Imagen prediction response body.
type predictResponse struct {
	Predictions []prediction `json:"predictions"`
}

type prediction struct {
	MimeType           string `json:"mimeType"`
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

// Generate produces one image for prompt and returns the stored filename.
// Failures are returned as *GenError so callers can match on the kind.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	filename := store.NewFilename()

	// Credentials are checked before any network call.
	if err := c.Config.Validate(); err != nil {
		return "", err
	}

	reqBody, err := json.Marshal(predictRequest{
		Instances:  []instance{{Prompt: prompt}},
		Parameters: parameters{SampleCount: 1},
	})
	if err != nil {
		return "", errHTTP(fmt.Errorf("failed to marshal request: %w", err))
	}

	endpoint := c.Config.BaseURL + predictPath + "?key=" + url.QueryEscape(c.Config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", errHTTP(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", errTimeout(c.Config.Timeout, err)
		}
		return "", errHTTP(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", errTimeout(c.Config.Timeout, err)
		}
		return "", errHTTP(err)
	}

	var pr predictResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return "", errParse(err, string(raw))
	}

	if len(pr.Predictions) == 0 {
		return "", errEmptyResult()
	}

	// Single-sample contract: only the first prediction is used.
	data, err := base64.StdEncoding.DecodeString(pr.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return "", errDecode(err)
	}

	if err := c.Store.Write(filename, data); err != nil {
		return "", errStore(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s (%s)\n", filename, humanize.Bytes(uint64(len(data))))
	return filename, nil
}

// isTimeout reports whether err was caused by the client timeout or a
// context deadline rather than a plain transport failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
