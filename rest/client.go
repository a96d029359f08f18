package rest

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/damedic/fhir-r5-go/model"
	"github.com/damedic/fhir-r5-go/model/r5"
)

const defaultClientFormat = FormatJSON

// Client calls the $validate operation of a remote FHIR server.
type Client struct {
	BaseURL *url.URL

	// Client defaults to http.DefaultClient.
	Client *http.Client

	// Format defaults to JSON.
	Format Format
}

// Validate posts resource to the type-level $validate endpoint of the server.
// An empty profile lets the server pick the profile from meta.profile.
//
// Error responses carrying an OperationOutcome are returned as *OutcomeError.
func (c *Client) Validate(ctx context.Context, resource model.Resource, profile string) (r5.OperationOutcome, error) {
	if c.BaseURL == nil {
		return r5.OperationOutcome{}, fmt.Errorf("base URL is nil")
	}

	u := c.BaseURL.JoinPath(resource.ResourceType(), operationValidate)
	if profile != "" {
		u.RawQuery = url.Values{"profile": {profile}}.Encode()
	}

	// Use configured format or default
	requestFormat := cmp.Or(c.Format, defaultClientFormat)

	var body bytes.Buffer
	if err := encode(&body, resource, requestFormat); err != nil {
		return r5.OperationOutcome{}, fmt.Errorf("marshal resource: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), &body)
	if err != nil {
		return r5.OperationOutcome{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", string(requestFormat))
	req.Header.Set("Accept", string(requestFormat))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return r5.OperationOutcome{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return r5.OperationOutcome{}, c.handleErrorResponse(resp)
	}

	outcome, err := c.decodeOutcome(resp.Body, c.detectResponseFormat(resp))
	if err != nil {
		return r5.OperationOutcome{}, fmt.Errorf("parse response: %w", err)
	}
	return outcome, nil
}

func (c *Client) httpClient() *http.Client {
	if c.Client == nil {
		return http.DefaultClient
	}
	return c.Client
}

func (c *Client) detectResponseFormat(resp *http.Response) Format {
	if contentType := resp.Header.Get("Content-Type"); contentType != "" {
		if format := matchFormat(contentType); format != "" {
			return format
		}
	}
	// Fall back to configured format or default
	return cmp.Or(c.Format, defaultClientFormat)
}

func (c *Client) decodeOutcome(r io.Reader, format Format) (r5.OperationOutcome, error) {
	res, err := decodeResource(r, format)
	if err != nil {
		return r5.OperationOutcome{}, err
	}
	outcome, ok := res.(*r5.OperationOutcome)
	if !ok {
		return r5.OperationOutcome{}, fmt.Errorf("unexpected resource: expected OperationOutcome, got %s", res.ResourceType())
	}
	return *outcome, nil
}

func (c *Client) handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("unexpected status code: %d (failed to read response body: %w)", resp.StatusCode, err)
	}

	outcome, err := c.decodeOutcome(bytes.NewReader(body), c.detectResponseFormat(resp))
	if err != nil {
		// not an OperationOutcome, return generic error with response body
		return fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(body))
	}
	return &OutcomeError{Status: resp.StatusCode, Outcome: outcome}
}
