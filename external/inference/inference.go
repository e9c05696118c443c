// Package inference is a minimal client for a hosted text-generation
// endpoint. The response body may be either a list wrapper or a direct
// object carrying the generated text; any other shape is an error.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

var (
	errEmptyToken    = fmt.Errorf("empty inference token")
	errBadStatus     = fmt.Errorf("inference endpoint returned non-ok status")
	errUnusableShape = fmt.Errorf("unusable inference response shape")
)

// Client - interface for calling the remote text-generation service
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type client struct {
	token      string
	url        string
	httpClient *http.Client
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.token == "" {
		return "", errEmptyToken
	}

	body, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if nil != err {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return "", err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", errBadStatus
	}

	// list wrapper shape: [{"generated_text": "..."}]
	var wrapped []generatedText
	if err := json.Unmarshal(d, &wrapped); err == nil {
		if len(wrapped) > 0 && wrapped[0].GeneratedText != "" {
			return wrapped[0].GeneratedText, nil
		}
		return "", errUnusableShape
	}

	// direct field shape: {"generated_text": "..."}
	var direct generatedText
	if err := json.Unmarshal(d, &direct); err == nil && direct.GeneratedText != "" {
		return direct.GeneratedText, nil
	}

	return "", errUnusableShape
}

// New - new inference Client against the given endpoint
func New(token, url string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		token:      token,
		url:        url,
		httpClient: httpClient,
	}
}
