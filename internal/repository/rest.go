package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/Rohith-kulkarni/qwipo-app/internal/errors"
	"github.com/sirupsen/logrus"
)

type RestClient struct {
	baseURL string
	client  *http.Client
}

// NewRestClient builds new RestClient, default http client is used if nil is provided
func NewRestClient(baseURL string, client *http.Client) *RestClient {
	if client == nil {
		client = &http.Client{}
	}
	return &RestClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (rc *RestClient) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	target := rc.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s %s - %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s - %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := rc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed - %w", method, path, err)
	}
	defer res.Body.Close()

	logrus.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"status": res.StatusCode,
	}).Debug("customers api responded")

	if res.StatusCode == http.StatusNotFound {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("%s %s - entry not found", method, path))
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return apperrors.NewStatusErr(method, path, res.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s - %w", method, path, err)
	}
	return nil
}

func resourcePath(collection string, id fmt.Stringer) string {
	return fmt.Sprintf("/%s/%s", collection, url.PathEscape(id.String()))
}
