package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// APIError is a non-success response from the engine. The engine
// reports failures as JSON bodies shaped {"error": "..."} on the admin
// and upload endpoints and {"status": "error", "message": "..."} on
// stored-video processing; both are folded into Message so callers can
// relay the engine's wording unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("engine returned status %d: %s", e.StatusCode, e.Message)
}

// newAPIError parses an error response body, falling back to the raw
// body when it is not JSON.
func newAPIError(statusCode int, body []byte) *APIError {
	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(statusCode)
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			message = payload.Error
		} else if payload.Message != "" {
			message = payload.Message
		}
	}

	return &APIError{StatusCode: statusCode, Message: message}
}

// IsNotFound returns true if the error is an engine 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// doGetJSON performs a GET request and unmarshals the JSON response into the
// result type. The endpoint should be the path after the base URL
// (e.g., "admin/faces").
func doGetJSON[T any](ctx context.Context, e *Engine, endpoint string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.resolveURL(endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	e.authorize(req)

	resp, err := e.metaClient.Do(req) //nolint:gosec // URL constructed from validated parsedURL via resolveURL
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}

	return decodeJSON[T](resp, http.StatusOK)
}

// doPostForm performs a POST request with a URL-encoded form body and
// unmarshals the JSON response. Used for the stored-video processing
// endpoint which takes form fields rather than JSON.
func doPostForm[T any](ctx context.Context, e *Engine, endpoint string, form url.Values) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.resolveURL(endpoint), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	e.authorize(req)

	resp, err := e.client.Do(req) //nolint:gosec // URL constructed from validated parsedURL via resolveURL
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}

	return decodeJSON[T](resp, http.StatusOK)
}

// multipartPayload describes a multipart form with string fields and a
// single file part streamed from a reader.
type multipartPayload struct {
	fields    map[string]string
	fileField string
	fileName  string
	fileBody  io.Reader
}

// doPostMultipart streams a multipart form to the engine and unmarshals the
// JSON response. The form is written through a pipe so large video bodies
// never land in memory.
func doPostMultipart[T any](ctx context.Context, e *Engine, endpoint string, payload multipartPayload, expectedStatuses ...int) (*T, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		err := writeMultipart(writer, payload)
		if cerr := writer.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.resolveURL(endpoint), pr)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	e.authorize(req)

	resp, err := e.client.Do(req) //nolint:gosec // URL constructed from validated parsedURL via resolveURL
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}

	return decodeJSON[T](resp, expectedStatuses...)
}

// writeMultipart writes the form fields followed by the file part.
func writeMultipart(writer *multipart.Writer, payload multipartPayload) error {
	for key, value := range payload.fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("could not write form field %s: %w", key, err)
		}
	}

	part, err := writer.CreateFormFile(payload.fileField, payload.fileName)
	if err != nil {
		return fmt.Errorf("could not create form file: %w", err)
	}

	if _, err := io.Copy(part, payload.fileBody); err != nil {
		return fmt.Errorf("could not copy file data: %w", err)
	}

	return nil
}

// decodeJSON reads the response body, turns unexpected statuses into an
// APIError and unmarshals the rest into the result type.
func decodeJSON[T any](resp *http.Response, expectedStatuses ...int) (*T, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if !isExpectedStatus(resp.StatusCode, expectedStatuses) {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal response: %w", err)
	}

	return &result, nil
}

// isExpectedStatus checks if a status code is in the list of expected statuses.
func isExpectedStatus(code int, expected []int) bool {
	return slices.Contains(expected, code)
}
