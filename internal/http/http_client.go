package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// BasicAuth carries credentials for HTTP basic authentication. The shipping
// provider authenticates with the API key as username and an empty password.
type BasicAuth struct {
	Username string
	Password string
}

func (hc *HttpClientWrapper) methodRegister(ctx context.Context, method string, urlString *string, body []byte, params *map[string]string, auth *BasicAuth) (*http.Request, error) {
	var request *http.Request
	var err error
	switch method {
	case http.MethodPost:
		// POST bodies are JSON documents, already marshalled by the caller
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		request, err = http.NewRequestWithContext(ctx, method, *urlString, reader)
		if err != nil {
			return nil, fmt.Errorf("error creating POST request: %v", err)
		}
		request.Header.Set("Content-Type", "application/json")
	case http.MethodGet:
		request, err = http.NewRequestWithContext(ctx, method, *urlString, nil)
		if err != nil {
			return nil, fmt.Errorf("error creating GET request: %v", err)
		}
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if params != nil {
		q := request.URL.Query()
		for k, v := range *params {
			q.Add(k, v)
		}
		request.URL.RawQuery = q.Encode()
	}

	if auth != nil {
		request.SetBasicAuth(auth.Username, auth.Password)
	}

	return request, nil
}

// Fetch performs a single blocking request against the provider. There is no
// retry or backoff: a transport failure is returned to the caller, which
// reports it to the alert sink and degrades. The response body is returned
// for every HTTP status because the provider delivers structured error
// payloads with non-2xx codes; interpreting them belongs to the mapping
// layer, not the transport.
//
// A namespace with a non-zero expiry turns on the redis read-through cache
// for that call. Callers that must inspect a response before deciding it is
// cacheable pass a zero expiry and write to the repository themselves; rate
// shopping and tracking always pass zero because they must stay fresh.
func (hc *HttpClientWrapper) Fetch(ctx context.Context, method string, urlString *string, body []byte, params *map[string]string, auth *BasicAuth, namespace string, expiry time.Duration) ([]byte, error) {
	childCtx, cancel := context.WithTimeout(ctx, hc.contextTimeout)
	defer cancel()

	start := time.Now()
	request, err := hc.methodRegister(childCtx, method, urlString, body, params, auth)
	if err != nil {
		return nil, err
	}

	if expiry > 0 {
		cacheResult, exist := hc.redisDb.Get(namespace, request.URL.String())
		if exist {
			return cacheResult, nil
		}
	}

	resp, err := hc.client.Do(request)
	if err != nil {
		if ctx.Err() == context.Canceled {
			log.Warnf("Fetch stopped: parent context canceled for %s", request.URL.String())
			return nil, fmt.Errorf("fetch aborted: parent context was canceled")
		}
		return nil, fmt.Errorf("error performing HTTP request: %w", err)
	}
	defer resp.Body.Close()
	log.Infof("Request: %s %s %s %.3fs", request.Method, request.URL.String(), resp.Status, time.Since(start).Seconds())

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if expiry > 0 && resp.StatusCode == http.StatusOK {
		hc.redisDb.AddToChannel(namespace, request.URL.String(), result, expiry)
	}
	return result, nil
}
