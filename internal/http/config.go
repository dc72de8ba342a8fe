package httpclient

import (
	"net/http"
	"time"

	"shippinghub/internal/database"
)

//func option pattern for config mgt

type HttpFuncOption func(*HttpClientWrapper)

type HttpClientWrapper struct {
	client         *http.Client
	redisDb        database.RedisRepository
	contextTimeout time.Duration
}

func defaultHttpConfig(rdb database.RedisRepository) HttpClientWrapper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100
	t.IdleConnTimeout = 90 * time.Second
	t.DisableKeepAlives = false

	return HttpClientWrapper{
		client:         &http.Client{Transport: t},
		redisDb:        rdb,
		contextTimeout: 7 * time.Second,
	}
}

// WithCtxTimeout sets the per-request timeout. The module itself specifies no
// timeout; it is an explicit configuration value loaded from the environment.
func WithCtxTimeout(ctxTimeout time.Duration) HttpFuncOption {
	return func(httpConfig *HttpClientWrapper) {
		httpConfig.contextTimeout = ctxTimeout
	}
}

func WithMaxIdleConns(max int) HttpFuncOption {
	return func(httpConfig *HttpClientWrapper) {
		if transport, ok := httpConfig.client.Transport.(*http.Transport); ok {
			transport.MaxIdleConns = max
		}
	}
}

func WithMaxConnsPerHost(max int) HttpFuncOption {
	return func(httpConfig *HttpClientWrapper) {
		if transport, ok := httpConfig.client.Transport.(*http.Transport); ok {
			transport.MaxConnsPerHost = max
		}
	}
}

func WithMaxIdleConnsPerHost(max int) HttpFuncOption {
	return func(httpConfig *HttpClientWrapper) {
		if transport, ok := httpConfig.client.Transport.(*http.Transport); ok {
			transport.MaxIdleConnsPerHost = max
		}
	}
}

func WithIdleConnTimeout(timeout time.Duration) HttpFuncOption {
	return func(httpConfig *HttpClientWrapper) {
		if transport, ok := httpConfig.client.Transport.(*http.Transport); ok {
			transport.IdleConnTimeout = timeout
		}
	}
}

func WithDisableKeepAlives(disable bool) HttpFuncOption {
	return func(httpConfig *HttpClientWrapper) {
		if transport, ok := httpConfig.client.Transport.(*http.Transport); ok {
			transport.DisableKeepAlives = disable
		}
	}
}

type HttpClient struct {
	HttpClientWrapper
}

// Constructor to create an instance of the HttpClientWrapper with connection pool setup
func CreateHttpClientInstance(rdb database.RedisRepository, httpConfig ...HttpFuncOption) *HttpClient {
	d := defaultHttpConfig(rdb)
	for _, fn := range httpConfig {
		fn(&d)
	}
	return &HttpClient{d}
}
