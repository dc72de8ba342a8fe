package exceptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "critical"
	SeverityError    SeverityLevel = "error"
	SeverityWarning  SeverityLevel = "warning"
	SeverityInfo     SeverityLevel = "info"
)

type ErrorTracker struct {
	mu    sync.Mutex
	count map[string]int
}

var errorTracker = ErrorTracker{count: make(map[string]int)}

type ErrorDetail struct {
	Message   string        `json:"message"`
	Count     int           `json:"count"`
	Severity  SeverityLevel `json:"severity"`
	Timestamp string        `json:"timestamp"`
}

type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

func trackError(err error, severity SeverityLevel) ErrorDetail {
	errorTracker.mu.Lock()
	errorTracker.count[err.Error()]++
	count := errorTracker.count[err.Error()]
	errorTracker.mu.Unlock()

	return ErrorDetail{
		Message:   err.Error(),
		Count:     count,
		Severity:  severity,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func writeError(w http.ResponseWriter, errs []error, severity SeverityLevel, code int) {
	var errorsOccurred = make([]ErrorDetail, 0, len(errs))
	for _, err := range errs {
		errorsOccurred = append(errorsOccurred, trackError(err, severity))
	}

	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Errors: errorsOccurred})
}

// statusForKind maps shipping failure kinds to HTTP status codes. The
// notify-and-swallow policy lives in the client layer; by the time an error
// reaches here it is meant to be user visible.
func statusForKind(kind FailureKind) int {
	switch kind {
	case ProviderFailure:
		return http.StatusBadGateway
	case ValidationFailure:
		return http.StatusUnprocessableEntity
	case TransportFailure:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

var (
	RequestErrorHandler = func(w http.ResponseWriter, err error) {
		log.Error(err)
		writeError(w, []error{err}, SeverityError, http.StatusBadRequest)
	}
	InternalErrorHandler = func(w http.ResponseWriter, err error) {
		log.Error(err)
		writeError(w, []error{err}, SeverityError, http.StatusInternalServerError)
	}
	ShippingErrorHandler = func(w http.ResponseWriter, err error) {
		log.Error(err)
		var shipErr *ShippingError
		if errors.As(err, &shipErr) {
			severity := SeverityError
			if shipErr.Kind == ValidationFailure {
				severity = SeverityWarning
			}
			// validation errors arrive newline joined, one line per provider message
			lines := strings.Split(shipErr.Message, "\n")
			errs := make([]error, 0, len(lines))
			for _, line := range lines {
				errs = append(errs, errors.New(line))
			}
			writeError(w, errs, severity, statusForKind(shipErr.Kind))
			return
		}
		writeError(w, []error{err}, SeverityError, http.StatusInternalServerError)
	}
)
