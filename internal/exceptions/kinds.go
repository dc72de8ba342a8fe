package exceptions

import "fmt"

type FailureKind string

const (
	// ProviderFailure means the remote API returned a structured error payload.
	// Its message is surfaced to the user verbatim.
	ProviderFailure FailureKind = "provider"
	// ConfigurationFailure means required settings are missing. The message
	// carries a deep link to the settings form.
	ConfigurationFailure FailureKind = "configuration"
	// ValidationFailure means the provider rejected an address during
	// verification.
	ValidationFailure FailureKind = "validation"
	// TransportFailure covers network and parse errors. Client code reports
	// these to the alert sink and swallows them, so callers normally never see
	// this kind; it exists for the HTTP layer.
	TransportFailure FailureKind = "transport"
)

// ShippingError is the one error type the shipping clients hand back to
// callers. Kind drives the HTTP status mapping.
type ShippingError struct {
	Kind    FailureKind
	Message string
}

func (e *ShippingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func ProviderError(message string) *ShippingError {
	return &ShippingError{Kind: ProviderFailure, Message: message}
}

func ConfigurationError(message string) *ShippingError {
	return &ShippingError{Kind: ConfigurationFailure, Message: message}
}

func ValidationError(message string) *ShippingError {
	return &ShippingError{Kind: ValidationFailure, Message: message}
}

func TransportError(message string) *ShippingError {
	return &ShippingError{Kind: TransportFailure, Message: message}
}
