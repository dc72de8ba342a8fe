package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Sink is the side channel the shipping clients report failures to. The
// clients never propagate transport errors to the host workflow; they call
// Failure with a short operation label and return empty results instead.
type Sink interface {
	Failure(operationLabel string)
	Warn(message string)
}

type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) Failure(operationLabel string) {
	log.Errorf("An error occurred while %s", operationLabel)
}

func (s *LogSink) Warn(message string) {
	log.Warn(message)
}

// SettingsFormLink builds the user-facing deep link to the shipping settings
// form used in configuration error messages.
func SettingsFormLink(baseURL string) string {
	return fmt.Sprintf(`<a href="%s">Shipping Settings</a>`, baseURL)
}
