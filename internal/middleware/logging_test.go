package middleware

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatEntry(t *testing.T, entry *log.Entry) string {
	t.Helper()
	formatter := &CustomLogFormatter{}
	out, err := formatter.Format(entry)
	require.NoError(t, err)
	return string(out)
}

func TestCustomLogFormatterReadsCorrelationIDFromEntry(t *testing.T) {
	logger := log.New()
	base := logger.WithTime(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	first := base.WithField(correlationIDField, "cid-first")
	first.Level = log.InfoLevel
	first.Message = "GET /rates 200"
	second := base.WithField(correlationIDField, "cid-second")
	second.Level = log.InfoLevel
	second.Message = "GET /health 200"

	// each entry carries its own id; formatting one never leaks into the other
	firstLine := formatEntry(t, first)
	secondLine := formatEntry(t, second)
	assert.Contains(t, firstLine, "cid-first")
	assert.NotContains(t, firstLine, "cid-second")
	assert.Contains(t, secondLine, "cid-second")
	assert.NotContains(t, secondLine, "cid-first")
}

func TestCustomLogFormatterOmitsCorrelationIDFromDataFields(t *testing.T) {
	logger := log.New()
	entry := logger.WithFields(log.Fields{correlationIDField: "cid-1", "namespace": "easypost label"})
	entry.Level = log.InfoLevel
	entry.Message = "cache hit"

	line := formatEntry(t, entry)
	assert.Contains(t, line, "cid-1")
	assert.Contains(t, line, "namespace=easypost label")
	assert.NotContains(t, line, correlationIDField+"=")
}
