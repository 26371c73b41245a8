package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_WritesRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, 0)

	log.Info("request served", "status", 200)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "request served")
	assert.Contains(t, out, "status=200")
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, 8)

	log.Info("too quiet for this level")
	assert.Empty(t, buf.String())

	log.Error("store unreachable")
	assert.Contains(t, buf.String(), "store unreachable")
}
