package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	utf8text "github.com/corpustext/utf8text"
)

func TestSetLoggerEnablesDebugTraces(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	// retagging a bytes element duplicates the vector, which traces
	v := []utf8text.String{utf8text.NewBytes([]byte("plain"))}
	_, err := Coerce(v)
	require.NoError(t, err)
	assert.NotZero(t, logs.FilterMessageSnippet("duplicating").Len(),
		"debug-level logger should emit the duplication trace")
}

func TestInfoLoggerSkipsDebugTraces(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	v := []utf8text.String{utf8text.NewBytes([]byte("plain"))}
	_, err := Coerce(v)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
