package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestDevelopmentFieldFilter(t *testing.T) {
	var buf bytes.Buffer
	Configure("info", true)
	SetOutput(&buf)

	L.WithFields(Fields{"snapshot_id": "abc123", "internal": "x"}).Info("snapshot carregado")

	assert.Contains(t, buf.String(), "snapshot_id=abc123")
	assert.NotContains(t, buf.String(), "internal")

	buf.Reset()
	Configure("info", false)
	SetOutput(&buf)

	L.WithField("internal", "x").Info("produção")

	assert.Contains(t, buf.String(), "internal=x")
}

func TestForContext(t *testing.T) {
	var buf bytes.Buffer
	Configure("debug", true)
	SetOutput(&buf)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Debug("requisição")

	assert.Contains(t, buf.String(), "correlation_id="+id)
}
