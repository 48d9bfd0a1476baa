package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		SetupTestLogger()
	})
	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	buf := captureOutput(t)
	ctx, id := WithCorrelationID(context.Background())

	ForContext(ctx).Info("carga iniciada")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "carga iniciada")
}

func TestWithFields_DevelopmentFiltering(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"snapshot_id": "Ab12Cd",
		"user_agent":  "curl",
	}).Info("snapshot atualizado")

	assert.Contains(t, buf.String(), "snapshot_id=Ab12Cd")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("user_agent", "curl").Info("requisição")

	assert.Contains(t, buf.String(), "user_agent=curl")
}
