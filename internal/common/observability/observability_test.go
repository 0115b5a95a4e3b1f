package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"skillsync-client/internal/common/config"
)

func TestNew_Disabled(t *testing.T) {
	obs, err := New(context.Background(), config.TracingConfig{ServiceName: "test", SampleRatio: 1})
	require.NoError(t, err)
	require.NotNil(t, obs.Tracer())
	assert.NoError(t, obs.Shutdown(context.Background()))
}

func TestShutdown_NilSafe(t *testing.T) {
	var obs *Observability
	assert.NoError(t, obs.Shutdown(context.Background()))
}

func TestStartSpan_RecordsOutcome(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := StartSpan(context.Background(), "getProfile", attribute.String("skillsync.operation", "getProfile"))
	EndSpan(span, 401, errors.New("token expired"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "getProfile", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "token expired", ended[0].Status().Description)

	var sawStatus bool
	for _, kv := range ended[0].Attributes() {
		if kv.Key == "http.response.status_code" {
			sawStatus = true
			assert.Equal(t, int64(401), kv.Value.AsInt64())
		}
	}
	assert.True(t, sawStatus)
}
