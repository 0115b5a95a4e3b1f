package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(ClientRequests.WithLabelValues("metricsTestOp", "200"))

	ObserveRequest("metricsTestOp", 200, 15*time.Millisecond)
	ObserveRequest("metricsTestOp", 200, 20*time.Millisecond)

	after := testutil.ToFloat64(ClientRequests.WithLabelValues("metricsTestOp", "200"))
	assert.Equal(t, before+2, after)
}

func TestObserveTransportError(t *testing.T) {
	before := testutil.ToFloat64(ClientTransportErrors.WithLabelValues("metricsTestTransport"))
	ObserveTransportError("metricsTestTransport", time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(ClientTransportErrors.WithLabelValues("metricsTestTransport")))
}

func TestTrackInFlight(t *testing.T) {
	g := ClientRequestsInFlight.WithLabelValues("metricsTestInFlight")

	done := TrackInFlight("metricsTestInFlight")
	assert.Equal(t, 1.0, testutil.ToFloat64(g))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(g))
}
