package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/activity", "200"))
	ObserveRequest("GET", "/activity", "200", 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/activity", "200")))

	before = testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	ObserveRequest("GET", "", "404", 0.01)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(authFailures.WithLabelValues("stateful", "not_found"))
	RecordAuthFailure("stateful", "not_found")
	assert.Equal(t, before+1, testutil.ToFloat64(authFailures.WithLabelValues("stateful", "not_found")))

	before = testutil.ToFloat64(rateLimited)
	RecordRateLimited()
	assert.Equal(t, before+1, testutil.ToFloat64(rateLimited))

	before = testutil.ToFloat64(uploads.WithLabelValues("ok"))
	RecordUpload("ok")
	assert.Equal(t, before+1, testutil.ToFloat64(uploads.WithLabelValues("ok")))
}
