package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	traceline "github.com/traceline/traceline-go"
)

func TestRecordPropagation(t *testing.T) {
	before := testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeContinued))

	RecordPropagation("http", OutcomeContinued)

	after := testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeContinued))
	assert.Equal(t, before+1, after)
}

func TestHTTPRecordsOutcomes(t *testing.T) {
	handler := HTTP(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(headerValue string) {
		req := httptest.NewRequest("GET", "/orders", nil)
		if headerValue != "" {
			req.Header.Set(traceline.TraceHeaderName, headerValue)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	continued := testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeContinued))
	started := testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeStarted))
	malformed := testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeMalformed))

	serve("Root=1-5759e988-bd862e3fe1be46a994272793")
	serve("")
	serve("Root=bogus")

	assert.Equal(t, continued+1, testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeContinued)))
	assert.Equal(t, started+1, testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeStarted)))
	assert.Equal(t, malformed+1, testutil.ToFloat64(propagationTotal.WithLabelValues("http", OutcomeMalformed)))
}
