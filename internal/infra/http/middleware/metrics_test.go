package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

// TestMetrics_UsesRoutePattern - Teste que o label de path usa o padrão da rota, não o ID
func TestMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Delete("/prompts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	before := counterValue(t, httpRequestsTotal.WithLabelValues("DELETE", "/prompts/{id}", "204"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/prompts/"+id, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	after := counterValue(t, httpRequestsTotal.WithLabelValues("DELETE", "/prompts/{id}", "204"))
	assert.Equal(t, before+2, after)
}

func TestRecordCounters(t *testing.T) {
	before := counterValue(t, crmSyncs.WithLabelValues("updated"))
	RecordCRMSync("updated")
	assert.Equal(t, before+1, counterValue(t, crmSyncs.WithLabelValues("updated")))

	before = counterValue(t, messagesGenerated.WithLabelValues("gpt-4o", "ok"))
	RecordMessageGenerated("gpt-4o", "ok")
	assert.Equal(t, before+1, counterValue(t, messagesGenerated.WithLabelValues("gpt-4o", "ok")))

	before = counterValue(t, notesCreated)
	RecordNoteCreated()
	assert.Equal(t, before+1, counterValue(t, notesCreated))
}
