package prometheus

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterInterfaces(t *testing.T) {
	t.Parallel()

	m := NewAppMetrics()

	m.ReconciledMissed(3)
	m.StoreSaveFailed()
	m.NotificationSent()
	m.NotificationSent()
	m.NotificationFailed()
	m.NotificationSkipped()

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RemindersReconciled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreSaveFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsFailed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsSkipped))
}

func TestHandlerServesRegisteredMetrics(t *testing.T) {
	t.Parallel()

	m := NewAppMetrics()
	m.NotificationSent()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "fristenwaechter_notifications_sent_total 1")
}
