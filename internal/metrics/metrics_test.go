package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/questgame/internal/domain"
	"github.com/osse101/questgame/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	completed := QuestsCompleted.WithLabelValues("reach")
	xp := XPAwarded.WithLabelValues(domain.XPSourceQuest)
	shard := LootDropped.WithLabelValues("build_shard")
	spins := Spins.WithLabelValues("daily", "gold")
	spent := GoldSpent.WithLabelValues("shop")
	beforeCompleted := testutil.ToFloat64(completed)
	beforeXP := testutil.ToFloat64(xp)
	beforeShard := testutil.ToFloat64(shard)
	beforeSpins := testutil.ToFloat64(spins)
	beforeSpent := testutil.ToFloat64(spent)
	beforeExpired := testutil.ToFloat64(QuestsExpired)

	q := domain.Quest{ID: "Q-2024-01-02-1", Category: domain.CategoryReach}
	require.NoError(t, bus.Publish(ctx, event.NewQuestCompletedEvent(q, 42, 2, 1, nil)))
	require.NoError(t, bus.Publish(ctx, event.NewXPAwardedEvent(domain.XPSourceQuest, 42, 100)))
	require.NoError(t, bus.Publish(ctx, event.NewLootRolledEvent("quest", []string{"build_shard", "build_shard"})))
	require.NoError(t, bus.Publish(ctx, event.NewSpinCompletedEvent("daily", "gold", "", 5)))
	require.NoError(t, bus.Publish(ctx, event.NewGoldSpentEvent("shop", 30)))
	require.NoError(t, bus.Publish(ctx, event.NewQuestExpiredEvent(q, "B-0001")))

	assert.Equal(t, beforeCompleted+1, testutil.ToFloat64(completed))
	assert.Equal(t, beforeXP+42, testutil.ToFloat64(xp))
	assert.Equal(t, beforeShard+2, testutil.ToFloat64(shard))
	assert.Equal(t, beforeSpins+1, testutil.ToFloat64(spins))
	assert.Equal(t, beforeSpent+30, testutil.ToFloat64(spent))
	assert.Equal(t, beforeExpired+1, testutil.ToFloat64(QuestsExpired))
}

func TestEventMetricsCollector_MapPayload(t *testing.T) {
	spent := GoldSpent.WithLabelValues("spin")
	before := testutil.ToFloat64(spent)

	evt := event.Event{Version: "1.0", Type: event.GoldSpent, Payload: map[string]interface{}{"reason": "spin", "amount": 100}}
	require.NoError(t, NewEventMetricsCollector().HandleEvent(context.Background(), evt))
	assert.Equal(t, before+100, testutil.ToFloat64(spent))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Delete("/api/backlog/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/api/backlog/{id}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/backlog/B-0001", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wp-login.php", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMiddleware_ImplicitOK(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/state", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("{}")) })

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/state", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/state", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
