// AngelaMos | 2026
// telemetry_test.go

package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/carterperez-dev/talentbook/internal/config"
)

func TestSetSpanError_RejectionsStayUnset(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))

	ctx, span := StartSpan(context.Background(), "talentbook/test", "booking.Create")
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	SetSpanError(ctx, fmt.Errorf("create booking: %w", ErrConflict))
	span.End()

	ctx, span = StartSpan(context.Background(), "talentbook/test", "dashboard.Stats")
	AddSpanEvent(ctx, "dashboard.cache_hit")
	SetSpanError(ctx, errors.New("connection reset"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 2)

	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("outcome.rejected", "conflict"))
	assert.Empty(t, ended[0].Events())

	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "connection reset", ended[1].Status().Description)
	names := []string{}
	for _, e := range ended[1].Events() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"dashboard.cache_hit", "exception"}, names)
}

func TestRejectionKind(t *testing.T) {
	assert.Equal(t, "not_found", rejectionKind(fmt.Errorf("x: %w", ErrNotFound)))
	assert.Equal(t, "invalid_input", rejectionKind(fmt.Errorf("x: %w", ErrInvalidInput)))
	assert.Equal(t, "conflict", rejectionKind(ErrDuplicateKey))
	assert.Equal(t, "", rejectionKind(errors.New("boom")))
}

func TestTraceSampler(t *testing.T) {
	assert.Contains(t, traceSampler(0).Description(), "TraceIDRatioBased{0.1}")
	assert.Contains(t, traceSampler(0.5).Description(), "TraceIDRatioBased{0.5}")
	assert.Contains(t, traceSampler(3).Description(), "TraceIDRatioBased{0.1}")
}

func TestServiceAttributes(t *testing.T) {
	attrs := serviceAttributes(
		config.OtelConfig{ServiceName: "talentbook"},
		config.AppConfig{Name: "Talent Booking API", Version: "1.2.0", Environment: "staging"},
	)

	assert.Contains(t, attrs, attribute.String("service.name", "talentbook"))
	assert.Contains(t, attrs, attribute.String("service.version", "1.2.0"))
	assert.Contains(t, attrs, attribute.String("deployment.environment", "staging"))
}

func TestNewTelemetry_RequiresEndpoint(t *testing.T) {
	_, err := NewTelemetry(context.Background(), config.OtelConfig{Enabled: true}, config.AppConfig{})
	assert.ErrorContains(t, err, "otel.endpoint is required")

	var tel *Telemetry
	assert.NoError(t, tel.Shutdown(context.Background()))
}
