package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "painttanks/world"

type metrics struct {
	shots   metric.Int64Counter
	hits    metric.Int64Counter
	kills   metric.Int64Counter
	marks   metric.Int64Counter
	dropped metric.Int64Counter
}

// newMetrics falls back to the global meter, which is a no-op until the host
// installs a provider.
func newMetrics(m metric.Meter) (*metrics, error) {
	if m == nil {
		m = otel.Meter(meterName)
	}

	var (
		out metrics
		err error
	)
	if out.shots, err = m.Int64Counter("combat.shots",
		metric.WithDescription("Projectiles fired")); err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}
	if out.hits, err = m.Int64Counter("combat.hits",
		metric.WithDescription("Projectiles that hit a tank")); err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}
	if out.kills, err = m.Int64Counter("combat.kills",
		metric.WithDescription("Tanks whose health reached zero")); err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}
	if out.marks, err = m.Int64Counter("paint.marks",
		metric.WithDescription("Paint marks stamped")); err != nil {
		return nil, fmt.Errorf("creating marks counter: %w", err)
	}
	if out.dropped, err = m.Int64Counter("commands.dropped",
		metric.WithDescription("Commands dropped without effect")); err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}
	return &out, nil
}

func teamAttr(c Color) metric.AddOption {
	return metric.WithAttributes(attribute.String("team", c.Hex()))
}

func (m *metrics) drop(cmd Command, reason error) {
	m.dropped.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("command", cmd.String()),
		attribute.String("reason", reason.Error()),
	))
}
