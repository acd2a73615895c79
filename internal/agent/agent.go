package agent

import (
	"context"
	"fmt"
	"pragency/pkg/domain"
	"pragency/pkg/metrics"
	"pragency/pkg/serrors"
	"pragency/pkg/textgen"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Agents implements Service on top of a text-completion client. It keeps no
// state between invocations.
type Agents struct {
	textgen textgen.Client

	runs        metric.Int64Counter
	runDuration metric.Float64Histogram
}

var _ Service = (*Agents)(nil)

// New creates the agent service. meter is used to register the invocation
// counter and duration histogram.
func New(client textgen.Client, meter metric.Meter) (*Agents, error) {
	runs, err := meter.Int64Counter("agency_agent_runs_total",
		metric.WithDescription("Number of agent invocations by kind and outcome."))
	if err != nil {
		return nil, fmt.Errorf("cannot create runs counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("agency_agent_run_duration_seconds",
		metric.WithDescription("Agent invocation duration in seconds by kind and outcome."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("cannot create run duration histogram: %w", err)
	}

	return &Agents{
		textgen:     client,
		runs:        runs,
		runDuration: runDuration,
	}, nil
}

// generate calls the text-completion provider with the prompt and records the
// invocation metrics. Provider failures come back as ErrGeneration.
func (a *Agents) generate(ctx context.Context, kind domain.AgentKind, prompt string) (string, error) {
	start := time.Now()
	text, err := a.textgen.Complete(ctx, prompt)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("outcome", outcome),
	)
	a.runs.Add(ctx, 1, attrs)
	a.runDuration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		return "", serrors.Wrap(ErrGeneration, err, "cannot generate text for %s", kind)
	}

	return text, nil
}

// requireFields fails with a bad-request error naming the first field that is
// empty. Strings must be non-empty, lists must have at least one element.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.empty {
			return serrors.With(serrors.ErrBadRequest, "missing required field: %s", f.name)
		}
	}

	return nil
}

type field struct {
	name  string
	empty bool
}

func stringField(name, value string) field {
	return field{name: name, empty: value == ""}
}

func listField(name string, value []string) field {
	return field{name: name, empty: len(value) == 0}
}
