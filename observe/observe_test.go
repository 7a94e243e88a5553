package observe

import (
	"context"
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			"missing service name",
			Config{},
			ErrMissingServiceName,
		},
		{
			"minimal valid",
			Config{ServiceName: "zetagate"},
			nil,
		},
		{
			"valid with everything disabled by name",
			Config{
				ServiceName: "zetagate",
				Tracing:     TracingConfig{Enabled: true, Exporter: "none"},
				Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
				Logging:     LoggingConfig{Enabled: true, Level: "info"},
			},
			nil,
		},
		{
			"bad tracing exporter",
			Config{ServiceName: "zetagate", Tracing: TracingConfig{Enabled: true, Exporter: "graphite"}},
			ErrInvalidTracingExporter,
		},
		{
			"bad sample pct",
			Config{ServiceName: "zetagate", Tracing: TracingConfig{Enabled: true, Exporter: "none", SamplePct: 2.0}},
			ErrInvalidSamplePct,
		},
		{
			"bad metrics exporter",
			Config{ServiceName: "zetagate", Metrics: MetricsConfig{Enabled: true, Exporter: "statsd"}},
			ErrInvalidMetricsExporter,
		},
		{
			"bad log level",
			Config{ServiceName: "zetagate", Logging: LoggingConfig{Enabled: true, Level: "loud"}},
			ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewObserver_Disabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "zetagate"})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}
	defer obs.Shutdown(context.Background())

	if obs.Tracer() == nil || obs.Meter() == nil || obs.Logger() == nil {
		t.Error("disabled observer must still provide noop components")
	}
}

func TestNewObserver_NoneExporters(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "zetagate",
		Tracing:     TracingConfig{Enabled: true, Exporter: "none", SamplePct: 1.0},
		Metrics:     MetricsConfig{Enabled: true, Exporter: "none"},
		Logging:     LoggingConfig{Enabled: true, Level: "error"},
	})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestNewNoopObserver(t *testing.T) {
	obs := NewNoopObserver()
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("noop Shutdown = %v, want nil", err)
	}
	obs.Logger().Info(context.Background(), "dropped")
}

func TestOpMeta_SpanName(t *testing.T) {
	meta := OpMeta{Name: "get_balance"}
	if got, want := meta.SpanName(), "cli.exec.get_balance"; got != want {
		t.Errorf("SpanName() = %q, want %q", got, want)
	}
}
