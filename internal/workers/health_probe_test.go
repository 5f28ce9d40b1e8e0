package workers

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/oc-serve/internal/adapter"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/metrics"
	"github.com/MKhiriev/oc-serve/internal/mock"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/models"
)

// recordingReporter keeps every status it was given.
type recordingReporter struct {
	mu       sync.Mutex
	statuses []bool
}

func (r *recordingReporter) SetServing(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, ok)
}

func (r *recordingReporter) last() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.statuses...)
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func modelHealthy(t *testing.T, reg *metrics.Registry) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "ocserve_engine_model_healthy" {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("model_healthy gauge not registered")
	return 0
}

func TestHealthProbe_Probe(t *testing.T) {
	tests := []struct {
		name string
		resp models.Response
		err  error
		want bool
	}{
		{name: "ok", resp: models.TextResponse("healthy"), want: true},
		{name: "engine error status", resp: models.Response{StatusCode: http.StatusServiceUnavailable}, want: false},
		{name: "engine unreachable", err: adapter.ErrEngineUnavailable, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			orch := mock.NewMockOrchestrator(ctrl)
			orch.EXPECT().CheckModelHealth(gomock.Any()).Return(tt.resp, tt.err)

			reg := metrics.New()
			rep := &recordingReporter{}
			p := NewHealthProbe(orch, orchestrators.DefaultDeployment(), reg, logger.Nop(), rep)

			got := p.probe(context.Background())

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []bool{tt.want}, rep.last())
			want := 0.0
			if tt.want {
				want = 1
			}
			assert.Equal(t, want, modelHealthy(t, reg))
		})
	}
}

func TestHealthProbe_ClosesStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch := mock.NewMockOrchestrator(ctrl)
	body := &closeTracker{Reader: strings.NewReader("data: ok\n\n")}
	orch.EXPECT().CheckModelHealth(gomock.Any()).Return(models.StreamResponse(body), nil)

	p := NewHealthProbe(orch, orchestrators.DefaultDeployment(), nil, logger.Nop())
	p.probe(context.Background())

	assert.True(t, body.closed)
}

func TestHealthProbe_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch := mock.NewMockOrchestrator(ctrl)
	orch.EXPECT().CheckModelHealth(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (models.Response, error) {
			<-ctx.Done()
			return models.Response{}, ctx.Err()
		})

	dep := orchestrators.DefaultDeployment()
	dep.HealthCheckTimeout = 10 * time.Millisecond
	p := NewHealthProbe(orch, dep, nil, logger.Nop())

	assert.False(t, p.probe(context.Background()))
}

func TestHealthProbe_RunProbesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	orch := mock.NewMockOrchestrator(ctrl)
	orch.EXPECT().CheckModelHealth(gomock.Any()).
		Return(models.TextResponse("ok"), nil).MinTimes(2)

	dep := orchestrators.DefaultDeployment()
	dep.HealthCheckPeriod = 5 * time.Millisecond
	rep := &recordingReporter{}
	p := NewHealthProbe(orch, dep, metrics.New(), logger.Nop(), rep)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rep.last()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("probe did not stop after cancel")
	}
}

func TestNewHealthProbe_Defaults(t *testing.T) {
	p := NewHealthProbe(nil, orchestrators.Deployment{}, nil, logger.Nop())

	assert.Equal(t, orchestrators.DefaultHealthCheckPeriod, p.period)
	assert.Equal(t, orchestrators.DefaultHealthCheckTimeout, p.timeout)
}
