// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/oc-serve/internal/config"
	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/orchestrators"
	"github.com/MKhiriev/oc-serve/models"
)

func deploymentWithLimits(ongoing, queued int) orchestrators.Deployment {
	d := orchestrators.DefaultDeployment()
	d.MaxOngoingRequests = ongoing
	d.MaxQueuedRequests = queued
	return d
}

func post(t *testing.T, url string) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(`{"prompt":"x"}`))
	if !assert.NoError(t, err) {
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestWithConcurrencyLimit_FullQueueRejects(t *testing.T) {
	tr := newTestRouter(t, deploymentWithLimits(1, 0), config.OCServe{})
	srv := httptest.NewServer(tr.router)
	defer srv.Close()

	entered := make(chan struct{})
	release := make(chan struct{})
	tr.orch.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.CompletionRequest) (models.Response, error) {
			close(entered)
			<-release
			return models.TextResponse("ok"), nil
		})

	first := make(chan int, 1)
	go func() { first <- post(t, srv.URL+RouteComplete) }()
	<-entered

	assert.Equal(t, http.StatusTooManyRequests, post(t, srv.URL+RouteComplete))

	close(release)
	assert.Equal(t, http.StatusOK, <-first)
}

func TestWithConcurrencyLimit_UnboundedQueueWaits(t *testing.T) {
	tr := newTestRouter(t, deploymentWithLimits(1, -1), config.OCServe{})
	srv := httptest.NewServer(tr.router)
	defer srv.Close()

	var inFlight, maxInFlight atomic.Int32
	tr.orch.EXPECT().Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.CompletionRequest) (models.Response, error) {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return models.TextResponse("ok"), nil
		}).Times(4)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, http.StatusOK, post(t, srv.URL+RouteComplete))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestWithConcurrencyLimit_UnboundedQueueGivesUpWithClient(t *testing.T) {
	h := &Handler{deployment: deploymentWithLimits(1, -1), logger: logger.Nop()}
	limit := h.withConcurrencyLimit()

	release := make(chan struct{})
	entered := make(chan struct{})
	blocking := limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	}))
	go blocking.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	<-entered
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rr := httptest.NewRecorder()
	limit(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil).WithContext(ctx))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "too many requests")
}

func TestWithConcurrencyLimit_Disabled(t *testing.T) {
	h := &Handler{deployment: deploymentWithLimits(0, 0), logger: logger.Nop()}
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	h.withConcurrencyLimit()(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.True(t, called)
}

func TestBacklogTimeout(t *testing.T) {
	assert.Equal(t, defaultBacklogTimeout, (&Handler{}).backlogTimeout())
	assert.Equal(t, time.Second, (&Handler{requestTimeout: time.Second}).backlogTimeout())
}
