package samplestats

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/samplestats/internal/libs/serializer"
	"github.com/hyp3rd/samplestats/internal/sentinel"
	"github.com/hyp3rd/samplestats/pkg/runstats"
)

type failingService struct{}

func (failingService) Compute(context.Context) (*Report, error) {
	return nil, sentinel.ErrZeroTotal
}

func startServer(t *testing.T, svc Service, opts ...HTTPOption) (*HTTPServer, string) {
	t.Helper()

	srv := NewHTTPServer("127.0.0.1:0", opts...)

	err := srv.Start(context.Background(), svc)
	assert.Nil(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_ = srv.Shutdown(ctx)
	})

	addr := srv.Address()
	assert.True(t, addr != "")

	return srv, "http://" + addr
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	client := &http.Client{Timeout: 2 * time.Second}

	resp, err := client.Get(url)
	assert.Nil(t, err)

	body, err := io.ReadAll(resp.Body)
	assert.Nil(t, err)
	_ = resp.Body.Close()

	return resp, body
}

func TestHTTPServer_Report(t *testing.T) {
	_, base := startServer(t, examplePipeline(t))

	resp, body := get(t, base+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.True(t, strings.Contains(string(body), "3, 1, 2, 2, 3, 3, 1, 5, 4, 2, 1, 5, 3, 2"))
	assert.True(t, strings.Contains(string(body), "<tr><td>5</td><td>14</td></tr>"))

	resp, body = get(t, base+"/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestHTTPServer_ReportAPI(t *testing.T) {
	_, base := startServer(t, examplePipeline(t))

	for _, format := range []string{"json", "msgpack", "cbor"} {
		resp, body := get(t, base+"/api/report?format="+format)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		codec, err := serializer.New(format)
		assert.Nil(t, err)
		assert.Equal(t, codec.ContentType(), resp.Header.Get("Content-Type"))

		var doc ReportDocument

		err = codec.Unmarshal(body, &doc)
		assert.Nil(t, err)
		assert.Equal(t, 14, len(doc.Sample))
		assert.Equal(t, 5, len(doc.Cumulative))
		assert.Equal(t, 14, doc.Cumulative[4].Frequency)
		assert.Equal(t, 1, doc.Distribution[0].Value)
	}

	// json is the default
	resp, _ := get(t, base+"/api/report")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, body := get(t, base+"/api/report?format=yaml")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "cbor"))
}

func TestHTTPServer_PipelineFailureIs500(t *testing.T) {
	_, base := startServer(t, failingService{})

	resp, body := get(t, base+"/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, strings.Contains(string(body), "<table"))

	resp, _ = get(t, base+"/api/report")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHTTPServer_Stats(t *testing.T) {
	collector := runstats.NewCollector()
	collector.Observe(time.Now(), time.Millisecond, nil)

	_, base := startServer(t, examplePipeline(t), WithHTTPStats(collector))

	resp, body := get(t, base+"/stats")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `"computations":1`))

	_, noStats := startServer(t, examplePipeline(t))

	resp, _ = get(t, noStats+"/stats")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTPServer_StartErrors(t *testing.T) {
	srv := NewHTTPServer("127.0.0.1:0")

	err := srv.Start(context.Background(), nil)
	assert.True(t, errors.Is(err, sentinel.ErrNilService))
	assert.Equal(t, "", srv.Address())

	// shutting down a server that never started is a no-op
	assert.Nil(t, srv.Shutdown(context.Background()))
}

func TestHTTPServer_StartRetriesAfterListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Nil(t, err)

	addr := busy.Addr().String()
	srv := NewHTTPServer(addr)

	err = srv.Start(context.Background(), examplePipeline(t))
	assert.True(t, err != nil)
	assert.Equal(t, "", srv.Address())

	assert.Nil(t, busy.Close())

	err = srv.Start(context.Background(), examplePipeline(t))
	assert.Nil(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_ = srv.Shutdown(ctx)
	})

	reportRoutes := 0

	for _, route := range srv.app.GetRoutes() {
		if route.Method == http.MethodGet && route.Path == "/" {
			reportRoutes++
		}
	}

	assert.Equal(t, 1, reportRoutes)

	resp, _ := get(t, "http://"+srv.Address()+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
