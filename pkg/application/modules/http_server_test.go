package modules_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"ahoy_market/pkg/application/modules"
)

func TestHTTPServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		Address: ":10031",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("ok")) //nolint:errcheck
		}),
		ShutdownTimeout: time.Second,
	}.Run(gctx, g)

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10031/", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.NoError(resp.Body.Close())
	rq.Equal("ok", string(body))

	cancel()

	rq.NoError(g.Wait())
}
