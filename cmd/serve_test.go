package cmd

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"testing"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"
)

func TestShutdownServersLogsFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	srv := &http.Server{
		Addr: ln.Addr().String(),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
		}),
	}
	go func() { _ = srv.Serve(ln) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-entered

	// the request is still in flight, so shutdown cannot finish before the deadline
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := new(bytes.Buffer)
	shutdownServers(ctx, log.NewLogger(buf), []*http.Server{srv})

	require.Contains(t, buf.String(), "Shutdown failed")
	require.Contains(t, buf.String(), ln.Addr().String())
}
