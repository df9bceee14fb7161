package httpserver

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/jwtauth/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestServer_RunStopsOnCancel(t *testing.T) {
	srv := NewServer(testConfig(), logging.NopLogger{}, &fakeAccounts{accounts: map[string]string{}}, fakePinger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	cfg := testConfig()
	cfg.Address = "256.256.256.256:99999"
	srv := NewServer(cfg, logging.NopLogger{}, &fakeAccounts{accounts: map[string]string{}}, fakePinger{})

	err := srv.Run(context.Background())
	require.Error(t, err)
}
