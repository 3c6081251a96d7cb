package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer healthy.Close()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	local := NewLocal(NewSeededMemoryCatalog(), LocalOptions{Latency: -1})
	ctx := context.Background()

	chosen, available, err := Choose(ctx, ModeAuto, NewRemote(RemoteOptions{BaseURL: healthy.URL}), local)
	require.NoError(t, err)
	require.True(t, available)
	require.Equal(t, "remote", chosen.Name())

	chosen, available, err = Choose(ctx, ModeAuto, NewRemote(RemoteOptions{BaseURL: down.URL}), local)
	require.NoError(t, err)
	require.False(t, available)
	require.Equal(t, "local", chosen.Name())

	chosen, _, err = Choose(ctx, ModeRemote, NewRemote(RemoteOptions{BaseURL: down.URL}), local)
	require.NoError(t, err)
	require.Equal(t, "remote", chosen.Name(), "forced mode skips the health check")

	chosen, _, err = Choose(ctx, ModeLocal, NewRemote(RemoteOptions{BaseURL: healthy.URL}), local)
	require.NoError(t, err)
	require.Equal(t, "local", chosen.Name())

	_, _, err = Choose(ctx, "carrier-pigeon", nil, local)
	require.Error(t, err)
}
