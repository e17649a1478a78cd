package main

import (
	"net"
	"net/http"
	"testing"
	"time"
	"unitactivity/internal/app/deps"
	"unitactivity/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestDrainWaitsForPendingRequests(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	started := make(chan struct{})
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}),
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	go server.Serve(listener)

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + listener.Addr().String())
		if err != nil {
			status <- 0
			return
		}
		resp.Body.Close()
		status <- resp.StatusCode
	}()
	<-started

	// Exercise ---
	drain(server, &deps.Deps{Logger: log})

	// Verify ---
	require.Equal(t, http.StatusOK, <-status)
	require.Equal(t, 0, log.CountAt(logging.ERROR))
	require.Equal(t, 1, log.CountAt(logging.INFO))
	require.Equal(t, "Requests drained.", log.Logged[0].Msg)
}
