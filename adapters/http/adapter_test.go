package http

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"fabric-price/internal/config"
)

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(config.HTTPConfig{
		Addr:            "127.0.0.1:9000",
		WriteTimeout:    time.Minute,
		ShutdownTimeout: time.Second,
	})
	if cfg.Address != "127.0.0.1:9000" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.ShutdownTimeout != time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.WriteTimeout != time.Minute {
		t.Errorf("WriteTimeout = %v", cfg.WriteTimeout)
	}
	if cfg.ReadTimeout != DefaultConfig().ReadTimeout {
		t.Errorf("ReadTimeout = %v, want default", cfg.ReadTimeout)
	}
}

// TestRunShutsDownOnCancel proves Run serves requests and returns cleanly
// once its context is cancelled
func TestRunShutsDownOnCancel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	a := New(handler, &Config{Address: "127.0.0.1:0", ShutdownTimeout: time.Second}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for a.Addr() == nil {
		if time.Now().After(deadline) {
			t.Fatal("server did not start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + a.Addr().String() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunReportsListenErrors(t *testing.T) {
	a := New(http.NotFoundHandler(), &Config{Address: "127.0.0.1:-1"}, nil)
	if err := a.Run(context.Background()); err == nil {
		t.Error("Run succeeded on an invalid address")
	}
}
