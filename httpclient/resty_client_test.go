package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRestyClientGetPassesBodyAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "text/plain" {
			t.Errorf("expected Accept header text/plain, got %q", got)
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("ERROR: address invalid\n"))
	}))
	defer srv.Close()

	client := NewRestyClient(5*time.Second, nil)
	resp, err := client.Get(context.Background(), srv.URL+"/q", map[string]string{"Accept": "text/plain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.StatusCode())
	}
	if string(resp.Body()) != "ERROR: address invalid\n" {
		t.Fatalf("unexpected body %q", resp.Body())
	}
}

func TestRestyClientGetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewRestyClient(0, nil)
	resp, err := client.Get(context.Background(), url, nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if resp != nil {
		t.Fatalf("expected nil response, got %v", resp)
	}
}

func TestRestyClientGetHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewRestyClient(0, nil)
	_, err := client.Get(ctx, srv.URL, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}
}

func TestRestyClientGetSendsOneRequestOnServerError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("busy"))
	}))
	defer srv.Close()

	client := NewRestyClient(5*time.Second, nil)
	resp, err := client.Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("expected a 500 to come back as a response, got error %v", err)
	}
	if resp.StatusCode() != http.StatusInternalServerError || string(resp.Body()) != "busy" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode(), resp.Body())
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("expected exactly one request, server saw %d", n)
	}
}
