package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const netHashBody = `[[500,1386475886,6901641034498895230248057944249341782018790077074986006051269912821760,69016706544110646121312590156214853227120998882806968922155747617576697,0.003,16777472,301,5579],[1000,1386481098,102835395933649441302964260321625980471269832238804165165005483802624,511646604635674070810351654692609304043970858461013446657591038336313,0.262,1125994490,11,21710728]]`

type stubServer struct {
	*httptest.Server
	hits     int64
	lastPath atomic.Value
}

func newStubServer(t *testing.T, status int, body string) *stubServer {
	t.Helper()
	s := &stubServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.hits, 1)
		s.lastPath.Store(r.URL.RequestURI())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *stubServer) path() string {
	p, _ := s.lastPath.Load().(string)
	return p
}

func waitFor(t *testing.T, run func(Callback)) outcome {
	t.Helper()
	ch := make(chan outcome, 1)
	run(func(err error, result string) {
		ch <- outcome{err: err, result: result}
	})
	select {
	case out := <-ch:
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("completion handler never ran")
	}
	return outcome{}
}

func TestAddressBalanceEndToEnd(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, "2321.55284575")
	c := NewClient(WithBaseURL(srv.URL))

	out := waitFor(t, func(done Callback) { c.AddressBalance("D8T...XYZ", done) })
	if out.err != nil {
		t.Fatalf("unexpected error: %v", out.err)
	}
	if out.result != "2321.55284575" {
		t.Fatalf("expected balance 2321.55284575, got %q", out.result)
	}
	if got := srv.path(); got != "/chain/Dogecoin/q/addressbalance/D8T...XYZ" {
		t.Fatalf("unexpected request path %q", got)
	}
}

func TestCheckAddressMissingEndToEnd(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, "1E")
	c := NewClient(WithBaseURL(srv.URL))

	out := waitFor(t, func(done Callback) { c.CheckAddress("", done) })
	if out.err == nil || out.err.Error() != "Missing address to check." {
		t.Fatalf("expected missing address error, got %v", out.err)
	}
	if out.result != "" {
		t.Fatalf("expected no result, got %q", out.result)
	}
	if hits := atomic.LoadInt64(&srv.hits); hits != 0 {
		t.Fatalf("expected zero network calls, got %d", hits)
	}
}

func TestNetHashEndToEnd(t *testing.T) {
	srv := newStubServer(t, http.StatusOK, netHashBody)
	c := NewClient(WithBaseURL(srv.URL))

	out := waitFor(t, c.NetHash)
	if out.err != nil {
		t.Fatalf("unexpected error: %v", out.err)
	}
	if out.result != netHashBody {
		t.Fatalf("expected the JSON body unchanged, got %q", out.result)
	}
	if got := srv.path(); got != "/chain/Dogecoin/q/nethash?format=json" {
		t.Fatalf("unexpected request path %q", got)
	}
}

func TestRemoteErrorEndToEnd(t *testing.T) {
	srv := newStubServer(t, http.StatusNotFound, "Dogecoin: unknown address")
	c := NewClient(WithBaseURL(srv.URL))

	out := waitFor(t, func(done Callback) { c.GetSentByAddress("Dnope", done) })
	if out.err == nil || out.err.Error() != "Dogecoin: unknown address" {
		t.Fatalf("expected remote body as error, got %v", out.err)
	}
	if out.result != "" {
		t.Fatalf("expected no result, got %q", out.result)
	}
}

func TestDoRespectsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.Do(ctx, EndpointBlockCount, ""); err == nil {
		t.Fatal("expected context error")
	}
}

func TestLookupEndpoint(t *testing.T) {
	ep, ok := LookupEndpoint("NETHASH")
	if !ok || ep.Path != "q/nethash?format=json" {
		t.Fatalf("expected nethash endpoint, got %+v %v", ep, ok)
	}
	if _, ok := LookupEndpoint("sendrawtransaction"); ok {
		t.Fatal("unexpected endpoint match")
	}
	if len(Endpoints) != 12 {
		t.Fatalf("expected 12 endpoints, got %d", len(Endpoints))
	}
}
