package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterDispatch(t *testing.T) {
	r := New()
	r.GET("/hello", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("hi"))
	})
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/hello")
	if err != nil {
		t.Fatalf("GET /hello: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want 200", resp.StatusCode)
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/hello", func(w http.ResponseWriter, req *http.Request) {})
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/hello", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST /hello: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("got status %d, want 405", resp.StatusCode)
	}
}

func TestRouterNotFound(t *testing.T) {
	r := New()
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got status %d, want 404", resp.StatusCode)
	}
}

func TestRouterWildcard(t *testing.T) {
	r := New()
	r.GET("/files/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("file"))
	})
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	for _, path := range []string{"/files/a", "/files/a/b/c"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: got status %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestRouterMount(t *testing.T) {
	r := New()
	r.Mount("/docs", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("doc"))
	}))
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	for _, path := range []string{"/docs/", "/docs/index.html"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: got status %d, want 200", path, resp.StatusCode)
		}
	}
}
