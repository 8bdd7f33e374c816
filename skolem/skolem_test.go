package skolem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestLocalMinterMintsAbsoluteURIs(t *testing.T) {
	m := NewLocalMinter("https://catalog.example.org")

	minted, err := m.Mint(context.Background(), "public-service")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}

	u, err := url.Parse(minted)
	if err != nil || !u.IsAbs() {
		t.Fatalf("minted URI %q is not an absolute URI", minted)
	}
	if !strings.HasPrefix(minted, "https://catalog.example.org/.well-known/skolem/public-service/") {
		t.Errorf("minted URI %q lacks the skolem path with type hint", minted)
	}
}

func TestLocalMinterUniqueness(t *testing.T) {
	m := NewLocalMinter("")

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		minted, err := m.Mint(context.Background(), "rule")
		if err != nil {
			t.Fatalf("Mint failed: %v", err)
		}
		if _, dup := seen[minted]; dup {
			t.Fatalf("minter returned duplicate URI %q", minted)
		}
		seen[minted] = struct{}{}
	}
}

func TestLocalMinterDefaults(t *testing.T) {
	m := NewLocalMinter("")
	minted, err := m.Mint(context.Background(), "")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if !strings.HasPrefix(minted, DefaultBaseURI+"/.well-known/skolem/") {
		t.Errorf("minted URI %q should use the default base", minted)
	}
	// No type hint means no extra path segment.
	rest := strings.TrimPrefix(minted, DefaultBaseURI+"/.well-known/skolem/")
	if strings.Contains(rest, "/") {
		t.Errorf("minted URI %q should not carry a type segment", minted)
	}
}

func TestHTTPMinter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hint := r.URL.Query().Get("type")
		_, _ = w.Write([]byte("http://mint.example.com/skolem/" + hint + "/42\n"))
	}))
	defer srv.Close()

	m := NewHTTPMinter(srv.URL)
	minted, err := m.Mint(context.Background(), "evidence")
	if err != nil {
		t.Fatalf("Mint failed: %v", err)
	}
	if minted != "http://mint.example.com/skolem/evidence/42" {
		t.Errorf("unexpected minted URI %q", minted)
	}
}

func TestHTTPMinterErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewHTTPMinter(srv.URL)
	if _, err := m.Mint(context.Background(), "rule"); err == nil {
		t.Error("expected error for 5xx response")
	}
}

func TestHTTPMinterUnreachable(t *testing.T) {
	m := NewHTTPMinter("http://127.0.0.1:1",
		WithHTTPClient(&http.Client{Timeout: 500 * time.Millisecond}))

	if _, err := m.Mint(context.Background(), "rule"); err == nil {
		t.Error("expected error for unreachable service")
	}
}

func TestHTTPMinterEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	m := NewHTTPMinter(srv.URL)
	if _, err := m.Mint(context.Background(), ""); err == nil {
		t.Error("expected error for empty mint response")
	}
}
