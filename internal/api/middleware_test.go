package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pucklab/rinkside/internal/selection"
)

type memKV struct {
	values map[string]string
}

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func TestChainMiddlewareOrder(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := ChainMiddleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		mk("inner"),
		mk("outer"),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("order = %v, want [outer inner]", order)
	}
}

func TestWithRequestIDSetsHeader(t *testing.T) {
	var seen string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	header := recorder.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatal("missing X-Request-ID header")
	}
	if seen != header {
		t.Fatalf("context id %q does not match header %q", seen, header)
	}
}

func TestWithRecoveryConvertsPanic(t *testing.T) {
	handler := WithRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusInternalServerError)
	}
}

func TestWithSelectionInstallsStore(t *testing.T) {
	store := selection.New(&memKV{values: map[string]string{}})

	var got *selection.Store
	var gotErr error
	handler := ChainMiddleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, gotErr = selection.FromContext(r.Context())
		}),
		WithSelection(store),
	)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if gotErr != nil {
		t.Fatalf("FromContext: %v", gotErr)
	}
	if got != store {
		t.Fatal("context store is not the installed store")
	}
}

func TestSelectionMissingWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := selection.FromContext(req.Context()); err == nil {
		t.Fatal("expected error without selection middleware")
	}
}
