package assets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hamflx/imagen3-mcp/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	return NewServer(st), st
}

func doRequest(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Router().ServeHTTP(w, req)
	return w
}

func TestServeImage(t *testing.T) {
	s, st := newTestServer(t)

	content := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01}
	if err := st.Write("abc_20250101120000.png", content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	w := doRequest(t, s, "/images/abc_20250101120000.png")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != string(content) {
		t.Errorf("body = %v, want byte-identical content", w.Body.Bytes())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestServeImageMissing(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, "/images/nope.png")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestServeImageRejectsTraversal(t *testing.T) {
	s, st := newTestServer(t)

	// A file outside the images directory must not be reachable.
	secret := filepath.Join(st.BasePath(), "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	for _, target := range []string{
		"/images/../secret.txt",
		"/images/%2e%2e%2fsecret.txt",
		"/images/..",
	} {
		w := doRequest(t, s, target)
		if w.Code == http.StatusOK {
			t.Errorf("GET %s status = 200, want rejection", target)
		}
	}
}

func TestServeImageHidesTempFiles(t *testing.T) {
	s, st := newTestServer(t)

	if err := os.WriteFile(filepath.Join(st.ImagesDir(), ".tmp-xyz"), []byte("partial"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	w := doRequest(t, s, "/images/.tmp-xyz")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListImagesEmpty(t *testing.T) {
	s, _ := newTestServer(t)

	w := doRequest(t, s, "/list-images")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var names []string
	if err := json.Unmarshal(w.Body.Bytes(), &names); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("listing = %v, want []", names)
	}
}

func TestListImagesAfterWrite(t *testing.T) {
	s, st := newTestServer(t)

	if err := st.Write("one_20250101120000.png", []byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	w := doRequest(t, s, "/list-images")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var names []string
	if err := json.Unmarshal(w.Body.Bytes(), &names); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}
	if len(names) != 1 || names[0] != "one_20250101120000.png" {
		t.Errorf("listing = %v, want [one_20250101120000.png]", names)
	}
}

func TestListImagesMissingDirectory(t *testing.T) {
	s, st := newTestServer(t)

	if err := os.RemoveAll(st.ImagesDir()); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	w := doRequest(t, s, "/list-images")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
