package filestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClient_Search(t *testing.T) {
	var gotAuth, gotQuery, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("title_contains")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[{"name":"Notes","url":"http://files/notes"},{"name":"Notes 2","url":"http://files/notes2"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	defer c.Close()

	files, err := c.Search(context.Background(), "Notes", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotQuery != "Notes" || gotLimit != "5" {
		t.Errorf("query = %q, limit = %q", gotQuery, gotLimit)
	}

	want := []File{
		{Name: "Notes", URL: "http://files/notes"},
		{Name: "Notes 2", URL: "http://files/notes2"},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_Search_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"files":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	files, err := c.Search(context.Background(), "nothing", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestClient_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	if _, err := c.Search(context.Background(), "x", 0); err == nil {
		t.Error("expected error on status 500")
	}
}
