package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	body := bytes.Repeat([]byte("x"), 64)

	mux, srv := setupServer(t)
	mux.HandleFunc("GET /archive.zip", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	})
	mux.HandleFunc("GET /missing.zip", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	tests := []struct {
		testName string // description of this test case
		// Named input parameters for target function.
		path      string
		bodyLimit int64
		want      []byte
		wantErr   error
	}{
		{
			testName:  "body within limit",
			path:      "/archive.zip",
			bodyLimit: 128,
			want:      body,
		},
		{
			testName:  "body exactly at limit",
			path:      "/archive.zip",
			bodyLimit: 64,
			want:      body,
		},
		{
			testName:  "body one byte over limit",
			path:      "/archive.zip",
			bodyLimit: 63,
			wantErr:   ErrBodyTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			fetcher := httpFetcher{client: srv.Client(), bodyLimit: tt.bodyLimit}
			got, gotErr := fetcher.Fetch(context.Background(), srv.URL+tt.path)
			if tt.wantErr != nil {
				if !errors.Is(gotErr, tt.wantErr) {
					t.Errorf("Fetch() error = %v, want %v", gotErr, tt.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("Fetch() failed: %v", gotErr)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Fetch() returned %d bytes, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestFetchNotFound(t *testing.T) {
	mux, srv := setupServer(t)
	mux.HandleFunc("GET /missing.zip", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	fetcher := newHTTPFetcher(srv.Client())
	if _, err := fetcher.Fetch(context.Background(), srv.URL+"/missing.zip"); err == nil {
		t.Fatal("Fetch() succeeded unexpectedly")
	}
}

func TestFetchUserAgent(t *testing.T) {
	var agent string

	mux, srv := setupServer(t)
	mux.HandleFunc("GET /archive.zip", func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	})

	fetcher := newHTTPFetcher(nil)
	if _, err := fetcher.Fetch(context.Background(), srv.URL+"/archive.zip"); err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if !strings.HasPrefix(agent, "fetchdriver ") {
		t.Errorf("User-Agent = %q, want 'fetchdriver <version>'", agent)
	}
}

func TestDefaultBodyLimit(t *testing.T) {
	if defaultBodyLimit != 100<<20 {
		t.Errorf("defaultBodyLimit = %d, want %d", int64(defaultBodyLimit), int64(100<<20))
	}
}
