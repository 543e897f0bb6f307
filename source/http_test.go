// SPDX-License-Identifier: EPL-2.0

package source

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newRangeServer(t *testing.T, data []byte) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, "take.wav", time.Time{}, bytes.NewReader(data))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestHTTP_ReadRange(t *testing.T) {
	t.Parallel()

	data := []byte("RIFF....WAVEfmt payload bytes")
	srv := newRangeServer(t, data)

	src, err := OpenHTTP(context.Background(), srv.URL+"/audio/take.wav", WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("OpenHTTP() error = %v", err)
	}

	if src.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", src.Size(), len(data))
	}

	if src.Name() != "take.wav" {
		t.Errorf("Name() = %q, want %q", src.Name(), "take.wav")
	}

	got, err := src.ReadRange(context.Background(), 8, 12)
	if err != nil {
		t.Fatalf("ReadRange() error = %v", err)
	}

	if string(got) != "WAVE" {
		t.Errorf("ReadRange(8, 12) = %q, want %q", got, "WAVE")
	}

	tail, err := src.ReadRange(context.Background(), int64(len(data))-3, int64(len(data))+100)
	if err != nil {
		t.Fatalf("ReadRange() past end error = %v", err)
	}

	if string(tail) != "tes" {
		t.Errorf("ReadRange() past end = %q, want %q", tail, "tes")
	}

	empty, err := src.ReadRange(context.Background(), 1000, 2000)
	if err != nil {
		t.Fatalf("ReadRange() beyond end error = %v", err)
	}

	if len(empty) != 0 {
		t.Errorf("ReadRange() beyond end len = %d, want 0", len(empty))
	}
}

func TestHTTP_RangeNotSupported(t *testing.T) {
	t.Parallel()

	data := []byte("RIFF....WAVE")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "12")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)

	src, err := OpenHTTP(context.Background(), srv.URL, WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("OpenHTTP() error = %v", err)
	}

	if _, err := src.ReadRange(context.Background(), 0, 4); !errors.Is(err, ErrRangeNotSupported) {
		t.Errorf("ReadRange() error = %v, want ErrRangeNotSupported", err)
	}
}

func TestOpenHTTP_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	if _, err := OpenHTTP(context.Background(), srv.URL+"/missing.wav", WithHTTPClient(srv.Client())); err == nil {
		t.Error("OpenHTTP() error = nil, want error for 404")
	}
}

func TestRegistry_OpenHTTP(t *testing.T) {
	t.Parallel()

	srv := newRangeServer(t, []byte("RIFF0000WAVE"))

	reg := NewDefaultRegistry(WithHTTPClient(srv.Client()))
	src, err := reg.Open(context.Background(), srv.URL+"/a.wav")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if _, ok := src.(*HTTP); !ok {
		t.Errorf("Open() returned %T, want *HTTP", src)
	}
}
