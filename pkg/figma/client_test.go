package figma

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "valid /file/ URL",
			url:  "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "valid /design/ URL",
			url:  "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with node-id parameter",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Tokens?node-id=11933-305884",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL without www subdomain",
			url:  "https://figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with http protocol",
			url:  "http://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with trailing slash",
			url:  "https://www.figma.com/file/ABC123XYZ/",
			want: "ABC123XYZ",
		},
		{
			name: "URL ending at the key with a query",
			url:  "https://www.figma.com/file/ABC123XYZ?t=abc",
			want: "ABC123XYZ",
		},
		{
			name:    "invalid URL - missing file key",
			url:     "https://www.figma.com/file/",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "invalid URL - look-alike host",
			url:     "https://evil.com/?https://www.figma.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "invalid URL - wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFileKey(t *testing.T) {
	key, err := ResolveFileKey("aB1cD2eF3gH4")
	require.NoError(t, err)
	assert.Equal(t, "aB1cD2eF3gH4", key)

	key, err = ResolveFileKey("https://www.figma.com/design/aB1cD2eF3gH4/Tokens")
	require.NoError(t, err)
	assert.Equal(t, "aB1cD2eF3gH4", key)

	_, err = ResolveFileKey("not a key")
	assert.Error(t, err)
}

const fileBody = `{
	"name": "Design Tokens",
	"lastModified": "2026-01-02T03:04:05Z",
	"version": "42",
	"thumbnailUrl": "ignored",
	"document": {
		"id": "0:0",
		"name": "Document",
		"type": "DOCUMENT",
		"children": [{
			"id": "0:1",
			"name": "Page 1",
			"type": "CANVAS",
			"children": [{
				"id": "1:1",
				"name": "Colors",
				"type": "FRAME",
				"children": [{
					"id": "1:2",
					"name": "primary",
					"type": "RECTANGLE",
					"fills": [{"type": "SOLID", "blendMode": "NORMAL", "color": {"r": 1, "g": 0, "b": 0, "a": 1}}]
				}]
			}]
		}]
	}
}`

func noBackoff(t *testing.T) {
	t.Helper()
	orig := RetryBaseDelay
	RetryBaseDelay = time.Millisecond
	t.Cleanup(func() { RetryBaseDelay = orig })
}

func TestGetFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/KEY123", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
		w.Write([]byte(fileBody))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))
	resp, err := client.GetFile(context.Background(), "KEY123")
	require.NoError(t, err)

	assert.Equal(t, "Design Tokens", resp.Name)
	require.Len(t, resp.Document.Children, 1)
	page := resp.Document.Children[0]
	require.Len(t, page.Children, 1)
	swatch := page.Children[0].Children[0]
	require.Len(t, swatch.Fills, 1)
	assert.Equal(t, &Color{R: 1, A: 1}, swatch.Fills[0].Color)
}

func TestGetFileRetriesTemporaryErrors(t *testing.T) {
	noBackoff(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write([]byte(fileBody))
		}
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL))
	resp, err := client.GetFile(context.Background(), "KEY123")
	require.NoError(t, err)
	assert.Equal(t, "Design Tokens", resp.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetFileGivesUp(t *testing.T) {
	noBackoff(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("try later"))
	}))
	defer srv.Close()

	client := NewClient("secret", WithBaseURL(srv.URL), WithMaxRetries(2))
	_, err := client.GetFile(context.Background(), "KEY123")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "try later", apiErr.Body)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetFileDoesNotRetryClientErrors(t *testing.T) {
	noBackoff(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":403,"err":"Invalid token"}`))
	}))
	defer srv.Close()

	client := NewClient("bad", WithBaseURL(srv.URL))
	_, err := client.GetFile(context.Background(), "KEY123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid token")
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetFileCancelled(t *testing.T) {
	orig := RetryBaseDelay
	RetryBaseDelay = time.Hour
	t.Cleanup(func() { RetryBaseDelay = orig })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient("secret", WithBaseURL(srv.URL))
	_, err := client.GetFile(ctx, "KEY123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDecodeFile(t *testing.T) {
	t.Run("file payload", func(t *testing.T) {
		resp, err := DecodeFile(strings.NewReader(fileBody))
		require.NoError(t, err)
		assert.Equal(t, "Design Tokens", resp.Name)
		assert.Equal(t, "DOCUMENT", resp.Document.Type)
	})

	t.Run("bare document node", func(t *testing.T) {
		resp, err := DecodeFile(strings.NewReader(`{"name": "Document", "children": [{"name": "Page", "children": []}]}`))
		require.NoError(t, err)
		assert.Equal(t, "Document", resp.Name)
		require.Len(t, resp.Document.Children, 1)
		assert.Equal(t, "Page", resp.Document.Children[0].Name)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := DecodeFile(strings.NewReader(`{"document":`))
		assert.Error(t, err)
	})

	t.Run("non-numeric channel", func(t *testing.T) {
		_, err := DecodeFile(strings.NewReader(`{"children": [{"fills": [{"color": {"r": "red"}}]}]}`))
		assert.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "document.json")
	require.NoError(t, os.WriteFile(path, []byte(fileBody), 0o644))

	resp, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Design Tokens", resp.Name)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
