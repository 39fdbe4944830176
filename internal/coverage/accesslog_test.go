// SPDX-FileCopyrightText: 2026 autoapi
// SPDX-License-Identifier: FSL-1.1-MIT

package coverage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccessLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		url     string
		method  string
		skipped bool
	}{
		{
			name:   "plain request",
			line:   `http://api.example.com:8080 "GET /users HTTP/1.1" 200 123`,
			url:    "http://api.example.com/users",
			method: "GET",
		},
		{
			name:   "query string stripped",
			line:   `http://api.example.com:80 "GET /search?q=x&page=2 HTTP/1.1" 200 55`,
			url:    "http://api.example.com/search",
			method: "GET",
		},
		{
			name:   "trailing slash stripped",
			line:   `https://api.example.com:443 "POST /users/ HTTP/1.1" 201 0`,
			url:    "https://api.example.com/users",
			method: "POST",
		},
		{
			name:    "non request line",
			line:    "Starting new HTTP connection (1): api.example.com",
			skipped: true,
		},
		{
			name:    "blank line",
			line:    "",
			skipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, ok := ParseAccessLine(tt.line)
			if tt.skipped {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.url, req.URL)
			assert.Equal(t, tt.method, req.Method)
			assert.False(t, req.Matched)
		})
	}
}

func TestObservedFromLogs(t *testing.T) {
	dir := t.TempDir()

	logs := map[string]string{
		"request_gw1.log": `http://api.example.com:80 "GET /users HTTP/1.1" 200 10` + "\n" +
			"Resetting dropped connection: api.example.com\n",
		"request_gw0.log": `http://api.example.com:80 "POST /users HTTP/1.1" 201 5` + "\n",
		"unrelated.txt":   `http://api.example.com:80 "GET /skip HTTP/1.1" 200 1` + "\n",
	}
	for name, content := range logs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	observed, err := ObservedFromLogs(dir, "request_*.log")
	require.NoError(t, err)
	require.Len(t, observed, 2)

	// files are visited in name order
	assert.Equal(t, "POST", observed[0].Method)
	assert.Equal(t, "GET", observed[1].Method)
}

func TestObservedFromLogsEmptyDir(t *testing.T) {
	observed, err := ObservedFromLogs(t.TempDir(), "request_*.log")
	require.NoError(t, err)
	assert.Empty(t, observed)
}
