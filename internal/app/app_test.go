package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shravanasati/minihttp/files"
	"github.com/shravanasati/minihttp/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notFoundResponse = "HTTP/1.1 404 Not Found\r\n\r\n404 Not Found"

// dispatch parses raw and runs it through the application router.
func dispatch(t *testing.T, raw string, dir files.Dir) (string, error) {
	t.Helper()
	req, err := request.Parse(raw)
	require.NoError(t, err)

	resp, err := NewRouter().Dispatch(req, dir)
	if err != nil {
		return "", err
	}
	return string(resp.Bytes()), nil
}

// mockDir is a files.Dir on which every call fails.
type mockDir struct {
	err error
}

func (m mockDir) ReadFile(name string) ([]byte, error)      { return nil, m.err }
func (m mockDir) WriteFile(name string, data []byte) error { return m.err }

func TestFixedRoutes(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "root",
			raw:      "GET / HTTP/1.1\r\nHost: localhost:4221\r\nUser-Agent: curl/8.0\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\n\r\n200 OK",
		},
		{
			name:     "root without headers",
			raw:      "GET / HTTP/1.1\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\n\r\n200 OK",
		},
		{
			name:     "echo",
			raw:      "GET /echo/abc HTTP/1.1\r\nHost: localhost:4221\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc",
		},
		{
			name:     "echo keeps slashes and escapes",
			raw:      "GET /echo/a/b%20c HTTP/1.1\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 7\r\n\r\na/b%20c",
		},
		{
			name:     "echo empty",
			raw:      "GET /echo/ HTTP/1.1\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 0\r\n\r\n",
		},
		{
			name:     "user agent",
			raw:      "GET /user-agent HTTP/1.1\r\nHost: localhost:4221\r\nUser-Agent: xyz\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nxyz",
		},
		{
			name:     "user agent multi-byte",
			raw:      "GET /user-agent HTTP/1.1\r\nUser-Agent: grüße/☃\r\n\r\n",
			expected: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 11\r\n\r\ngrüße/☃",
		},
		{
			name:     "unknown path",
			raw:      "GET /nope HTTP/1.1\r\nHost: localhost:4221\r\n\r\n",
			expected: notFoundResponse,
		},
		{
			name:     "unknown path with body",
			raw:      "POST /nope HTTP/1.1\r\nX-Anything: 1\r\n\r\npayload",
			expected: notFoundResponse,
		},
		{
			name:     "post to root",
			raw:      "POST / HTTP/1.1\r\n\r\n",
			expected: notFoundResponse,
		},
		{
			name:     "echo without trailing slash",
			raw:      "GET /echo HTTP/1.1\r\n\r\n",
			expected: notFoundResponse,
		},
		{
			name:     "files without directory",
			raw:      "GET /files/foo.txt HTTP/1.1\r\n\r\n",
			expected: notFoundResponse,
		},
		{
			name:     "upload without directory",
			raw:      "POST /files/foo.txt HTTP/1.1\r\n\r\nhello",
			expected: notFoundResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dispatch(t, tc.raw, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestUserAgentMissing(t *testing.T) {
	_, err := dispatch(t, "GET /user-agent HTTP/1.1\r\nHost: localhost\r\n\r\n", nil)
	require.ErrorIs(t, err, request.ErrMissingHeader)

	// header names are matched exactly
	_, err = dispatch(t, "GET /user-agent HTTP/1.1\r\nuser-agent: curl\r\n\r\n", nil)
	require.ErrorIs(t, err, request.ErrMissingHeader)
}

func TestFileRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	dir := files.NewDirFS(tempDir)

	got, err := dispatch(t, "POST /files/foo.txt HTTP/1.1\r\nHost: localhost\r\nContent-Length: 5\r\n\r\nhello", dir)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 201 Created\r\n\r\n", got)

	onDisk, err := os.ReadFile(filepath.Join(tempDir, "foo.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(onDisk))

	got, err = dispatch(t, "GET /files/foo.txt HTTP/1.1\r\nHost: localhost\r\n\r\n", dir)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 5\r\n\r\nhello", got)
}

func TestFileRoutes(t *testing.T) {
	tempDir := t.TempDir()
	dir := files.NewDirFS(tempDir)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "bin.dat"), []byte{0x00, 0x01, 0xff}, 0644))

	t.Run("missing file", func(t *testing.T) {
		got, err := dispatch(t, "GET /files/missing.txt HTTP/1.1\r\n\r\n", dir)
		require.NoError(t, err)
		assert.Equal(t, notFoundResponse, got)
	})

	t.Run("binary file", func(t *testing.T) {
		got, err := dispatch(t, "GET /files/bin.dat HTTP/1.1\r\n\r\n", dir)
		require.NoError(t, err)
		assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 3\r\n\r\n\x00\x01\xff", got)
	})

	t.Run("directory is not a file", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(tempDir, "sub"), 0755))
		got, err := dispatch(t, "GET /files/sub HTTP/1.1\r\n\r\n", dir)
		require.NoError(t, err)
		assert.Equal(t, notFoundResponse, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		_, err := dispatch(t, "POST /files/over.txt HTTP/1.1\r\n\r\nfirst", dir)
		require.NoError(t, err)
		_, err = dispatch(t, "POST /files/over.txt HTTP/1.1\r\n\r\nsecond", dir)
		require.NoError(t, err)

		got, err := dispatch(t, "GET /files/over.txt HTTP/1.1\r\n\r\n", dir)
		require.NoError(t, err)
		assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 6\r\n\r\nsecond", got)
	})

	t.Run("upload without body", func(t *testing.T) {
		_, err := dispatch(t, "POST /files/empty.txt HTTP/1.1\r\nHost: localhost\r\n\r\n", dir)
		require.ErrorIs(t, err, request.ErrMissingBody)
		assert.NoFileExists(t, filepath.Join(tempDir, "empty.txt"))
	})

	t.Run("traversal is refused", func(t *testing.T) {
		got, err := dispatch(t, "GET /files/../secret HTTP/1.1\r\n\r\n", dir)
		require.NoError(t, err)
		assert.Equal(t, notFoundResponse, got)

		got, err = dispatch(t, "POST /files/../escape.txt HTTP/1.1\r\n\r\nx", dir)
		require.NoError(t, err)
		assert.Equal(t, notFoundResponse, got)
		assert.NoFileExists(t, filepath.Join(filepath.Dir(tempDir), "escape.txt"))
	})
}

func TestFileWriteFailure(t *testing.T) {
	errDisk := errors.New("disk full")
	_, err := dispatch(t, "POST /files/foo.txt HTTP/1.1\r\n\r\nhello", mockDir{err: errDisk})
	require.ErrorIs(t, err, errDisk)

	got, err := dispatch(t, "GET /files/foo.txt HTTP/1.1\r\n\r\n", mockDir{err: errDisk})
	require.NoError(t, err)
	assert.Equal(t, notFoundResponse, got)
}
