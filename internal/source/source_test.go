package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
)

func readAll(t *testing.T, r LineReader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadLine()
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

func TestReadLine(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single line without terminator", "hello", []string{"hello"}},
		{"lf", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb", []string{"a", "", "b"}},
		{"lone cr stays", "a\rb\n", []string{"a\rb"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, readAll(t, FromString(tc.input)))
		})
	}
}

func TestReadLineLongLine(t *testing.T) {
	long := strings.Repeat("word ", 100000)
	lines := readAll(t, FromString(long+"\nend"))
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one two\nthree\n"), 0644))

	t.Run("bare path", func(t *testing.T) {
		src, err := Open(context.Background(), path, Options{})
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, path, src.Locator())
		assert.Equal(t, []string{"one two", "three"}, readAll(t, src))
	})

	t.Run("file uri", func(t *testing.T) {
		src, err := Open(context.Background(), "file://"+filepath.ToSlash(path), Options{})
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, []string{"one two", "three"}, readAll(t, src))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(context.Background(), filepath.Join(dir, "nope.txt"), Options{})
		require.Error(t, err)
		assert.True(t, wmerrors.HasCode(err, wmerrors.ErrCodeFileNotFound))
	})
}

func TestOpenUnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "ftp://example.com/file.txt", Options{})
	require.Error(t, err)
	assert.True(t, wmerrors.HasCode(err, wmerrors.ErrCodeUnsupportedScheme))
}

func TestOpenHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/text":
			w.Write([]byte("remote line one\r\nremote line two"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	t.Run("ok", func(t *testing.T) {
		src, err := Open(context.Background(), server.URL+"/text", Options{Timeout: 5 * time.Second})
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, []string{"remote line one", "remote line two"}, readAll(t, src))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Open(context.Background(), server.URL+"/missing", Options{})
		require.Error(t, err)
		assert.True(t, wmerrors.HasCode(err, wmerrors.ErrCodeHTTPStatus))
		assert.Equal(t, wmerrors.ErrorTypeNetwork, wmerrors.GetErrorType(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Open(ctx, server.URL+"/text", Options{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEncodings(t *testing.T) {
	t.Run("utf8 bom stripped", func(t *testing.T) {
		src, err := FromReader(strings.NewReader("\xEF\xBB\xBFhello\n"), Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, readAll(t, src))
	})

	t.Run("iso-8859-1", func(t *testing.T) {
		src, err := FromReader(strings.NewReader("caf\xE9"), Options{Encoding: EncodingISO88591})
		require.NoError(t, err)
		assert.Equal(t, []string{"café"}, readAll(t, src))
	})

	t.Run("cp437", func(t *testing.T) {
		src, err := FromReader(strings.NewReader("caf\x82"), Options{Encoding: EncodingCP437})
		require.NoError(t, err)
		assert.Equal(t, []string{"café"}, readAll(t, src))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := FromReader(strings.NewReader(""), Options{Encoding: "ebcdic"})
		require.Error(t, err)
		assert.True(t, wmerrors.HasCode(err, wmerrors.ErrCodeUnsupportedEncoding))
	})
}

func TestHTMLExtraction(t *testing.T) {
	doc := `<html><head><title>Title here</title><style>p { color: red; }</style></head>
<body><p>First &amp; second</p><script>var x = 1;</script><div>Third<br/>Fourth</div></body></html>`

	src, err := FromReader(strings.NewReader(doc), Options{Markup: MarkupHTML})
	require.NoError(t, err)
	defer src.Close()

	var words []string
	for _, line := range readAll(t, src) {
		words = append(words, strings.Fields(line)...)
	}

	assert.Equal(t, []string{"Title", "here", "First", "&", "second", "Third", "Fourth"}, words)
}

func TestHTMLCloseStopsExtraction(t *testing.T) {
	doc := "<p>" + strings.Repeat("lorem ipsum ", 50000) + "</p>"
	src, err := FromReader(strings.NewReader(doc), Options{Markup: MarkupHTML})
	require.NoError(t, err)

	_, err = src.ReadLine()
	require.NoError(t, err)
	assert.NoError(t, src.Close())
}

func TestUnknownMarkup(t *testing.T) {
	_, err := FromReader(strings.NewReader("x"), Options{Markup: "markdown"})
	require.Error(t, err)
	assert.Equal(t, wmerrors.ErrorTypeValidation, wmerrors.GetErrorType(err))
}
