// Package source turns a locator into a stream of text lines.
//
// A locator is a filesystem path, a file:// URI or an http(s) URL. The
// bytes behind it can be decoded from a legacy code page and, for HTML
// documents, reduced to their visible text before being split into lines.
package source

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
)

// LineReader yields lines of text without their terminators. It returns
// io.EOF once the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// Markup kinds.
const (
	MarkupText = "text"
	MarkupHTML = "html"
)

// Options controls how a locator is opened and decoded.
type Options struct {
	// Encoding is one of utf8, cp437, cp850 or iso-8859-1. Empty means utf8.
	Encoding string
	// Markup is text or html. Empty means text.
	Markup string
	// Timeout bounds remote fetches. Zero means no timeout.
	Timeout time.Duration
	// Client overrides the HTTP client used for remote locators.
	Client *http.Client
}

// Source is an open line stream. It must be closed by the caller.
type Source struct {
	locator string
	reader  *bufio.Reader
	closers []io.Closer
}

// Opener opens a locator. Open satisfies it.
type Opener func(ctx context.Context, locator string) (*Source, error)

// NewOpener binds opts to Open.
func NewOpener(opts Options) Opener {
	return func(ctx context.Context, locator string) (*Source, error) {
		return Open(ctx, locator, opts)
	}
}

// Open resolves locator and returns its decoded line stream.
func Open(ctx context.Context, locator string, opts Options) (*Source, error) {
	rc, err := fetch(ctx, locator, opts)
	if err != nil {
		return nil, err
	}

	src, err := newSource(locator, rc, opts)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return src, nil
}

// FromReader wraps an already open reader. Closing the Source closes r when
// it implements io.Closer.
func FromReader(r io.Reader, opts Options) (*Source, error) {
	rc, ok := r.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(r)
	}
	return newSource("", rc, opts)
}

// FromString returns a plain UTF-8 source over s.
func FromString(s string) *Source {
	return &Source{reader: bufio.NewReader(strings.NewReader(s))}
}

func newSource(locator string, rc io.ReadCloser, opts Options) (*Source, error) {
	decoded, err := decode(rc, opts.Encoding)
	if err != nil {
		return nil, err
	}

	src := &Source{locator: locator, closers: []io.Closer{rc}}

	switch opts.Markup {
	case "", MarkupText:
	case MarkupHTML:
		text := extractText(decoded)
		src.closers = append([]io.Closer{text}, src.closers...)
		decoded = text
	default:
		return nil, wmerrors.NewValidationError(wmerrors.ErrCodeUnsupportedFormat,
			"unsupported markup: "+opts.Markup)
	}

	src.reader = bufio.NewReader(decoded)
	return src, nil
}

// Locator returns the locator the source was opened from.
func (s *Source) Locator() string {
	return s.locator
}

// ReadLine returns the next line with any trailing \n or \r\n removed. A
// final line without a terminator is still returned.
func (s *Source) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimEOL(line), nil
		}
		return "", err
	}
	return trimEOL(line), nil
}

// Close releases the underlying reader(s).
func (s *Source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func fetch(ctx context.Context, locator string, opts Options) (io.ReadCloser, error) {
	u, err := url.Parse(locator)
	if err != nil || u.Scheme == "" || isWindowsDrive(u.Scheme) {
		return openFile(locator)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		path := u.Path
		if path == "" {
			path = u.Opaque
		}
		if u.Host != "" && u.Host != "localhost" {
			// file://./relative.txt keeps the relative part in Host.
			path = u.Host + path
		}
		return openFile(path)
	case "http", "https":
		return openHTTP(ctx, u.String(), opts)
	default:
		return nil, wmerrors.NewValidationError(wmerrors.ErrCodeUnsupportedScheme,
			"unsupported source scheme: "+u.Scheme)
	}
}

func isWindowsDrive(scheme string) bool {
	return len(scheme) == 1
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		code := wmerrors.ErrCodeReadFailure
		if os.IsNotExist(err) {
			code = wmerrors.ErrCodeFileNotFound
		}
		return nil, wmerrors.WrapIO(err, code, "cannot open "+path)
	}
	return f, nil
}
