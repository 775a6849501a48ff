package source

import (
	"bufio"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements end the current line of extracted text.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figcaption: true, atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Td: true, atom.Th: true, atom.Title: true, atom.Tr: true, atom.Ul: true,
}

// skippedElements contribute no visible text.
var skippedElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Template: true,
}

// extractText streams the visible text of an HTML document. The returned
// reader must be closed to stop the tokenizer goroutine early.
func extractText(r io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()

	go func() {
		w := bufio.NewWriter(pw)
		err := writeText(html.NewTokenizer(r), w)
		if err == nil {
			err = w.Flush()
		}
		pw.CloseWithError(err)
	}()

	return pr
}

func writeText(z *html.Tokenizer, w *bufio.Writer) error {
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return nil
			}
			return z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skippedElements[a] && tt == html.StartTagToken {
				skipDepth++
			}
			if blockElements[a] {
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if skippedElements[a] && skipDepth > 0 {
				skipDepth--
			}
			if blockElements[a] {
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if _, err := w.Write(z.Text()); err != nil {
				return err
			}
		}
	}
}
