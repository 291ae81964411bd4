package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/renato0307/inboxsim/internal/domain"
	"github.com/renato0307/inboxsim/internal/logging"
)

// HTMLRenderer implements ports.BodyRenderer for bodies stored under <resources>/html
type HTMLRenderer struct {
	dir string
}

// NewHTMLRenderer creates a renderer rooted at the study's resource directory
func NewHTMLRenderer(resourceDir string) *HTMLRenderer {
	return &HTMLRenderer{dir: filepath.Join(resourceDir, "html")}
}

// Render loads and converts the email's body. A missing body file renders as an empty body.
func (r *HTMLRenderer) Render(email domain.Email) (domain.Body, error) {
	if email.Content == "" {
		return domain.Body{}, nil
	}
	path := filepath.Join(r.dir, email.Content)
	body, err := RenderFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Logger.Warn("Email body not found", "email_id", email.ID, "path", path)
		return domain.Body{}, nil
	}
	return body, err
}

// RenderFile implements ports.BodyRenderer for documents outside the body directory
func (r *HTMLRenderer) RenderFile(path string) (domain.Body, error) {
	return RenderFile(path)
}

// RenderFile converts an HTML file to text and links
func RenderFile(path string) (domain.Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Body{}, fmt.Errorf("failed to open body: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse converts an HTML document to plain text and the ordered list of its links.
// Each link's text is followed by its 1-based index in brackets.
func Parse(r io.Reader) (domain.Body, error) {
	z := html.NewTokenizer(r)
	w := &textWriter{}

	var links []domain.Link
	var skipDepth int
	var linkHref string
	var linkText strings.Builder
	inLink := false

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return domain.Body{Links: links, Text: w.String()}, nil
			}
			return domain.Body{}, fmt.Errorf("failed to parse body: %w", z.Err())

		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := string(z.Text())
			w.text(text)
			if inLink {
				linkText.WriteString(text)
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			tn, hasAttr := z.TagName()
			a := atom.Lookup(tn)
			switch a {
			case atom.Script, atom.Style, atom.Head, atom.Title:
				if tt == html.StartTagToken {
					skipDepth++
				}
			case atom.Br:
				w.newline()
			case atom.Hr:
				w.block()
				w.text("----")
				w.block()
			case atom.Li:
				w.lineStart()
				w.text("• ")
			case atom.Img:
				if alt := attr(z, hasAttr, "alt"); alt != "" && skipDepth == 0 {
					w.text("[" + alt + "]")
				}
			case atom.A:
				if href := attr(z, hasAttr, "href"); href != "" && tt == html.StartTagToken {
					inLink = true
					linkHref = href
					linkText.Reset()
				}
			default:
				if isBlock(a) {
					w.block()
				}
			}

		case html.EndTagToken:
			tn, _ := z.TagName()
			a := atom.Lookup(tn)
			switch a {
			case atom.Script, atom.Style, atom.Head, atom.Title:
				if skipDepth > 0 {
					skipDepth--
				}
			case atom.A:
				if inLink {
					links = append(links, domain.Link{
						Text: strings.Join(strings.Fields(linkText.String()), " "),
						URL:  linkHref,
					})
					w.text(fmt.Sprintf(" [%d]", len(links)))
					inLink = false
				}
			default:
				if isBlock(a) {
					w.block()
				}
			}
		}
	}
}

// attr reads one attribute of the current tag
func attr(z *html.Tokenizer, more bool, name string) string {
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		if string(key) == name {
			return strings.TrimSpace(string(val))
		}
	}
	return ""
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Table, atom.Tr, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Section, atom.Article,
		atom.Header, atom.Footer, atom.Body:
		return true
	}
	return false
}

// textWriter collapses whitespace the way a browser would, keeping explicit breaks
type textWriter struct {
	b        strings.Builder
	newlines int  // Trailing newlines already written
	space    bool // A collapsed space is pending
}

func (w *textWriter) text(s string) {
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			w.space = true
			continue
		}
		if w.space && w.b.Len() > 0 && w.newlines == 0 {
			w.b.WriteByte(' ')
		}
		w.space = false
		w.newlines = 0
		w.b.WriteRune(r)
	}
}

func (w *textWriter) newline() {
	if w.b.Len() == 0 {
		return
	}
	w.b.WriteByte('\n')
	w.newlines++
	w.space = false
}

// lineStart moves to a fresh line unless already on one
func (w *textWriter) lineStart() {
	if w.newlines == 0 {
		w.newline()
	}
}

// block ends the current paragraph with at most one blank line
func (w *textWriter) block() {
	for w.b.Len() > 0 && w.newlines < 2 {
		w.newline()
	}
}

func (w *textWriter) String() string {
	return strings.TrimRight(w.b.String(), "\n ")
}
