package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/domain"
)

func paneWithLinks(t *testing.T, urls ...string) *ReadingPane {
	t.Helper()
	var links []domain.Link
	for _, u := range urls {
		links = append(links, domain.Link{Text: u, URL: u})
	}
	p := NewReadingPane()
	p.SetSize(80, 20)
	p.Show(domain.NewEntry(domain.Email{ID: 1, Name: "Bank", Title: "Verify"}), domain.Body{Links: links, Text: "body"}, defaultCategoryStyles())
	return p
}

func TestReadingPane_LinkCycling(t *testing.T) {
	p := paneWithLinks(t, "http://a", "http://b", "http://c")

	url, ok := p.NextLink()
	require.True(t, ok)
	assert.Equal(t, "http://a", url)

	url, _ = p.PrevLink()
	assert.Equal(t, "http://c", url)

	url, _ = p.NextLink()
	assert.Equal(t, "http://a", url)
	assert.Contains(t, p.View(), "http://a")

	assert.True(t, p.ReleaseLink())
	assert.False(t, p.ReleaseLink())
	_, focused := p.FocusedLink()
	assert.False(t, focused)
}

func TestReadingPane_PrevFromNothingFocusesLast(t *testing.T) {
	p := paneWithLinks(t, "http://a", "http://b")
	url, ok := p.PrevLink()
	require.True(t, ok)
	assert.Equal(t, "http://b", url)
}

func TestReadingPane_NoLinks(t *testing.T) {
	p := paneWithLinks(t)
	_, ok := p.NextLink()
	assert.False(t, ok)
}

func TestReadingPane_ShowResetsFocus(t *testing.T) {
	p := paneWithLinks(t, "http://a")
	p.NextLink()

	p.Show(domain.NewEntry(domain.Email{ID: 2}), domain.Body{Links: []domain.Link{{URL: "http://z"}}}, defaultCategoryStyles())
	_, focused := p.FocusedLink()
	assert.False(t, focused)
}

func TestReadingPane_Clear(t *testing.T) {
	p := paneWithLinks(t, "http://a")
	p.Clear()

	_, ok := p.Entry()
	assert.False(t, ok)
	assert.Contains(t, p.View(), "Select an email")
}
