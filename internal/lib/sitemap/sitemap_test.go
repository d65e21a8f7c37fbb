package sitemap

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder("https://connectlist.me/")
	b.Add("/", time.Time{}, Daily, 1.0)
	b.Add("/list/abc", time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC), Weekly, 0.8)
	b.Add("/profile/ayse", time.Time{}, Weekly, 0.6)
	require.Equal(t, 3, b.Len())

	out, err := b.Bytes()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, s, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, s, "<loc>https://connectlist.me/list/abc</loc>")
	assert.Contains(t, s, "<lastmod>2026-03-04</lastmod>")
	assert.Contains(t, s, "<priority>0.8</priority>")
	assert.Contains(t, s, "<priority>1.0</priority>")

	var parsed urlSet
	require.NoError(t, xml.Unmarshal(out, &parsed))
	require.Len(t, parsed.URLs, 3)
	assert.Empty(t, parsed.URLs[0].LastMod)
	assert.Equal(t, Weekly, parsed.URLs[2].ChangeFreq)
}

func TestBuilder_EscapesLoc(t *testing.T) {
	b := NewBuilder("https://connectlist.me")
	b.Add("/search?q=a&b", time.Time{}, "", 0)

	out, err := b.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(out), "<loc>https://connectlist.me/search?q=a&amp;b</loc>")
	assert.NotContains(t, string(out), "<priority>")
}
