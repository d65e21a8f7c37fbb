// Package sitemap renders sitemaps.org XML documents.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Namespace is the sitemaps.org 0.9 schema.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// MaxURLs is the protocol limit for one sitemap file.
const MaxURLs = 50000

// ChangeFreq is the <changefreq> hint.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

// URL is one <url> entry.
type URL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// Builder collects URLs under one origin.
type Builder struct {
	baseURL string
	urls    []URL
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// Add appends path. A zero lastMod or priority is omitted.
func (b *Builder) Add(path string, lastMod time.Time, freq ChangeFreq, priority float64) {
	u := URL{
		Loc:        b.baseURL + path,
		ChangeFreq: freq,
	}
	if !lastMod.IsZero() {
		u.LastMod = lastMod.UTC().Format("2006-01-02")
	}
	if priority > 0 {
		u.Priority = strconv.FormatFloat(priority, 'f', 1, 64)
	}
	b.urls = append(b.urls, u)
}

// Len reports how many URLs were added.
func (b *Builder) Len() int {
	return len(b.urls)
}

// Bytes renders the document with its XML declaration.
func (b *Builder) Bytes() ([]byte, error) {
	if len(b.urls) > MaxURLs {
		return nil, errors.Errorf("sitemap has %d urls, limit is %d", len(b.urls), MaxURLs)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet{Xmlns: Namespace, URLs: b.urls}); err != nil {
		return nil, errors.Wrap(err, "encoding sitemap")
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
