package service

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alpereneser/connectlist-sub003/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLists struct {
	lists []model.List
	err   error
	calls int
}

func (f *fakeLists) GetPublicLists(_ context.Context, _ int) ([]model.List, error) {
	f.calls++
	return f.lists, f.err
}

type fakeProfiles struct {
	profiles []model.Profile
}

func (f *fakeProfiles) GetPublicProfiles(_ context.Context, _ int) ([]model.Profile, error) {
	return f.profiles, nil
}

func publicList(updated time.Time) model.List {
	l := model.List{Title: "Favourites", IsPublic: true}
	l.ID = uuid.New()
	l.UpdatedAt = updated
	return l
}

func TestSitemapService_Generate(t *testing.T) {
	c, _ := newTestCache(t, "sitemap")
	lists := &fakeLists{lists: []model.List{
		publicList(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)),
		publicList(time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)),
	}}
	profiles := &fakeProfiles{profiles: []model.Profile{{Username: "ayse"}}}

	svc := &SitemapService{
		lists:    lists,
		profiles: profiles,
		cache:    c,
		baseURL:  "https://connectlist.me",
		maxItems: 5000,
		ttl:      time.Hour,
		logger:   nopLogger(),
	}

	doc, err := svc.Generate(context.Background())
	require.NoError(t, err)

	var parsed struct {
		URLs []struct {
			Loc        string `xml:"loc"`
			LastMod    string `xml:"lastmod"`
			ChangeFreq string `xml:"changefreq"`
			Priority   string `xml:"priority"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(doc, &parsed))

	var listURLs []string
	for _, u := range parsed.URLs {
		if strings.Contains(u.Loc, "/list/") {
			listURLs = append(listURLs, u.Loc)
			assert.Equal(t, "weekly", u.ChangeFreq)
			assert.Equal(t, "0.8", u.Priority)
		}
	}
	assert.Len(t, listURLs, 2, "one url per public list")
	assert.Equal(t, "https://connectlist.me/list/"+lists.lists[0].ID.String(), listURLs[0])
	assert.Len(t, parsed.URLs, 3+2+1)
	assert.Contains(t, string(doc), "<lastmod>2026-05-01</lastmod>")
	assert.Contains(t, string(doc), "<loc>https://connectlist.me/profile/ayse</loc>")

	_, err = svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, lists.calls, "second call served from cache")
}

func TestSitemapService_DatabaseFailure(t *testing.T) {
	svc := &SitemapService{
		lists:    &fakeLists{err: errors.New("connection refused")},
		profiles: &fakeProfiles{},
		baseURL:  "https://connectlist.me",
		maxItems: 10,
		logger:   nopLogger(),
	}

	_, err := svc.Generate(context.Background())
	requireHTTPError(t, err, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
}
