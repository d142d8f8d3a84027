package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Wire</title>
    <item>
      <title>GPU clusters hit new scale</title>
      <link>https://example.com/gpu</link>
      <guid>gpu-1</guid>
      <pubDate>Tue, 09 Dec 2025 08:00:00 GMT</pubDate>
      <description>&lt;p&gt;Data centers keep &lt;b&gt;growing&lt;/b&gt;.&lt;/p&gt;</description>
    </item>
    <item>
      <title></title>
      <link>https://example.com/untitled</link>
    </item>
  </channel>
</rss>`

func TestFetchAllMapsEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f := NewFetcher(FetcherConfig{})
	got := f.FetchAll(context.Background(), []Feed{{Name: "Example Wire", URL: srv.URL, Topic: "AI/Cloud/Quantum"}})
	if len(got) != 1 {
		t.Fatalf("articles = %d, want 1 (untitled entry dropped)", len(got))
	}
	a := got[0]
	if a.ID != "gpu-1" || a.Source != "Example Wire" || a.Topic != "AI/Cloud/Quantum" {
		t.Fatalf("bad mapping: %+v", a)
	}
	if a.Body != "Data centers keep growing." {
		t.Fatalf("body = %q", a.Body)
	}
	if a.PublishedAt.IsZero() {
		t.Fatalf("published timestamp not parsed")
	}
}

func TestFetchAllToleratesFailedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(FetcherConfig{})
	got := f.FetchAll(context.Background(), []Feed{{Name: "Broken", URL: srv.URL}})
	if len(got) != 0 {
		t.Fatalf("expected empty result for failed feed, got %d", len(got))
	}
}

func TestHTMLToText(t *testing.T) {
	in := "<div><p>Hello   <b>world</b></p>\n<p>again</p></div>"
	if got := HTMLToText(in); got != "Hello world again" {
		t.Fatalf("got %q", got)
	}
	if got := HTMLToText("   "); got != "" {
		t.Fatalf("blank input should stay empty, got %q", got)
	}
}
