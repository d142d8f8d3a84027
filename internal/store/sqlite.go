package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/joelkehle/mediawatch/internal/briefing"
	"github.com/joelkehle/mediawatch/internal/patents"
	"github.com/joelkehle/mediawatch/internal/quotes"
)

// Archive keeps the historical record of every briefing run in SQLite
// with write-through semantics: re-running a day replaces that day's
// rows.
type Archive struct {
	db *sqlx.DB
}

const archiveSchema = `
CREATE TABLE IF NOT EXISTS runs (
	day              TEXT PRIMARY KEY,
	generated_at     TEXT NOT NULL,
	article_count    INTEGER NOT NULL DEFAULT 0,
	deep_dive_count  INTEGER NOT NULL DEFAULT 0,
	quote_count      INTEGER NOT NULL DEFAULT 0,
	patent_count     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS deep_dives (
	day       TEXT NOT NULL,
	position  INTEGER NOT NULL,
	title     TEXT NOT NULL,
	url       TEXT NOT NULL,
	source    TEXT NOT NULL DEFAULT '',
	topic     TEXT NOT NULL DEFAULT '',
	score     INTEGER NOT NULL DEFAULT 0,
	rationale TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (day, position)
);

CREATE TABLE IF NOT EXISTS watchlist_items (
	day      TEXT NOT NULL,
	topic    TEXT NOT NULL,
	position INTEGER NOT NULL,
	title    TEXT NOT NULL,
	url      TEXT NOT NULL,
	source   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (day, topic, position)
);

CREATE TABLE IF NOT EXISTS quotes (
	day         TEXT NOT NULL,
	position    INTEGER NOT NULL,
	entity      TEXT NOT NULL,
	affiliation TEXT NOT NULL DEFAULT '',
	topic       TEXT NOT NULL DEFAULT '',
	quote_text  TEXT NOT NULL,
	source_url  TEXT NOT NULL DEFAULT '',
	tags        TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (day, position)
);

CREATE TABLE IF NOT EXISTS patent_records (
	day                TEXT NOT NULL,
	position           INTEGER NOT NULL,
	office             TEXT NOT NULL,
	publication_number TEXT NOT NULL,
	title              TEXT NOT NULL,
	publication_date   TEXT NOT NULL DEFAULT '',
	assignee           TEXT NOT NULL DEFAULT '',
	tags               TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (day, position)
);
`

func OpenArchive(dbPath string) (*Archive, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error { return a.db.Close() }

// RunResult bundles everything one pipeline invocation produced.
type RunResult struct {
	Day          string
	ArticleCount int
	Selection    briefing.Selection
	Rationales   []string
	Quotes       []quotes.Quote
	Patents      []patents.Record
}

func (a *Archive) ArchiveRun(res RunResult) error {
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"runs", "deep_dives", "watchlist_items", "quotes", "patent_records"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE day = ?", res.Day); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO runs (day, generated_at, article_count, deep_dive_count, quote_count, patent_count) VALUES (?, ?, ?, ?, ?, ?)",
		res.Day, time.Now().UTC().Format(time.RFC3339), res.ArticleCount, len(res.Selection.DeepDives), len(res.Quotes), len(res.Patents),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, dd := range res.Selection.DeepDives {
		rationale := ""
		if i < len(res.Rationales) {
			rationale = res.Rationales[i]
		}
		_, err = tx.Exec(
			"INSERT INTO deep_dives (day, position, title, url, source, topic, score, rationale) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			res.Day, i, dd.Title, dd.URL, dd.Source, string(briefing.ClassifyTopic(dd.Article)), dd.Score, rationale,
		)
		if err != nil {
			return fmt.Errorf("insert deep dive: %w", err)
		}
	}

	for topic, entries := range res.Selection.Watchlist {
		for i, e := range entries {
			_, err = tx.Exec(
				"INSERT INTO watchlist_items (day, topic, position, title, url, source) VALUES (?, ?, ?, ?, ?, ?)",
				res.Day, string(topic), i, e.Title, e.URL, e.Source,
			)
			if err != nil {
				return fmt.Errorf("insert watchlist item: %w", err)
			}
		}
	}

	for i, q := range res.Quotes {
		_, err = tx.Exec(
			"INSERT INTO quotes (day, position, entity, affiliation, topic, quote_text, source_url, tags) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			res.Day, i, q.Entity, q.Affiliation, q.Topic, q.Text, q.SourceURL, strings.Join(q.Tags, ","),
		)
		if err != nil {
			return fmt.Errorf("insert quote: %w", err)
		}
	}

	for i, p := range res.Patents {
		_, err = tx.Exec(
			"INSERT INTO patent_records (day, position, office, publication_number, title, publication_date, assignee, tags) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			res.Day, i, p.Office, p.PublicationNumber, p.Title, p.PublicationDate, p.Assignee, strings.Join(p.Tags, ","),
		)
		if err != nil {
			return fmt.Errorf("insert patent record: %w", err)
		}
	}

	return tx.Commit()
}

// RunSummary is one archived day as listed by RecentRuns.
type RunSummary struct {
	Day           string `db:"day"`
	GeneratedAt   string `db:"generated_at"`
	ArticleCount  int    `db:"article_count"`
	DeepDiveCount int    `db:"deep_dive_count"`
	QuoteCount    int    `db:"quote_count"`
	PatentCount   int    `db:"patent_count"`
}

func (a *Archive) RecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 30
	}
	out := []RunSummary{}
	err := a.db.Select(&out, "SELECT day, generated_at, article_count, deep_dive_count, quote_count, patent_count FROM runs ORDER BY day DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	return out, nil
}
