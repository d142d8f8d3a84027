package weekly

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Wrapper keys tried in order when a daily file is an object rather
// than a bare list.
var wrapperKeys = []string{"deep_dives", "items", "articles", "stories"}

var (
	titleKeys     = []string{"title", "headline"}
	urlKeys       = []string{"url", "link"}
	sourceKeys    = []string{"source", "source_name", "feed"}
	topicKeys     = []string{"topic", "category", "section"}
	rationaleKeys = []string{"rationale", "why", "reason"}
	dateKeys      = []string{"date", "day", "published"}
)

// ParseDayFile decodes one persisted daily file. The list may be bare
// or wrapped under a known key; per-item field names vary across
// producers. Records missing a title or url are dropped. fileDate
// stands in when a record carries no usable date of its own.
func ParseDayFile(data []byte, fileDate string) ([]Item, error) {
	rawItems, err := decodeList(data)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, ok := decodeItem(raw, fileDate)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeList(data []byte) ([]map[string]any, error) {
	var bare []map[string]any
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	for _, key := range wrapperKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		var list []map[string]any
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, errors.New("no recognized list wrapper key")
}

func decodeItem(raw map[string]any, fileDate string) (Item, bool) {
	item := Item{
		Title:     firstString(raw, titleKeys),
		URL:       firstString(raw, urlKeys),
		Source:    firstString(raw, sourceKeys),
		Topic:     firstString(raw, topicKeys),
		Rationale: firstString(raw, rationaleKeys),
	}
	if item.Title == "" || item.URL == "" {
		return Item{}, false
	}
	item.Date = firstString(raw, dateKeys)
	if _, err := time.Parse(dateLayout, item.Date); err != nil {
		item.Date = fileDate
	}
	return item, true
}

func firstString(raw map[string]any, keys []string) string {
	for _, key := range keys {
		s, ok := raw[key].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return ""
}
