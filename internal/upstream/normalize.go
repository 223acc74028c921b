// Package upstream talks to the remote helpdesk REST API. All records stay
// externally owned; this package only reads them and normalizes the drifting
// response shapes into one canonical page before any derivation runs.
package upstream

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Page is the canonical collection shape every list endpoint is reduced to.
type Page struct {
	Items []json.RawMessage
	Total int
}

// NormalizePage maps the three historical response shapes — a bare array,
// `{"items": [...]}` and `{"data": [...]}` — into one Page. A `total` field
// is honored when present, otherwise the item count is used. Anything else
// normalizes to an empty page rather than an error.
func NormalizePage(body []byte) Page {
	root := gjson.ParseBytes(body)

	var list gjson.Result
	switch {
	case root.IsArray():
		list = root
	case root.Get("items").IsArray():
		list = root.Get("items")
	case root.Get("data").IsArray():
		list = root.Get("data")
	default:
		return Page{Items: []json.RawMessage{}}
	}

	elements := list.Array()
	items := make([]json.RawMessage, 0, len(elements))
	for _, el := range elements {
		items = append(items, json.RawMessage(el.Raw))
	}

	total := len(items)
	if t := root.Get("total"); t.Exists() {
		total = int(t.Int())
	}
	return Page{Items: items, Total: total}
}

// decodeItems unmarshals each normalized item into dest's element type,
// skipping records that fail to decode so one malformed row never sinks the
// whole collection.
func decodeItems[T any](page Page) []T {
	out := make([]T, 0, len(page.Items))
	for _, raw := range page.Items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}
