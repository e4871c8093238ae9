// Package dto holds the JSON bodies of the REST API and their mapping from entities.
package dto

import (
	"net/url"
	"strings"
	"time"

	"freightdesk/internal/entities"
)

type PingResponse struct {
	Message    string    `json:"message"`
	Service    string    `json:"service"`
	ServerTime time.Time `json:"server_time"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ParseQuery reads ?search= and the given filter keys. The search text is kept as sent.
// Absent or empty filters mean "all".
func ParseQuery(values url.Values, filterKeys ...string) entities.Query {
	q := entities.Query{SearchText: values.Get("search")}
	for _, key := range filterKeys {
		value := strings.TrimSpace(values.Get(key))
		if value == "" {
			value = entities.FilterAll
		}
		q = q.WithFilter(key, value)
	}
	return q
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
