package adapter

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds PostgREST query parameters. A nil *Query is an empty query.
//
//	q := adapter.NewQuery().Select("id,username").Eq("username", "ana").Limit(1)
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Select sets the column projection.
func (q *Query) Select(columns string) *Query {
	q.values.Set("select", columns)
	return q
}

// Eq adds an exact-match filter: column=eq.value.
func (q *Query) Eq(column, value string) *Query {
	q.values.Add(column, "eq."+value)
	return q
}

// ILike adds a case-insensitive filter: column=ilike.value. LIKE
// metacharacters in value are escaped so the filter stays an exact match.
func (q *Query) ILike(column, value string) *Query {
	q.values.Add(column, "ilike."+escapeLike(value))
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.values.Set("limit", strconv.Itoa(n))
	return q
}

// Values returns a copy of the accumulated parameters.
func (q *Query) Values() url.Values {
	out := url.Values{}
	if q == nil {
		return out
	}
	for k, v := range q.values {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// String encodes the query, mostly for logs.
func (q *Query) String() string {
	return q.Values().Encode()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes Postgres LIKE metacharacters. PostgREST additionally
// turns '*' into '%', which cannot be escaped; callers must not send values
// containing '*' through ILike.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// HasLikeWildcardAlias reports whether value contains the PostgREST wildcard
// alias '*'.
func HasLikeWildcardAlias(value string) bool {
	return strings.Contains(value, "*")
}
