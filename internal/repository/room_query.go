package repository

import (
	"fmt"
	"strings"
)

// RoomFilter is the parsed form of the user's filter state. Price bounds
// arrive pre-parsed; the HTTP layer rejects malformed numeric strings
// before a filter is ever built. A nil bound or empty string means the
// field was left blank and compiles to no predicate at all.
type RoomFilter struct {
	Location         string
	MinPrice         *int
	MaxPrice         *int
	PropertyType     string
	TenantPreference string
}

// IsEmpty reports whether no filter field is set
func (f *RoomFilter) IsEmpty() bool {
	return f == nil || (f.Location == "" &&
		f.MinPrice == nil &&
		f.MaxPrice == nil &&
		f.PropertyType == "" &&
		f.TenantPreference == "")
}

// Predicate is a single comparison condition applied to the rooms query.
// Clause uses a `?` placeholder that buildRoomListQuery numbers.
type Predicate struct {
	Clause string
	Arg    interface{}
}

// Predicates compiles the filter into its ordered predicate list. The
// predicates are evaluated as a conjunction; empty fields are omitted
// rather than matched as empty strings.
func (f *RoomFilter) Predicates() []Predicate {
	if f == nil {
		return nil
	}

	var preds []Predicate
	if f.Location != "" {
		preds = append(preds, Predicate{
			Clause: "location ILIKE ?",
			Arg:    "%" + f.Location + "%",
		})
	}
	if f.MinPrice != nil {
		preds = append(preds, Predicate{
			Clause: "rent_price >= ?",
			Arg:    *f.MinPrice,
		})
	}
	if f.MaxPrice != nil {
		preds = append(preds, Predicate{
			Clause: "rent_price <= ?",
			Arg:    *f.MaxPrice,
		})
	}
	if f.PropertyType != "" {
		preds = append(preds, Predicate{
			Clause: "property_type = ?",
			Arg:    f.PropertyType,
		})
	}
	if f.TenantPreference != "" {
		preds = append(preds, Predicate{
			Clause: "tenant_preference = ?",
			Arg:    f.TenantPreference,
		})
	}
	return preds
}

// buildRoomListQuery assembles the listing query. The result set is
// always newest first, so an empty filter reproduces the full unfiltered
// listing in the same order.
func buildRoomListQuery(f *RoomFilter) (string, []interface{}) {
	query := "SELECT * FROM rooms"

	preds := f.Predicates()
	clauses := make([]string, 0, len(preds))
	args := make([]interface{}, 0, len(preds))
	for i, p := range preds {
		clauses = append(clauses, strings.Replace(p.Clause, "?", fmt.Sprintf("$%d", i+1), 1))
		args = append(args, p.Arg)
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return query, args
}
