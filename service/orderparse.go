package service

import (
	"sort"
	"strings"
)

type orderClause[T any] struct {
	cmp  func(a, b T) int
	desc bool
}

// ApplyOrder sorts items by a comma separated spec such as
// "price desc,title asc". Each clause names a key from fields, optionally
// followed by asc or desc (asc when omitted); names and directions are
// case-insensitive and whitespace is trimmed. Unknown keys are skipped.
// When no clause applies the input slice is returned untouched, so callers
// can detect that no ordering happened.
func ApplyOrder[T any](items []T, fields map[string]func(a, b T) int, order string) []T {
	var clauses []orderClause[T]
	for _, part := range strings.Split(order, ",") {
		tokens := strings.Fields(part)
		if len(tokens) == 0 {
			continue
		}
		cmp, ok := fields[strings.ToLower(tokens[0])]
		if !ok {
			continue
		}
		desc := len(tokens) > 1 && strings.EqualFold(tokens[1], "desc")
		clauses = append(clauses, orderClause[T]{cmp: cmp, desc: desc})
	}
	if len(clauses) == 0 {
		return items
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		for _, cl := range clauses {
			c := cl.cmp(sorted[i], sorted[j])
			if c == 0 {
				continue
			}
			if cl.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	return sorted
}
