package service

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Title string
	Price float64
}

var rowFields = map[string]func(a, b row) int{
	"title": func(a, b row) int { return strings.Compare(a.Title, b.Title) },
	"price": func(a, b row) int { return cmp.Compare(a.Price, b.Price) },
}

func sampleRows() []row {
	return []row{
		{Title: "banana", Price: 3},
		{Title: "apple", Price: 5},
		{Title: "cherry", Price: 5},
		{Title: "date", Price: 1},
	}
}

func TestApplyOrderEmptySpecReturnsSameSlice(t *testing.T) {
	in := sampleRows()
	for _, spec := range []string{"", "   ", "nosuchfield", "bogus desc, other asc"} {
		out := ApplyOrder(in, rowFields, spec)
		require.NotEmpty(t, out)
		assert.Same(t, &in[0], &out[0], "spec=%q should return the input slice untouched", spec)
	}
}

func TestApplyOrderMultiKey(t *testing.T) {
	out := ApplyOrder(sampleRows(), rowFields, "price desc,title asc")
	titles := make([]string, 0, len(out))
	for _, r := range out {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"apple", "cherry", "banana", "date"}, titles)
}

func TestApplyOrderCaseInsensitive(t *testing.T) {
	a := ApplyOrder(sampleRows(), rowFields, "PRICE DESC , Title ASC")
	b := ApplyOrder(sampleRows(), rowFields, "price desc,title asc")
	assert.Equal(t, b, a)
}

func TestApplyOrderSkipsUnknownClauses(t *testing.T) {
	out := ApplyOrder(sampleRows(), rowFields, "bogus desc,title asc")
	assert.Equal(t, "apple", out[0].Title)
	assert.Equal(t, "date", out[len(out)-1].Title)
}

func TestApplyOrderDefaultsToAscending(t *testing.T) {
	out := ApplyOrder(sampleRows(), rowFields, "price")
	assert.Equal(t, float64(1), out[0].Price)
}

func TestApplyOrderDoesNotMutateInput(t *testing.T) {
	in := sampleRows()
	_ = ApplyOrder(in, rowFields, "title")
	assert.Equal(t, "banana", in[0].Title)
}
