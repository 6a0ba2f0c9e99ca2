package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/usersearch/internal/directory"
)

var testUsers = []directory.User{
	{ID: "1", Name: "Alice", Address: "1 Elm", Items: []string{"pen"}, Pincode: "11111"},
	{ID: "2", Name: "Bob", Address: "2 Oak", Items: []string{"pencil"}, Pincode: "22222"},
	{ID: "123-s2-546", Name: "Carol Jacobs", Address: "9th Main, ABC Apartment", Items: []string{"Bucket", "bottle"}, Pincode: "5xx012"},
	{ID: "4", Name: "Dan"},
}

func names(users []directory.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"items match exact and contained", "pen", []string{"Alice", "Bob"}},
		{"name case-insensitive", "aLiCe", []string{"Alice"}},
		{"address case-insensitive", "abc apart", []string{"Carol Jacobs"}},
		{"item case-insensitive", "bucket", []string{"Carol Jacobs"}},
		{"id substring", "s2", []string{"Carol Jacobs"}},
		{"id digit", "2", []string{"Bob", "Carol Jacobs"}},
		{"pincode substring", "111", []string{"Alice"}},
		{"pincode is case-sensitive", "5XX", nil},
		{"no match", "zebra", []string{}},
		{"pattern characters are literal", "(.*)", []string{}},
		{"missing fields never match", "Dan", []string{"Dan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.query, testUsers)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_EmptyQueryReturnsNothing(t *testing.T) {
	assert.Empty(t, Filter("", testUsers))
	assert.Empty(t, Filter("", nil))
}

func TestFilter_PreservesSourceOrderAndSoundness(t *testing.T) {
	for _, query := range []string{"a", "o", "1", "2", "e", "B", " "} {
		got := Filter(query, testUsers)

		// Every returned user matches, and every matching user is returned in order.
		var want []directory.User
		for _, u := range testUsers {
			if Matches(u, query) {
				want = append(want, u)
			}
		}
		assert.Equal(t, names(want), names(got), "query %q", query)
	}
}

func TestMatchesItems(t *testing.T) {
	assert.True(t, MatchesItems(testUsers[1], "PENC"))
	assert.False(t, MatchesItems(testUsers[1], "Bob"))
	assert.False(t, MatchesItems(testUsers[3], "x"))
	assert.False(t, MatchesItems(testUsers[0], ""))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Hello World", "o w"))
	assert.True(t, ContainsFold("ÉCOLE", "école"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("abc", "abcd"))
	assert.False(t, ContainsFold("a+b", "a.b"))
}

func TestContainsFold_InvalidUTF8IsLiteral(t *testing.T) {
	assert.False(t, ContainsFold("a\xffb", "\xfe"))
	assert.False(t, ContainsFold("a\xffb", "\uFFFD"))
	assert.True(t, ContainsFold("a\xffb", "\xff"))
	assert.True(t, ContainsFold("A\xffB", "a\xffb"))
}
