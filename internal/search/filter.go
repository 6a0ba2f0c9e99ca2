package search

import (
	"strings"

	"github.com/five82/usersearch/internal/directory"
)

// Filter returns the users matching query in their original order. An empty
// query yields no results rather than every user.
func Filter(query string, users []directory.User) []directory.User {
	if query == "" {
		return nil
	}
	matches := make([]directory.User, 0)
	for _, u := range users {
		if Matches(u, query) {
			matches = append(matches, u)
		}
	}
	return matches
}

// Matches reports whether any searchable field of u contains query.
func Matches(u directory.User, query string) bool {
	if query == "" {
		return false
	}
	return strings.Contains(u.ID.String(), query) ||
		ContainsFold(u.Name, query) ||
		MatchesItems(u, query) ||
		ContainsFold(u.Address, query) ||
		strings.Contains(u.Pincode.String(), query)
}

// MatchesItems reports whether any of u's items contains query, ignoring case.
func MatchesItems(u directory.User, query string) bool {
	if query == "" {
		return false
	}
	for _, item := range u.Items {
		if ContainsFold(item, query) {
			return true
		}
	}
	return false
}
