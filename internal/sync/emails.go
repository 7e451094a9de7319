package sync

import (
	"strings"

	"talentlms-sync/internal/providers/talentlms"
)

// EmailSet holds the normalized emails of existing TalentLMS accounts.
// Trimmed + lower-cased membership is the only matching rule.
type EmailSet map[string]struct{}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func NewEmailSet(users []talentlms.User) EmailSet {
	set := make(EmailSet, len(users))
	for _, u := range users {
		if e := NormalizeEmail(u.Email); e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}

func (s EmailSet) Contains(email string) bool {
	_, ok := s[NormalizeEmail(email)]
	return ok
}
