package domain

import "strings"

// Requester identifies who books. Identity is the (Name, Org) pair.
// IsAdmin is granted by the bot front end to group owners and administrators.
type Requester struct {
	Name    string
	Org     string
	IsAdmin bool
}

// NewRequester trims surrounding whitespace
func NewRequester(name, org string) Requester {
	return Requester{
		Name: strings.TrimSpace(name),
		Org:  strings.TrimSpace(org),
	}
}

// IsValid returns true if both name and org have the minimal length
func (r Requester) IsValid() bool {
	return len([]rune(r.Name)) >= MinRequesterFieldLength && len([]rune(r.Org)) >= MinRequesterFieldLength
}
