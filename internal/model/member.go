package model

import "github.com/google/uuid"

// Member is the local cache row for a platform member, refreshed from the
// member service on first contact.
type Member struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Nickname  string    `db:"nickname"`
	AvatarURL string    `db:"avatar_url"`
}

// MemberInfo is what the member service returns for a lookup.
type MemberInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
