// Package catalog is the persisted collection of user accounts, games
// and comment threads, layered over the key-value store. Every
// operation is a single atomic read-modify-write: a failed operation
// leaves stored state unchanged.
package catalog

import (
	"errors"
	"time"
)

// Persisted record layout (logical keys in the KV store):
//
//	users            ordered list of User records
//	currentUser      single username, absent when signed out
//	games            ordered list of Game records
//	comments:<id>    ordered list of Comment records for one game
//	initialized      presence flag guarding one-time sample seeding
const (
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
	keyGames       = "games"
	keyInitialized = "initialized"

	commentsPrefix = "comments:"
)

func commentsKey(gameID string) string {
	return commentsPrefix + gameID
}

// Error taxonomy. Returned to the caller for user-facing messages,
// never silently swallowed.
var (
	ErrDuplicateUsername  = errors.New("catalog: username already exists")
	ErrInvalidCredentials = errors.New("catalog: invalid credentials")
	ErrNotFound           = errors.New("catalog: not found")
	ErrEmptyComment       = errors.New("catalog: comment text is empty")
	ErrMissingCredentials = errors.New("catalog: username and password required")
)

// User is an account record. Usernames are unique case-insensitively
// and never deleted.
type User struct {
	Username      string   `json:"username"`
	Password      string   `json:"password"` // stored as-is; hardening is out of scope
	LikedGameIDs  []string `json:"likedGames"`
	Subscriptions []string `json:"subscriptions"`
}

// HasLiked reports whether the user has liked the given game.
func (u *User) HasLiked(gameID string) bool {
	for _, id := range u.LikedGameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

// IsSubscribed reports whether the user subscribes to the creator.
func (u *User) IsSubscribed(creator string) bool {
	for _, s := range u.Subscriptions {
		if s == creator {
			return true
		}
	}
	return false
}

// Game is a catalog record. Definition names a registered game
// template; the record owns that reference exclusively. LikeCount is
// mutated only through ToggleLike and always equals the number of
// distinct users whose liked set contains the game.
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Creator     string    `json:"creator"`
	Definition  string    `json:"definition"`
	LikeCount   int       `json:"likes"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	Thumbnail   []byte    `json:"thumbnail"`
}

// Comment is one entry of a game's append-only comment thread.
type Comment struct {
	Author    string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"ts"`
}
