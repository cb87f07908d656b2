package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/playform/playform/internal/storage"
)

// Store provides the catalog operations over a key-value store.
type Store struct {
	kv *storage.KV
}

// New creates a catalog store over the given KV store.
func New(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// reader is the shared read surface of *storage.KV and *storage.Tx.
type reader interface {
	Get(key string) ([]byte, bool, error)
}

func getList[T any](r reader, key string) ([]T, error) {
	data, ok, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("catalog: corrupt %s record: %w", key, err)
	}
	return list, nil
}

func putList[T any](tx *storage.Tx, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("catalog: cannot encode %s record: %w", key, err)
	}
	return tx.Put(key, data)
}

// CreateUser registers a new account and returns it. The username is
// unique case-insensitively; a clash fails with ErrDuplicateUsername.
func (s *Store) CreateUser(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user := User{Username: username, Password: password}

	err := s.kv.Update(func(tx *storage.Tx) error {
		users, err := getList[User](tx, keyUsers)
		if err != nil {
			return err
		}
		for _, u := range users {
			if strings.EqualFold(u.Username, username) {
				return ErrDuplicateUsername
			}
		}
		return putList(tx, keyUsers, append(users, user))
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate looks up an account by case-insensitive username and
// exact password. Fails with ErrInvalidCredentials on any mismatch.
func (s *Store) Authenticate(username, password string) (*User, error) {
	users, err := getList[User](s.kv, keyUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) && users[i].Password == password {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// SaveGameParams describes a game to save or publish.
type SaveGameParams struct {
	Title       string
	Description string
	Creator     string
	Definition  string // registered template name
	Thumbnail   []byte
	Publish     bool
}

// SaveGame appends a new game record and its empty comment thread,
// returning the fresh game id. Always succeeds under normal operation;
// blank title and description get the studio defaults.
func (s *Store) SaveGame(p SaveGameParams) (string, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "Untitled Game"
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = "Turn your ideas into play"
	}

	game := Game{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Creator:     p.Creator,
		Definition:  p.Definition,
		Published:   p.Publish,
		CreatedAt:   time.Now().UTC(),
		Thumbnail:   p.Thumbnail,
	}

	err := s.kv.Update(func(tx *storage.Tx) error {
		games, err := getList[Game](tx, keyGames)
		if err != nil {
			return err
		}
		if err := putList(tx, keyGames, append(games, game)); err != nil {
			return err
		}
		return putList(tx, commentsKey(game.ID), []Comment{})
	})
	if err != nil {
		return "", err
	}
	return game.ID, nil
}

// PublishGame flips a draft to published. There is no reverse
// operation: publishing is one-way. Fails with ErrNotFound for an
// unknown game id.
func (s *Store) PublishGame(gameID string) error {
	return s.kv.Update(func(tx *storage.Tx) error {
		games, err := getList[Game](tx, keyGames)
		if err != nil {
			return err
		}
		for i := range games {
			if games[i].ID == gameID {
				games[i].Published = true
				return putList(tx, keyGames, games)
			}
		}
		return fmt.Errorf("publish game %s: %w", gameID, ErrNotFound)
	})
}

// ToggleLike flips the user's like for a game and returns the new like
// count. Both the user's liked set and the game's count are updated in
// one atomic operation, so the count always equals the number of
// distinct likers. The count never drops below zero.
func (s *Store) ToggleLike(username, gameID string) (int, error) {
	var newCount int

	err := s.kv.Update(func(tx *storage.Tx) error {
		games, err := getList[Game](tx, keyGames)
		if err != nil {
			return err
		}
		gi := -1
		for i := range games {
			if games[i].ID == gameID {
				gi = i
				break
			}
		}
		if gi < 0 {
			return fmt.Errorf("like game %s: %w", gameID, ErrNotFound)
		}

		users, err := getList[User](tx, keyUsers)
		if err != nil {
			return err
		}
		ui := -1
		for i := range users {
			if strings.EqualFold(users[i].Username, username) {
				ui = i
				break
			}
		}
		if ui < 0 {
			return fmt.Errorf("like by user %s: %w", username, ErrNotFound)
		}

		if users[ui].HasLiked(gameID) {
			liked := users[ui].LikedGameIDs[:0]
			for _, id := range users[ui].LikedGameIDs {
				if id != gameID {
					liked = append(liked, id)
				}
			}
			users[ui].LikedGameIDs = liked
			games[gi].LikeCount = maxInt(0, games[gi].LikeCount-1)
		} else {
			users[ui].LikedGameIDs = append(users[ui].LikedGameIDs, gameID)
			games[gi].LikeCount++
		}
		newCount = games[gi].LikeCount

		if err := putList(tx, keyUsers, users); err != nil {
			return err
		}
		return putList(tx, keyGames, games)
	})
	if err != nil {
		return 0, err
	}
	return newCount, nil
}

// ToggleSubscription flips the subscriber's membership for a creator
// and returns whether they are now subscribed. The creator is not
// validated: subscribing to a username that does not exist (yet) is
// permitted.
func (s *Store) ToggleSubscription(subscriber, creator string) (bool, error) {
	var subscribed bool

	err := s.kv.Update(func(tx *storage.Tx) error {
		users, err := getList[User](tx, keyUsers)
		if err != nil {
			return err
		}
		ui := -1
		for i := range users {
			if strings.EqualFold(users[i].Username, subscriber) {
				ui = i
				break
			}
		}
		if ui < 0 {
			return fmt.Errorf("subscription by user %s: %w", subscriber, ErrNotFound)
		}

		if users[ui].IsSubscribed(creator) {
			subs := users[ui].Subscriptions[:0]
			for _, c := range users[ui].Subscriptions {
				if c != creator {
					subs = append(subs, c)
				}
			}
			users[ui].Subscriptions = subs
			subscribed = false
		} else {
			users[ui].Subscriptions = append(users[ui].Subscriptions, creator)
			subscribed = true
		}

		return putList(tx, keyUsers, users)
	})
	if err != nil {
		return false, err
	}
	return subscribed, nil
}

// AppendComment adds a comment to a game's thread. Fails with
// ErrEmptyComment when the text is blank after trimming and with
// ErrNotFound for an unknown game id. Comments are append-only.
func (s *Store) AppendComment(gameID, author, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	comment := Comment{Author: author, Text: text, CreatedAt: time.Now().UTC()}

	err := s.kv.Update(func(tx *storage.Tx) error {
		games, err := getList[Game](tx, keyGames)
		if err != nil {
			return err
		}
		found := false
		for i := range games {
			if games[i].ID == gameID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("comment on game %s: %w", gameID, ErrNotFound)
		}

		comments, err := getList[Comment](tx, commentsKey(gameID))
		if err != nil {
			return err
		}
		return putList(tx, commentsKey(gameID), append(comments, comment))
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// CurrentUser returns the signed-in username, or "" when signed out.
func (s *Store) CurrentUser() (string, error) {
	data, ok, err := s.kv.Get(keyCurrentUser)
	if err != nil || !ok {
		return "", err
	}
	return string(data), nil
}

// SetCurrentUser records the signed-in username.
func (s *Store) SetCurrentUser(username string) error {
	return s.kv.Put(keyCurrentUser, []byte(username))
}

// ClearCurrentUser signs the current user out.
func (s *Store) ClearCurrentUser() error {
	return s.kv.Delete(keyCurrentUser)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
