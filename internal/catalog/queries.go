package catalog

import "strings"

// Query operations: read-only, pure functions over the current stored
// state. Result slices preserve catalog insertion order unless a query
// documents otherwise.

// Games returns every game record, drafts included, in insertion order.
func (s *Store) Games() ([]Game, error) {
	return getList[Game](s.kv, keyGames)
}

// ListPublished returns published games in insertion order.
func (s *Store) ListPublished() ([]Game, error) {
	games, err := s.Games()
	if err != nil {
		return nil, err
	}
	published := make([]Game, 0, len(games))
	for _, g := range games {
		if g.Published {
			published = append(published, g)
		}
	}
	return published, nil
}

// GameByID looks up a single game. Fails with ErrNotFound.
func (s *Store) GameByID(gameID string) (*Game, error) {
	games, err := s.Games()
	if err != nil {
		return nil, err
	}
	for i := range games {
		if games[i].ID == gameID {
			g := games[i]
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

// UserByName looks up an account by case-insensitive username.
// Returns (nil, nil) when the user does not exist; callers treat that
// as the anonymous case.
func (s *Store) UserByName(username string) (*User, error) {
	users, err := getList[User](s.kv, keyUsers)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// SearchByText returns published games whose title, description or
// creator name contains the query, case-insensitively. Any field may
// match; insertion order is preserved. limit <= 0 means no limit.
func (s *Store) SearchByText(query string, limit int) ([]Game, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}

	var results []Game
	for _, g := range published {
		if strings.Contains(strings.ToLower(g.Title), term) ||
			strings.Contains(strings.ToLower(g.Description), term) ||
			strings.Contains(strings.ToLower(g.Creator), term) {
			results = append(results, g)
			if limit > 0 && len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

// GamesByCreator returns the creator's published games in insertion
// order. The creator name matches case-insensitively.
func (s *Store) GamesByCreator(username string) ([]Game, error) {
	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}
	var results []Game
	for _, g := range published {
		if strings.EqualFold(g.Creator, username) {
			results = append(results, g)
		}
	}
	return results, nil
}

// CommentsFor returns a game's comments newest-first for display.
func (s *Store) CommentsFor(gameID string) ([]Comment, error) {
	comments, err := getList[Comment](s.kv, commentsKey(gameID))
	if err != nil {
		return nil, err
	}
	reversed := make([]Comment, len(comments))
	for i, c := range comments {
		reversed[len(comments)-1-i] = c
	}
	return reversed, nil
}

// LikedGames returns the published games the user has liked, in
// catalog insertion order. Unknown users get an empty result.
func (s *Store) LikedGames(username string) ([]Game, error) {
	user, err := s.UserByName(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}
	var results []Game
	for _, g := range published {
		if user.HasLiked(g.ID) {
			results = append(results, g)
		}
	}
	return results, nil
}

// SubscriptionFeed returns published games from creators the user
// subscribes to, in catalog insertion order.
func (s *Store) SubscriptionFeed(username string) ([]Game, error) {
	user, err := s.UserByName(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	published, err := s.ListPublished()
	if err != nil {
		return nil, err
	}
	var results []Game
	for _, g := range published {
		if user.IsSubscribed(g.Creator) {
			results = append(results, g)
		}
	}
	return results, nil
}
