package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/playform/playform/internal/storage"
	"github.com/playform/playform/internal/thumb"
)

// sample is a built-in game seeded on first run.
type sample struct {
	definition  string
	title       string
	description string
	creator     string
}

var samples = []sample{
	{"snake", "Snake", "Classic arrow-key snake game. Eat pellets, avoid yourself!", "ArcadeLab"},
	{"pong", "Pong", "Two paddles and a ball. Up/Down arrows vs. W/S keys.", "RetroCoder"},
	{"breakout", "Breakout", "Bounce the ball to clear bricks. Move with left/right arrows.", "BrickSmith"},
}

// SeedSampleData populates the store with demo creators, published
// sample games and starter comments. Guarded by the initialized flag:
// it runs at most once per store and is a no-op afterwards. Likes are
// granted through the regular toggle path so the like invariant holds
// for seeded data too.
func (s *Store) SeedSampleData() error {
	done, err := s.kv.Has(keyInitialized)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	now := time.Now().UTC()
	var gameIDs []string

	err = s.kv.Update(func(tx *storage.Tx) error {
		users := []User{
			{Username: "ArcadeLab", Password: "demo", Subscriptions: []string{"RetroCoder"}},
			{Username: "RetroCoder", Password: "demo"},
			{Username: "BrickSmith", Password: "demo", Subscriptions: []string{"ArcadeLab"}},
		}
		if err := putList(tx, keyUsers, users); err != nil {
			return err
		}

		var games []Game
		for _, sm := range samples {
			g := Game{
				ID:          uuid.NewString(),
				Title:       sm.title,
				Description: sm.description,
				Creator:     sm.creator,
				Definition:  sm.definition,
				Published:   true,
				CreatedAt:   now,
				Thumbnail:   thumb.Placeholder(sm.title),
			}
			games = append(games, g)
			gameIDs = append(gameIDs, g.ID)

			comments := []Comment{
				{Author: "DemoFan", Text: "Love this!", CreatedAt: now},
				{Author: "PlayerTwo", Text: "So nostalgic", CreatedAt: now},
			}
			if err := putList(tx, commentsKey(g.ID), comments); err != nil {
				return err
			}
		}
		if err := putList(tx, keyGames, games); err != nil {
			return err
		}

		return tx.Put(keyInitialized, []byte("yes"))
	})
	if err != nil {
		return err
	}

	// Cross-likes between the demo creators, through the normal path.
	likes := map[string][]int{
		"ArcadeLab":  {1, 2},
		"RetroCoder": {0},
		"BrickSmith": {0, 1},
	}
	for username, indexes := range likes {
		for _, i := range indexes {
			if _, err := s.ToggleLike(username, gameIDs[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
