package catalog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/playform/playform/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return New(kv)
}

func saveTestGame(t *testing.T, s *Store, title, creator string, publish bool) string {
	t.Helper()
	id, err := s.SaveGame(SaveGameParams{
		Title:      title,
		Creator:    creator,
		Definition: "snake",
		Publish:    publish,
	})
	if err != nil {
		t.Fatalf("SaveGame(%s) failed: %v", title, err)
	}
	return id
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CreateUser("Ann", "secret")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if user.Username != "Ann" {
		t.Errorf("Username = %q, expected Ann", user.Username)
	}

	// Case-insensitive username, exact password
	if _, err := s.Authenticate("ann", "secret"); err != nil {
		t.Errorf("Authenticate(ann) failed: %v", err)
	}
	if _, err := s.Authenticate("Ann", "SECRET"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate with wrong password = %v, expected ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate("Bob", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate(unknown) = %v, expected ErrInvalidCredentials", err)
	}
}

func TestCreateUserDuplicateCaseInsensitive(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateUser("Ann", "pw"); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if _, err := s.CreateUser("ann", "other"); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("duplicate CreateUser = %v, expected ErrDuplicateUsername", err)
	}
}

func TestCreateUserMissingCredentials(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateUser("", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("empty username = %v, expected ErrMissingCredentials", err)
	}
	if _, err := s.CreateUser("ann", "   "); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("blank password = %v, expected ErrMissingCredentials", err)
	}
}

func TestSaveGameDefaults(t *testing.T) {
	s := newTestStore(t)

	id, err := s.SaveGame(SaveGameParams{Creator: "ann", Definition: "pong"})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	g, err := s.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if g.Title != "Untitled Game" {
		t.Errorf("Title = %q, expected the default", g.Title)
	}
	if g.Description != "Turn your ideas into play" {
		t.Errorf("Description = %q, expected the default", g.Description)
	}
	if g.Published {
		t.Error("game published without Publish")
	}
	if g.Definition != "pong" {
		t.Errorf("Definition = %q, expected pong", g.Definition)
	}

	comments, err := s.CommentsFor(id)
	if err != nil {
		t.Fatalf("CommentsFor() failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("new game has %d comments, expected 0", len(comments))
	}
}

func TestSaveGameUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	a := saveTestGame(t, s, "One", "ann", true)
	b := saveTestGame(t, s, "Two", "ann", true)
	if a == b {
		t.Error("two saved games share an id")
	}
}

func TestPublishGameIsOneWay(t *testing.T) {
	s := newTestStore(t)
	id := saveTestGame(t, s, "Draft", "ann", false)

	published, _ := s.ListPublished()
	if len(published) != 0 {
		t.Fatalf("draft visible in ListPublished: %d games", len(published))
	}

	if err := s.PublishGame(id); err != nil {
		t.Fatalf("PublishGame() failed: %v", err)
	}
	published, _ = s.ListPublished()
	if len(published) != 1 {
		t.Errorf("ListPublished() has %d games after publish, expected 1", len(published))
	}

	// Publishing again is harmless
	if err := s.PublishGame(id); err != nil {
		t.Errorf("second PublishGame() failed: %v", err)
	}

	if err := s.PublishGame("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("PublishGame(unknown) = %v, expected ErrNotFound", err)
	}
}

func TestToggleLike(t *testing.T) {
	s := newTestStore(t)
	s.CreateUser("ann", "pw")
	s.CreateUser("bob", "pw")
	id := saveTestGame(t, s, "Likeable", "ann", true)

	count, err := s.ToggleLike("ann", id)
	if err != nil {
		t.Fatalf("ToggleLike() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d after first like, expected 1", count)
	}

	count, _ = s.ToggleLike("bob", id)
	if count != 2 {
		t.Errorf("count = %d after second liker, expected 2", count)
	}

	// Toggle off
	count, _ = s.ToggleLike("ann", id)
	if count != 1 {
		t.Errorf("count = %d after unlike, expected 1", count)
	}

	user, _ := s.UserByName("ann")
	if user.HasLiked(id) {
		t.Error("user's liked set still contains the game after unlike")
	}
	user, _ = s.UserByName("bob")
	if !user.HasLiked(id) {
		t.Error("other user's like was lost")
	}

	g, _ := s.GameByID(id)
	if g.LikeCount != 1 {
		t.Errorf("stored LikeCount = %d, expected 1", g.LikeCount)
	}
}

func TestToggleLikeErrors(t *testing.T) {
	s := newTestStore(t)
	s.CreateUser("ann", "pw")
	id := saveTestGame(t, s, "G", "ann", true)

	if _, err := s.ToggleLike("ann", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleLike(unknown game) = %v, expected ErrNotFound", err)
	}
	if _, err := s.ToggleLike("ghost", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleLike(unknown user) = %v, expected ErrNotFound", err)
	}

	// Failed toggles leave state untouched
	g, _ := s.GameByID(id)
	if g.LikeCount != 0 {
		t.Errorf("LikeCount = %d after failed toggles, expected 0", g.LikeCount)
	}
}

func TestToggleSubscription(t *testing.T) {
	s := newTestStore(t)
	s.CreateUser("ann", "pw")

	on, err := s.ToggleSubscription("ann", "bob")
	if err != nil {
		t.Fatalf("ToggleSubscription() failed: %v", err)
	}
	if !on {
		t.Error("first toggle should subscribe")
	}

	on, _ = s.ToggleSubscription("ann", "bob")
	if on {
		t.Error("second toggle should unsubscribe")
	}

	// Unknown creators are allowed; unknown subscribers are not
	if _, err := s.ToggleSubscription("ghost", "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ToggleSubscription(unknown subscriber) = %v, expected ErrNotFound", err)
	}
}

func TestAppendComment(t *testing.T) {
	s := newTestStore(t)
	id := saveTestGame(t, s, "G", "ann", true)

	if _, err := s.AppendComment(id, "ann", "   "); !errors.Is(err, ErrEmptyComment) {
		t.Errorf("blank comment = %v, expected ErrEmptyComment", err)
	}
	if _, err := s.AppendComment("missing", "ann", "hi"); !errors.Is(err, ErrNotFound) {
		t.Errorf("comment on unknown game = %v, expected ErrNotFound", err)
	}

	if _, err := s.AppendComment(id, "ann", "first"); err != nil {
		t.Fatalf("AppendComment() failed: %v", err)
	}
	if _, err := s.AppendComment(id, "bob", "second"); err != nil {
		t.Fatalf("AppendComment() failed: %v", err)
	}

	comments, err := s.CommentsFor(id)
	if err != nil {
		t.Fatalf("CommentsFor() failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, expected 2", len(comments))
	}
	// Newest first
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Errorf("comments out of order: %q, %q", comments[0].Text, comments[1].Text)
	}
}

func TestCurrentUserSession(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser() failed: %v", err)
	}
	if user != "" {
		t.Errorf("CurrentUser() = %q on a fresh store, expected empty", user)
	}

	if err := s.SetCurrentUser("ann"); err != nil {
		t.Fatalf("SetCurrentUser() failed: %v", err)
	}
	user, _ = s.CurrentUser()
	if user != "ann" {
		t.Errorf("CurrentUser() = %q, expected ann", user)
	}

	if err := s.ClearCurrentUser(); err != nil {
		t.Fatalf("ClearCurrentUser() failed: %v", err)
	}
	user, _ = s.CurrentUser()
	if user != "" {
		t.Errorf("CurrentUser() = %q after clear, expected empty", user)
	}
}
