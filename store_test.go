package inkpost

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "posts.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPost(title string) BlogPost {
	return BlogPost{
		Title:    title,
		Subtitle: "S1",
		Date:     "June 03, 2024",
		Body:     "<p>hi</p>",
		Author:   "A1",
		ImgURL:   "https://x.test/i.png",
	}
}

func TestNewStoreIdempotentSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	if _, err := s.InsertPost(testPost("T1")); err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	s.Close()

	// Reopening must not recreate the table or lose rows.
	s, err = NewStore(path)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer s.Close()
	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("post count after reopen = %d, want 1", len(posts))
	}
}

func TestInsertAndGetPost(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertPost(testPost("T1"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if id == 0 {
		t.Fatal("InsertPost should assign a non-zero id")
	}

	got, err := s.GetPost(id)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Title != "T1" {
		t.Errorf("Title = %q, want %q", got.Title, "T1")
	}
	if got.Subtitle != "S1" {
		t.Errorf("Subtitle = %q, want %q", got.Subtitle, "S1")
	}
	if got.Author != "A1" {
		t.Errorf("Author = %q, want %q", got.Author, "A1")
	}
	if got.ImgURL != "https://x.test/i.png" {
		t.Errorf("ImgURL = %q, want %q", got.ImgURL, "https://x.test/i.png")
	}
	if got.Body != "<p>hi</p>" {
		t.Errorf("Body = %q, want %q", got.Body, "<p>hi</p>")
	}
	if got.Date == "" {
		t.Error("Date should not be empty")
	}
}

func TestInsertDuplicateTitle(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertPost(testPost("Same Title")); err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if _, err := s.InsertPost(testPost("Same Title")); !errors.Is(err, ErrDuplicateTitle) {
		t.Errorf("expected ErrDuplicateTitle, got %v", err)
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("post count = %d, want 1 (duplicate must not persist)", len(posts))
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetPost(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePost(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertPost(testPost("Original"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	updated := BlogPost{
		ID:       id,
		Title:    "Changed",
		Subtitle: "S2",
		Date:     "December 25, 2030", // must be ignored
		Body:     "<p>bye</p>",
		Author:   "A2",
		ImgURL:   "https://x.test/j.png",
	}
	if err := s.UpdatePost(updated); err != nil {
		t.Fatalf("UpdatePost failed: %v", err)
	}

	got, err := s.GetPost(id)
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Changed" || got.Subtitle != "S2" || got.Author != "A2" {
		t.Errorf("fields not updated: %+v", got)
	}
	if got.Date != "June 03, 2024" {
		t.Errorf("Date = %q, want creation date preserved", got.Date)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	s := newTestStore(t)

	p := testPost("Ghost")
	p.ID = 99
	if err := s.UpdatePost(p); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePostDuplicateTitle(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertPost(testPost("First")); err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	id, err := s.InsertPost(testPost("Second"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}

	p := testPost("First")
	p.ID = id
	if err := s.UpdatePost(p); !errors.Is(err, ErrDuplicateTitle) {
		t.Errorf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestDeletePost(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertPost(testPost("To Delete"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if err := s.DeletePost(id); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPost(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteNonexistentPost(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertPost(testPost("Keeper")); err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if err := s.DeletePost(12345); err != nil {
		t.Errorf("DeletePost on nonexistent should not error, got: %v", err)
	}
	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("post count = %d, want 1 (no-op delete must not change rows)", len(posts))
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, title := range []string{"One", "Two", "Three"} {
		if _, err := s.InsertPost(testPost(title)); err != nil {
			t.Fatalf("InsertPost failed: %v", err)
		}
	}

	posts, err := s.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("post count = %d, want 3", len(posts))
	}
	if posts[0].Title != "Three" || posts[2].Title != "One" {
		t.Errorf("posts not newest-first: %q, %q, %q", posts[0].Title, posts[1].Title, posts[2].Title)
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	s := newTestStore(t)

	first, err := s.InsertPost(testPost("First"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if err := s.DeletePost(first); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	second, err := s.InsertPost(testPost("Second"))
	if err != nil {
		t.Fatalf("InsertPost failed: %v", err)
	}
	if second <= first {
		t.Errorf("id %d reused or reordered after deleting id %d", second, first)
	}
}
