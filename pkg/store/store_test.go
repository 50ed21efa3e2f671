package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	doc := NewDocument("logo", []byte("width = 10.0\nheight = 10.0\n"))

	// Get before Put
	if _, err := s.Get(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get before Put: error = %v, want ErrNotFound", err)
	}

	// Put then Get
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "logo" {
		t.Errorf("Name = %q, want %q", got.Name, "logo")
	}
	if string(got.Scene) != string(doc.Scene) {
		t.Errorf("Scene = %q, want %q", got.Scene, doc.Scene)
	}

	// Returned document is a copy
	got.Name = "mutated"
	again, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if again.Name != "logo" {
		t.Error("mutating a returned document should not affect the store")
	}

	// Delete then Get
	if err := s.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, doc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete: error = %v, want ErrNotFound", err)
	}

	// Delete of absent document
	if err := s.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete of absent: error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	doc := NewDocument("first", []byte("a"))
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	doc.Name = "second"
	doc.Scene = []byte("b")
	doc.UpdatedAt = time.Now().UTC()
	if err := s.Put(ctx, doc); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := s.Get(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "second" || string(got.Scene) != "b" {
		t.Errorf("overwrite not applied: %+v", got)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	base := time.Now().UTC()
	for i, name := range []string{"oldest", "middle", "newest"} {
		doc := NewDocument(name, nil)
		doc.UpdatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.Put(ctx, doc); err != nil {
			t.Fatalf("Put error: %v", err)
		}
	}

	docs, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("List returned %d documents, want 3", len(docs))
	}
	if docs[0].Name != "newest" || docs[2].Name != "oldest" {
		t.Errorf("List order wrong: %s, %s, %s", docs[0].Name, docs[1].Name, docs[2].Name)
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List with limit returned %d documents, want 2", len(limited))
	}
	if limited[0].Name != "newest" {
		t.Errorf("limited List should keep newest first, got %s", limited[0].Name)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b {
		t.Error("NewID should not repeat")
	}
	if len(a) != 36 {
		t.Errorf("NewID length = %d, want 36 (UUID string form)", len(a))
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("logo", []byte("x"))
	if doc.ID == "" {
		t.Error("NewDocument should assign an ID")
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Error("NewDocument should stamp timestamps")
	}
	if !doc.CreatedAt.Equal(doc.UpdatedAt) {
		t.Error("fresh document should have equal created/updated times")
	}
}
