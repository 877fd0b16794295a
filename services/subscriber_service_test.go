package services

import (
	"context"
	"errors"
	"testing"

	"atelier-cms/repositories"
	"atelier-cms/schema"
	"atelier-cms/store"
)

func TestSubscribeNormalizesAndStores(t *testing.T) {
	s := store.NewMemoryStore().Unique("subscribers", "email")
	svc := NewSubscriberService(repositories.NewSubscriberRepository(s))

	d, err := svc.Subscribe(context.Background(), schema.SubscriberInput{Email: " Reader@Example.com "})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if d.Email != "reader@example.com" {
		t.Fatalf("expected normalized email, got %q", d.Email)
	}
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	s := store.NewMemoryStore().Unique("subscribers", "email")
	svc := NewSubscriberService(repositories.NewSubscriberRepository(s))
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, schema.SubscriberInput{Email: "reader@example.com"}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	// Case and whitespace variants normalize to the same address.
	_, err := svc.Subscribe(ctx, schema.SubscriberInput{Email: "READER@example.com"})
	if !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
