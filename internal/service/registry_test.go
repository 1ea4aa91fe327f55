package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardRegistry_OpenSetsUpOnce(t *testing.T) {
	repo := &fakeRepository{activities: sampleActivities()}
	registry := NewBoardRegistry(repo, clockwork.NewFakeClock(), testLogger(), time.Hour)

	var wg sync.WaitGroup
	pages := make([]*Page, 8)
	for i := range pages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pages[i] = registry.Open(context.Background(), "session-a")
		}(i)
	}
	wg.Wait()

	for _, p := range pages {
		require.NotNil(t, p.Board)
		assert.Same(t, pages[0], p)
	}
	assert.Equal(t, 1, repo.ListCalls(), "initial fetch runs once per page")
	assert.Contains(t, string(pages[0].Document.Snapshot().ListHTML), "Chess Club")
}

func TestBoardRegistry_SeparatePagesPerSession(t *testing.T) {
	repo := &fakeRepository{activities: sampleActivities()}
	registry := NewBoardRegistry(repo, clockwork.NewFakeClock(), testLogger(), time.Hour)

	a := registry.Open(context.Background(), "session-a")
	b := registry.Open(context.Background(), "session-b")

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, registry.Len())

	a.Document.Fill("a@m.edu", "Chess Club")
	assert.Empty(t, b.Document.Snapshot().Email)
}

func TestBoardRegistry_EvictsIdlePages(t *testing.T) {
	repo := &fakeRepository{activities: sampleActivities()}
	clock := clockwork.NewFakeClock()
	registry := NewBoardRegistry(repo, clock, testLogger(), time.Hour)

	first := registry.Open(context.Background(), "session-a")
	clock.Advance(30 * time.Minute)
	registry.Open(context.Background(), "session-b")

	clock.Advance(45 * time.Minute)
	again := registry.Open(context.Background(), "session-b")
	assert.Equal(t, 1, registry.Len(), "session-a idle for 75m is evicted")

	reopened := registry.Open(context.Background(), "session-a")
	assert.NotSame(t, first, reopened)
	assert.NotNil(t, again.Board)
	assert.Equal(t, 3, repo.ListCalls())
}
