package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// fakeFlags returns n records with distinct country names.
func fakeFlags(n int) []entities.FlagRecord {
	out := make([]entities.FlagRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.FlagRecord{
			CountryName:  fmt.Sprintf("%s %d", gofakeit.Country(), i),
			FlagImageRef: gofakeit.URL(),
		})
	}
	return out
}

type stubProvider struct {
	records []entities.FlagRecord
	err     error
	release chan struct{}
	calls   int
}

func (p *stubProvider) LoadFlags(ctx context.Context) ([]entities.FlagRecord, error) {
	p.calls++
	if p.release != nil {
		select {
		case <-p.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return p.records, p.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []entities.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, ev entities.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) kinds() []entities.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]entities.NotificationKind, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (n *recordingNotifier) last() entities.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}

func randWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
