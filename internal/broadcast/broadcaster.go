// Package broadcast turns store mutations into whole-state snapshots for
// connected observers. Delivery is fire-and-forget: a slow observer loses
// its own messages and never holds up the store or other observers.
package broadcast

//go:generate mockgen -destination=mock/mock_sink.go -package=broadcastmock github.com/KirkDiggler/rpg-progression/internal/broadcast Sink

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Kind tells observers which snapshot a message carries
type Kind string

// Message kinds
const (
	KindProgression Kind = "progression"
	KindParty       Kind = "party"
	KindPartyLeft   Kind = "party_left"
)

// Message is one outbound payload for one observer
type Message struct {
	Kind        Kind                 `json:"kind"`
	Progression *ProgressionSnapshot `json:"progression,omitempty"`
	Party       *PartySnapshot       `json:"party,omitempty"`
	LeftParty   *uuid.UUID           `json:"left_party,omitempty"`
}

// Sink receives snapshots from the stores
type Sink interface {
	// SendProgression delivers a player's snapshot to that player
	SendProgression(snapshot ProgressionSnapshot)
	// SendParty delivers a party snapshot to every member
	SendParty(snapshot PartySnapshot)
	// SendPartyLeft tells a player they no longer belong to partyID
	SendPartyLeft(playerID, partyID uuid.UUID)
}

// DefaultBufferSize is the per-subscription queue length
const DefaultBufferSize = 16

// Config holds broadcaster settings
type Config struct {
	BufferSize int
}

// Broadcaster fans snapshots out to per-player subscriptions
type Broadcaster struct {
	bufferSize int

	mu     sync.RWMutex
	subs   map[uuid.UUID]map[*Subscription]struct{}
	closed bool

	dropped atomic.Uint64
}

// New creates a broadcaster. A nil config uses DefaultBufferSize.
func New(cfg *Config) (*Broadcaster, error) {
	size := DefaultBufferSize
	if cfg != nil {
		if cfg.BufferSize < 0 {
			return nil, errors.InvalidArgument("buffer size must not be negative")
		}
		if cfg.BufferSize > 0 {
			size = cfg.BufferSize
		}
	}

	return &Broadcaster{
		bufferSize: size,
		subs:       make(map[uuid.UUID]map[*Subscription]struct{}),
	}, nil
}

// Subscription is one observer's queue of messages for one player
type Subscription struct {
	PlayerID uuid.UUID

	ch    chan Message
	owner *Broadcaster
	once  sync.Once
}

// C returns the message channel. It is closed by Close.
func (s *Subscription) C() <-chan Message {
	return s.ch
}

// Close unsubscribes and closes the channel. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.owner.remove(s)
	})
}

// Subscribe registers an observer for playerID
func (b *Broadcaster) Subscribe(playerID uuid.UUID) *Subscription {
	sub := &Subscription{
		PlayerID: playerID,
		ch:       make(chan Message, b.bufferSize),
		owner:    b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		sub.once.Do(func() { close(sub.ch) })
		return sub
	}
	if b.subs[playerID] == nil {
		b.subs[playerID] = make(map[*Subscription]struct{})
	}
	b.subs[playerID][sub] = struct{}{}

	return sub
}

func (b *Broadcaster) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subs[sub.PlayerID], sub)
	if len(b.subs[sub.PlayerID]) == 0 {
		delete(b.subs, sub.PlayerID)
	}
	close(sub.ch)
}

// Close ends every subscription. Subscriptions made afterwards are closed
// immediately.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for playerID, subs := range b.subs {
		for sub := range subs {
			sub.once.Do(func() { close(sub.ch) })
		}
		delete(b.subs, playerID)
	}
}

// SubscriberCount returns the number of open subscriptions for playerID
func (b *Broadcaster) SubscriberCount(playerID uuid.UUID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[playerID])
}

// Dropped returns how many messages were discarded because a queue was full
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}

// SendProgression implements Sink
func (b *Broadcaster) SendProgression(snapshot ProgressionSnapshot) {
	b.deliver(snapshot.PlayerID, Message{Kind: KindProgression, Progression: &snapshot})
}

// SendParty implements Sink
func (b *Broadcaster) SendParty(snapshot PartySnapshot) {
	msg := Message{Kind: KindParty, Party: &snapshot}
	for _, member := range snapshot.Members {
		b.deliver(member, msg)
	}
}

// SendPartyLeft implements Sink
func (b *Broadcaster) SendPartyLeft(playerID, partyID uuid.UUID) {
	b.deliver(playerID, Message{Kind: KindPartyLeft, LeftParty: &partyID})
}

func (b *Broadcaster) deliver(playerID uuid.UUID, msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs[playerID] {
		select {
		case sub.ch <- msg:
		default:
			b.dropped.Add(1)
			slog.Debug("dropping snapshot for slow observer",
				"player_id", playerID.String(),
				"kind", string(msg.Kind))
		}
	}
}
