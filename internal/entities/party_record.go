package entities

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// MaxPasswordLength is the longest party password, in bytes, bcrypt accepts
const MaxPasswordLength = 72

// Visibility controls whether a party shows up in public listings
type Visibility string

// Party visibilities
const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// PartyRecord is a party's membership and shared progress. Members are kept
// in join order; the first member is the oldest.
type PartyRecord struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	// PasswordHash is the bcrypt hash of a private party's password
	PasswordHash string           `json:"password_hash,omitempty"`
	Leader       uuid.UUID        `json:"leader"`
	Members      []uuid.UUID      `json:"members"`
	Shared       Progress         `json:"shared"`
	Phases       map[PhaseID]bool `json:"phases"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NewPartyRecord creates a party led by leader. A non-nil password makes the
// party private; only its hash is kept.
func NewPartyRecord(id uuid.UUID, name string, leader uuid.UUID, password *string, now time.Time) (*PartyRecord, error) {
	p := &PartyRecord{
		ID:         id,
		Name:       name,
		Visibility: VisibilityPublic,
		Leader:     leader,
		Members:    []uuid.UUID{leader},
		Shared:     NewProgress(),
		Phases:     make(map[PhaseID]bool),
		CreatedAt:  now,
	}
	if password != nil {
		if len(*password) > MaxPasswordLength {
			return nil, errors.InvalidArgumentf("party password exceeds %d bytes", MaxPasswordLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash party password")
		}
		p.Visibility = VisibilityPrivate
		p.PasswordHash = string(hash)
	}
	return p, nil
}

// Normalize fills maps a decoded record may be missing
func (p *PartyRecord) Normalize() {
	p.Shared.ensure()
	if p.Phases == nil {
		p.Phases = make(map[PhaseID]bool)
	}
	if p.Visibility == "" {
		p.Visibility = VisibilityPublic
	}
}

// Clone returns a deep copy
func (p *PartyRecord) Clone() *PartyRecord {
	out := *p
	out.Members = append([]uuid.UUID(nil), p.Members...)
	out.Shared = p.Shared.Clone()
	out.Phases = make(map[PhaseID]bool, len(p.Phases))
	for k, v := range p.Phases {
		out.Phases[k] = v
	}
	return &out
}

// IsPrivate reports whether joining requires a password
func (p *PartyRecord) IsPrivate() bool {
	return p.Visibility == VisibilityPrivate
}

// CheckPassword compares candidate with the party password hash. Public
// parties accept anything.
func (p *PartyRecord) CheckPassword(candidate string) bool {
	if !p.IsPrivate() {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(candidate)) == nil
}

// MemberCount returns the number of members
func (p *PartyRecord) MemberCount() int {
	return len(p.Members)
}

// IsMember reports whether playerID belongs to the party
func (p *PartyRecord) IsMember(playerID uuid.UUID) bool {
	for _, m := range p.Members {
		if m == playerID {
			return true
		}
	}
	return false
}

// AddMember appends playerID if not already present
func (p *PartyRecord) AddMember(playerID uuid.UUID) {
	if p.IsMember(playerID) {
		return
	}
	p.Members = append(p.Members, playerID)
}

// RemoveMember drops playerID. If the leader leaves, leadership passes to
// the oldest remaining member. Returns true when leadership changed.
func (p *PartyRecord) RemoveMember(playerID uuid.UUID) bool {
	for i, m := range p.Members {
		if m != playerID {
			continue
		}
		p.Members = append(p.Members[:i:i], p.Members[i+1:]...)
		if p.Leader == playerID && len(p.Members) > 0 {
			p.Leader = p.Members[0]
			return true
		}
		return false
	}
	return false
}

// Reevaluate recomputes shared phase flags with quotas scaled for the
// current party size. Returns true if any flag flipped.
func (p *PartyRecord) Reevaluate(defs []*PhaseDefinition, k float64) bool {
	members := p.MemberCount()
	quota := func(base int) int { return AdjustedRequirement(base, members, k) }
	next := EvaluatePhases(defs, p.Shared, nil, quota)
	if PhasesEqual(p.Phases, next) {
		return false
	}
	p.Phases = next
	return true
}
