package commands

import (
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

//go:generate mockgen -destination=mock/mock_limiter.go -package=commandsmock github.com/KirkDiggler/rpg-progression/internal/commands Limiter

// Limiter decides whether a player may issue another command
type Limiter interface {
	Allow(playerID uuid.UUID) bool
}

// idleLimiterTTL drops the bucket of a player who stopped sending commands
const idleLimiterTTL = 30 * time.Minute

type tokenBucketLimiter struct {
	limiterByPlayer *ttlcache.Cache[uuid.UUID, *rate.Limiter]
	refillPerSecond float64
	burstSize       int
}

// NewTokenBucketLimiter returns a per-player token bucket limiter and the
// function that stops its expiry loop
func NewTokenBucketLimiter(refillPerSecond float64, burstSize int) (Limiter, func()) {
	cache := ttlcache.New[uuid.UUID, *rate.Limiter](
		ttlcache.WithTTL[uuid.UUID, *rate.Limiter](idleLimiterTTL),
	)
	go cache.Start()

	return &tokenBucketLimiter{
		limiterByPlayer: cache,
		refillPerSecond: refillPerSecond,
		burstSize:       burstSize,
	}, cache.Stop
}

func (l *tokenBucketLimiter) Allow(playerID uuid.UUID) bool {
	limiter, _ := l.limiterByPlayer.GetOrSet(playerID, rate.NewLimiter(rate.Limit(l.refillPerSecond), l.burstSize))
	return limiter.Value().Allow()
}

type unlimited struct{}

// Unlimited never rejects a command
func Unlimited() Limiter { return unlimited{} }

func (unlimited) Allow(uuid.UUID) bool { return true }
