package token_bucket

import (
	"sync"
	"time"
)

// KeyedTokenBucket держит отдельный бакет на ключ (адрес клиента),
// чтобы один шумный клиент не выедал лимит у остальных.
type KeyedTokenBucket struct {
	capacity   int
	refillRate float64

	mu        sync.Mutex
	buckets   map[string]*TokenBucket
	lastSweep time.Time
	sweepTTL  time.Duration
}

func NewKeyedTokenBucket(capacity int, refillRate float64, sweepTTL time.Duration) *KeyedTokenBucket {
	return &KeyedTokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*TokenBucket),
		lastSweep:  time.Now(),
		sweepTTL:   sweepTTL,
	}
}

func (k *KeyedTokenBucket) Allow(key string) bool {
	return k.bucket(key).Allow()
}

// Len количество живых бакетов
func (k *KeyedTokenBucket) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.buckets)
}

func (k *KeyedTokenBucket) bucket(key string) *TokenBucket {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := time.Now()
	if k.sweepTTL > 0 && now.Sub(k.lastSweep) >= k.sweepTTL {
		k.sweep(now)
	}

	b, ok := k.buckets[key]
	if !ok {
		b = NewTokenBucket(k.capacity, k.refillRate)
		k.buckets[key] = b
	}
	return b
}

// sweep удаляет полностью пополненные бакеты, вызывается под k.mu
func (k *KeyedTokenBucket) sweep(now time.Time) {
	for key, b := range k.buckets {
		if b.full(now) {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
