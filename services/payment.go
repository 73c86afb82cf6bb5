package services

import (
	"math/rand"
	"sync"
	"time"
)

const paymentSuccessRate = 0.85

// PaymentSimulator decides the outcome of a checkout attempt. This is
// the only non-deterministic decision point in the system; tests swap
// it for a deterministic fake.
type PaymentSimulator interface {
	Attempt(override *bool) bool
}

type RandomPaymentSimulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPaymentSimulator returns a simulator that honors an override
// verbatim and otherwise succeeds with probability 0.85. A nil rng
// gets a time-seeded source.
func NewPaymentSimulator(rng *rand.Rand) *RandomPaymentSimulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomPaymentSimulator{rng: rng}
}

func (s *RandomPaymentSimulator) Attempt(override *bool) bool {
	if override != nil {
		return *override
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < paymentSuccessRate
}
