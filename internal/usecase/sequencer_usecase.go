package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"warranty_intake/internal/usecase/interfaces"
)

var (
	ErrCounterNotConfigured = errors.New("claim counter repository not configured")
	ErrSequenceRegression   = errors.New("claim counter returned a non-increasing value")
)

// ISequencer hands out claim numbers.
//
// Allocate is the single serialization point of the whole service: every
// accepted submission calls it exactly once, and each call returns an integer
// strictly greater than every value already committed. A returned value is
// durable; it is never reissued, even if the caller crashes before using it
// (that produces a permanent gap, which is accepted — duplicates are not).

type ISequencer interface {
	Allocate(ctx context.Context) (int64, error)
}

// SequencerUseCase serializes allocations through a mutex and delegates the
// durable read-modify-write to the counter repository (a single conditional
// UpdateItem in the DynamoDB implementation).
//
// The lastIssued watermark is a local safety net: a store that hands back a
// value at or below the last one this process issued is misconfigured (e.g.
// two environments sharing a table name with different seeds), and continuing
// would break the no-duplicate guarantee. On any error the watermark does not
// advance, so a failed durable write never leaks a value.

type SequencerUseCase struct {
	repo interfaces.IClaimCounterRepository

	mu         sync.Mutex
	lastIssued int64
}

var _ ISequencer = (*SequencerUseCase)(nil)

func NewSequencerUseCase(repo interfaces.IClaimCounterRepository) *SequencerUseCase {
	return &SequencerUseCase{repo: repo}
}

func (s *SequencerUseCase) Allocate(ctx context.Context) (int64, error) {
	if s.repo == nil {
		return 0, ErrCounterNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.repo.Next(ctx)
	if err != nil {
		log.Printf("[sequencer][usecase] allocate failed err=%v", err)
		return 0, err
	}
	if n <= s.lastIssued {
		log.Printf("[sequencer][usecase] regression detected got=%d last_issued=%d", n, s.lastIssued)
		return 0, ErrSequenceRegression
	}
	s.lastIssued = n

	return n, nil
}
