package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	mock_interfaces "warranty_intake/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeCounterStore mirrors the DynamoDB counter semantics in memory: lazy
// creation with a seed, and an atomic increment-then-read under one lock. It
// doubles as "persisted state" for restart simulations.
type fakeCounterStore struct {
	mu      sync.Mutex
	seed    int64
	created bool
	value   int64
}

func (f *fakeCounterStore) Next(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.created {
		f.value = f.seed
		f.created = true
	}
	f.value++
	return f.value, nil
}

func TestSequencerUseCase_SeedBehavior(t *testing.T) {
	store := &fakeCounterStore{seed: 100000}
	seq := NewSequencerUseCase(store)

	n, err := seq.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 100001 {
		t.Fatalf("expected first allocation to be seed+1 (100001), got %d", n)
	}

	n2, err := seq.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n2 != 100002 {
		t.Fatalf("expected 100002, got %d", n2)
	}
}

func TestSequencerUseCase_ConcurrentAllocationsAreDistinctAndGapFree(t *testing.T) {
	const n = 200
	store := &fakeCounterStore{seed: 100000}
	seq := NewSequencerUseCase(store)

	results := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := seq.Allocate(context.Background())
			if err != nil {
				t.Errorf("allocate failed: %v", err)
				return
			}
			results <- v
		}()
	}
	wg.Wait()
	close(results)

	var got []int64
	for v := range results {
		got = append(got, v)
	}
	if len(got) != n {
		t.Fatalf("expected %d allocations, got %d", n, len(got))
	}

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i, v := range got {
		want := int64(100001 + i)
		if v != want {
			t.Fatalf("expected contiguous gap-free sequence, position %d is %d (want %d)", i, v, want)
		}
	}
}

func TestSequencerUseCase_CompletionOrderIsStrictlyIncreasing(t *testing.T) {
	store := &fakeCounterStore{seed: 0}
	seq := NewSequencerUseCase(store)

	var last int64
	for i := 0; i < 50; i++ {
		v, err := seq.Allocate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v <= last {
			t.Fatalf("allocation %d returned %d, not greater than previous %d", i, v, last)
		}
		last = v
	}
}

func TestSequencerUseCase_NoDuplicatesAcrossRestart(t *testing.T) {
	store := &fakeCounterStore{seed: 100000}

	seen := map[int64]bool{}
	seq := NewSequencerUseCase(store)
	for i := 0; i < 10; i++ {
		v, err := seq.Allocate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[v] {
			t.Fatalf("value %d issued twice", v)
		}
		seen[v] = true
	}

	// Process restart: a fresh sequencer over the same persisted store.
	seq = NewSequencerUseCase(store)
	for i := 0; i < 10; i++ {
		v, err := seq.Allocate(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[v] {
			t.Fatalf("value %d issued twice after restart", v)
		}
		seen[v] = true
	}
}

func TestSequencerUseCase_StoreFailureDoesNotAdvance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimCounterRepository(ctrl)
	seq := NewSequencerUseCase(repo)

	repo.EXPECT().Next(gomock.Any()).Return(int64(0), errors.New("dynamodb unavailable"))
	if _, err := seq.Allocate(context.Background()); err == nil || err.Error() != "dynamodb unavailable" {
		t.Fatalf("expected store error to surface, got %v", err)
	}

	// After a failed durable write the next successful allocation must still
	// be accepted; nothing was consumed locally.
	repo.EXPECT().Next(gomock.Any()).Return(int64(100001), nil)
	v, err := seq.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 100001 {
		t.Fatalf("expected 100001, got %d", v)
	}
}

func TestSequencerUseCase_RejectsNonIncreasingStoreValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimCounterRepository(ctrl)
	seq := NewSequencerUseCase(repo)

	repo.EXPECT().Next(gomock.Any()).Return(int64(100005), nil)
	if _, err := seq.Allocate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Next(gomock.Any()).Return(int64(100005), nil)
	if _, err := seq.Allocate(context.Background()); !errors.Is(err, ErrSequenceRegression) {
		t.Fatalf("expected ErrSequenceRegression, got %v", err)
	}
}

func TestSequencerUseCase_NotConfigured(t *testing.T) {
	seq := NewSequencerUseCase(nil)
	if _, err := seq.Allocate(context.Background()); !errors.Is(err, ErrCounterNotConfigured) {
		t.Fatalf("expected ErrCounterNotConfigured, got %v", err)
	}
}
