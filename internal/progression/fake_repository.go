package progression

import (
	"context"
	"errors"
	"sync"

	"github.com/editorbox/EditorBox_Go/internal/domain"
)

// FakeProgressRepository is an in-memory repository.Progress for tests.
type FakeProgressRepository struct {
	mu     sync.Mutex
	record *domain.Progress

	FailGets  bool
	FailSaves bool
	SaveCount int
}

func NewFakeProgressRepository() *FakeProgressRepository {
	return &FakeProgressRepository{}
}

func (f *FakeProgressRepository) GetProgress(ctx context.Context) (*domain.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailGets {
		return nil, errors.New("fake get failure")
	}
	if f.record == nil {
		return nil, nil
	}
	clone := *f.record
	return &clone, nil
}

func (f *FakeProgressRepository) SaveProgress(ctx context.Context, record *domain.Progress) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SaveCount++
	if f.FailSaves {
		return errors.New("fake save failure")
	}
	clone := *record
	f.record = &clone
	return nil
}

// Stored returns a copy of the persisted record, or nil.
func (f *FakeProgressRepository) Stored() *domain.Progress {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.record == nil {
		return nil
	}
	clone := *f.record
	return &clone
}
