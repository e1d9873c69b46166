// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package workers

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ErrPoolReleased is returned when work is submitted after Release.
var ErrPoolReleased = errors.New("worker pool released")

// Pool runs independent per-row jobs on a bounded ants pool.
// A nil *Pool, or one created with size <= 1, runs jobs sequentially on the
// calling goroutine.
type Pool struct {
	pool     *ants.Pool
	size     int
	released bool
	logger   *slog.Logger
}

// New creates a pool with the given number of workers.
// Sizes below 2 produce a sequential pool that never starts goroutines.
func New(size int, logger *slog.Logger) (*Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if size < 1 {
		size = 1
	}

	p := &Pool{size: size, logger: logger}
	if size == 1 {
		return p, nil
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	p.pool = pool
	logger.Debug("worker pool started", "size", size)
	return p, nil
}

// Size returns the number of workers. A nil pool has size 1.
func (p *Pool) Size() int {
	if p == nil {
		return 1
	}
	return p.size
}

// Each calls fn(i) for every i in [0, n) and waits for all calls to finish.
// If any call fails, the error of the lowest failing index is returned, so the
// result does not depend on scheduling.
func (p *Pool) Each(n int, fn func(i int) error) error {
	if p != nil && p.released {
		return ErrPoolReleased
	}
	if p == nil || p.pool == nil || n < 2 {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			errs[i] = fn(i)
		})
		if submitErr != nil {
			wg.Done()
			if errors.Is(submitErr, ants.ErrPoolClosed) {
				submitErr = ErrPoolReleased
			}
			errs[i] = submitErr
			break
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Release stops the workers. The pool should not be used after calling Release.
func (p *Pool) Release() {
	if p == nil || p.released {
		return
	}
	p.released = true
	if p.pool == nil {
		return
	}
	p.pool.Release()
	p.logger.Debug("worker pool released", "size", p.size)
}
