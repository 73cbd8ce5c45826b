// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku

import "github.com/alitto/pond/v2"

// Executor runs offloaded callables. The chain protocol never depends on
// which executor carries the work, so pooled or bounded implementations can
// replace the default without touching suspend/resume semantics.
type Executor interface {
	Execute(fn func())
}

// GoExecutor starts one new goroutine per callable: no queueing, no
// backpressure, no reuse. This mirrors detached thread-per-call offloading
// and is a known scalability gap under load, kept as the default for its
// zero configuration.
type GoExecutor struct{}

func (GoExecutor) Execute(fn func()) { go fn() }

var defaultExecutor Executor = GoExecutor{}

// PoolExecutor runs callables on a bounded worker pool.
type PoolExecutor struct {
	pool pond.Pool
}

// NewPoolExecutor creates an executor backed by a pool of at most
// maxWorkers concurrent workers. Callables beyond the bound queue inside
// the pool.
func NewPoolExecutor(maxWorkers int) *PoolExecutor {
	return &PoolExecutor{pool: pond.NewPool(maxWorkers)}
}

func (p *PoolExecutor) Execute(fn func()) {
	p.pool.Submit(fn)
}

// Stop waits for all submitted callables to finish and releases the pool.
// Execute must not be called after Stop.
func (p *PoolExecutor) Stop() {
	p.pool.StopAndWait()
}
