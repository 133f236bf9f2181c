// Package scheduler implements a typed worker pool for executing async work with futures.
//
// The analytics endpoint uses it to run one compile-and-execute job per aggregate
// in parallel. Each job builds its own query builder, so nothing is shared between
// workers except the database pool.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                         Scheduler[T]                                │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │  Work Queue  [work1] [work2] [work3] ...                │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                        AddWork(fn) → *Future[T]                     │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Event Loop
//
//	for {
//	    select {
//	    case w := <-s.work:   // queue and dispatch
//	    case <-s.idle:        // worker finished, return it to the pool
//	    case <-s.close:       // fail queued work, wait for running work
//	    }
//	}
//
// # Futures
//
//   - C() delivers exactly one Result[T]
//   - Wait(ctx) blocks for the result or cancels the work when ctx ends
//   - Stop() cancels the work's context
//
// Panics inside work are recovered and delivered as errors. Close cancels the
// shared context, resolves queued work with context.Canceled and waits for
// in-flight workers. Close is idempotent.
//
// # Usage Example
//
//	sched := scheduler.NewScheduler[Rows](4)
//	defer sched.Close()
//
//	future := sched.AddWork(func(ctx context.Context) (Rows, error) {
//	    return store.Rows(ctx, sql, args)
//	})
//	result := future.Wait(ctx)
package scheduler
