// Package async provides the future type used by the asynchronous validation
// path.
//
// A Future represents the eventual Outcome of a rule, a field chain or a whole
// model validator. Futures are produced in two ways:
//
//   - Async starts the supplied function in its own goroutine and immediately
//     returns a *Future. This is how inherently asynchronous predicates (remote
//     lookups, database checks) suspend.
//   - Resolved and Failed return futures that are already complete. Synchronous
//     rules use Resolved to satisfy the asynchronous entry point without
//     spawning a goroutine.
//
// Callers wait with Await, bound the wait with AwaitWithTimeout, or poll with
// IsComplete. The engine never fans out: each future is awaited before the
// next one is created, so timeouts and cancellation are the caller's concern.
//
// # Usage
//
//	future := async.Async(ctx, email, func(ctx context.Context, email string) (bool, error) {
//	    return users.Exists(ctx, email)
//	})
//
//	exists, err := future.Await()
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Await returns the error produced by the callback. A context cancelled before
// the goroutine starts resolves the future with ctx.Err(). AwaitWithTimeout
// returns ErrTimeout when the deadline passes first; the underlying goroutine
// keeps running until the callback returns.
package async
