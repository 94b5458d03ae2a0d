// Package effects wraps host side effects as effio.IO values.
//
// Every adapter is a factory: calling it performs nothing and returns an IO
// whose thunk performs exactly one effect and returns its result. Running the
// IO again performs the effect again.
//
// Adapters:
//   - Console: Println, Printf, ReadLine, IsTerminal
//   - Logging: Log, writing one structured entry to a zap.Logger
//   - Time: Now, Today, NowSpan, read from a Clock
//   - Randomness: Float64, IntN over a PCG generator, NewUUID
//
// Example:
//
//	greet := effio.Bind(effects.NewUUID(), func(id uuid.UUID) effio.IO[error] {
//	    return effects.Println(os.Stdout, "request", id)
//	})
//	// nothing has been printed yet
//	_ = greet.Run()
package effects
