// Package collabkit provides small ordering and dispatch primitives shared by
// collaborative applications: a bounded sorted merge, a two-valued ordering
// bias, a sequential message dispatcher, and a fixture text generator.
//
// Core
//   - ExtendSorted: merge a sorted batch into a sorted, capacity-limited slice
//     in place, evicting from the tail to admit better-ranked newcomers.
//   - Bias: a Before/After tie-break marker with a total order, for callers
//     that need to disambiguate otherwise-equal boundary positions.
//
// Dispatch
//   - HandleMessages: spawn a detached loop that consumes a typed message
//     channel and invokes a Handler once per message, strictly in arrival
//     order. Handler errors are logged and dropped; the loop ends only when
//     the source is exhausted or the context is canceled between messages.
//
// Fixtures
//   - TextGenerator: an unbounded pseudo-random rune sequence mixing ASCII,
//     multi-byte letters, symbols, and pictographs, driven by a caller-seeded
//     rand.Rand for deterministic tests.
//
// Defaults
// Unless overridden via options, HandleMessages uses a no-op logger and no-op
// metrics. Pass WithLogger and WithMetrics to observe handler failures and
// dispatch latency.
package collabkit
