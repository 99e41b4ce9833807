// Package memo provides keyed memoization of expensive, side-effecting
// operations such as locating a formatter entrypoint for a project.
//
// A wrapper created by [New], [NewAsync], or [NewByFiles] runs its producer
// at most once per lookup key and answers later calls from a registry.
// Presence of a key is the "has run" marker, so a producer that legitimately
// returns the zero value (empty string, nil slice) is still never re-invoked.
//
// # Quick Start
//
// Memoize a discovery function by project root:
//
//	findFormatter := memo.New(memo.ByRoot, func(root string) (string, error) {
//	    return discoverFormatter(root) // expensive: walks the tree, runs processes
//	})
//
//	cmd, err := findFormatter.Call("/path/to/proj") // runs discoverFormatter
//	cmd, err = findFormatter.Call("/path/to/proj")  // served from cache
//
// Key by a dynamic set of input files instead, re-running the producer only
// when any file's modification time changes:
//
//	findConfig := memo.NewByFiles(listConfigFiles, loadConfig)
//
// # Slots and Registries
//
// Every wrapper claims a private slot in a [Registry] at construction time,
// so two wrappers never share cached entries even when their keys collide in
// value. Wrappers use the package [Default] registry unless bound to another
// one with [WithRegistry]; [Reset] clears all cached state, which is the
// intended way to isolate test cases that share the Default registry.
//
// # Concurrency
//
// Wrappers are safe for concurrent use. Concurrent calls that miss on the
// same key share a single producer execution by default; see
// [WithInflightSharing] to opt out. The registry provides no cancellation or
// timeouts: a producer that never returns (or, for [AsyncFunc], never calls
// its completion callback) leaves its key absent and that is the producer's
// responsibility to avoid.
//
// Nothing is evicted and nothing is persisted; cached state lives exactly as
// long as the process, bounded only by the number of distinct keys seen.
package memo
