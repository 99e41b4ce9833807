package memo

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// NewByFiles returns a memoized wrapper keyed by a fingerprint of the files
// named by list. The producer reruns whenever any listed file's modification
// time changes or the file set itself changes; otherwise repeated calls are
// answered from the slot.
//
// list runs on every call (the fingerprint is never cached), and every path
// it returns must be statable: a missing input file fails the call rather
// than being silently dropped from the fingerprint.
func NewByFiles[A, V any](list func(A) ([]string, error), producer Producer[A, V], opts ...Option) *Func[A, V] {
	key := func(arg A) (string, error) {
		paths, err := list(arg)
		if err != nil {
			return "", fmt.Errorf("listing fingerprint inputs: %w", err)
		}
		return Fingerprint(paths)
	}
	return New(key, producer, opts...)
}

// Fingerprint derives a change-detection key from the paths and modification
// times of the given files.
//
// Paths are sorted lexicographically first, so the key is independent of the
// order of the input list. Each file contributes "|path|mtime" with the
// mtime in whole seconds; one-second granularity is deliberate, matching
// what filesystems reliably report across platforms. Any stat failure aborts
// the whole computation with an error wrapping the underlying *fs.PathError.
func Fingerprint(paths []string) (string, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)

	var b strings.Builder
	for _, path := range sorted {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("fingerprint input: %w", err)
		}
		b.WriteByte('|')
		b.WriteString(path)
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(info.ModTime().Unix(), 10))
	}
	return b.String(), nil
}
