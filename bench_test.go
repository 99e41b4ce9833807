package memo

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/meigma/memo/internal/testutil"
)

func BenchmarkFuncHit(b *testing.B) {
	f := New(ByRoot, func(root string) (string, error) {
		return "fmt-cmd", nil
	}, WithRegistry(NewRegistry()))

	if _, err := f.Call("/proj"); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := f.Call("/proj"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFuncMiss(b *testing.B) {
	f := New(ByRoot, func(root string) (string, error) {
		return root, nil
	}, WithRegistry(NewRegistry()))

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		if _, err := f.Call("/proj/" + strconv.Itoa(i)); err != nil {
			b.Fatal(err)
		}
		i++
	}
}

func BenchmarkFingerprint(b *testing.B) {
	counts := []int{1, 16, 128}

	for _, count := range counts {
		b.Run(fmt.Sprintf("files=%d", count), func(b *testing.B) {
			dir := b.TempDir()
			mtime := time.Unix(1_700_000_000, 0)

			paths := make([]string, count)
			for i := range count {
				name := fmt.Sprintf("input-%03d.txt", i)
				paths[i] = testutil.WriteFile(b, dir, name, "x", mtime)
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := Fingerprint(paths); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
