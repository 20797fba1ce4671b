// Package internal holds helpers shared by the cpu, io and emulator packages.
package internal

import (
	"iter"
)

// IterSeq2Concat chains key/value iterators, in order, into one.
// Iteration stops early if the consumer stops.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
