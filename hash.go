// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import "hash/maphash"

// tupleSeed is the fixed type-specific seed folded into every tuple hash,
// so empty tuples hash consistently for a given incoming h.
const tupleSeed uint64 = 0x77cfa1eef01bca90

// missingHash is the fixed slot hash for the [Missing] sentinel, keeping
// [Hash] consistent with [Equal] for Missing-to-Missing pairs.
const missingHash uint64 = 0x4cc0a37cf01bca90

// elemSeed keys per-element hashing for this process.
var elemSeed = maphash.MakeSeed()

// Hash combines the hashes of all elements in sequence order onto h,
// starting from the fixed tuple seed. Hash agrees with [Equal] within a
// process: equal tuples hash equally. Elements must be comparable;
// [Missing] and nested [Tuple] values are special-cased.
func Hash(t Tuple, h uint64) uint64 {
	h = mix64(h ^ tupleSeed)
	for i := 0; i < t.n; i++ {
		h = mix64(h + hashValue(t.AtUnchecked(i)))
	}
	return h
}

func hashValue(v any) uint64 {
	switch v := v.(type) {
	case Tuple:
		return Hash(v, 0)
	case Missing:
		return missingHash
	default:
		return maphash.Comparable(elemSeed, v)
	}
}

// mix64 is the splitmix64 finalizer.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
