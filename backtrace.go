// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package base

import (
	"errors"
	"fmt"
	"runtime"
)

// Frame is the marker interface for captured call-stack entries.
type Frame interface {
	frame()
}

// NativeFrame is a raw native instruction-pointer entry.
type NativeFrame struct {
	IP uintptr
}

func (NativeFrame) frame() {}

// InterpretedFrame describes one interpreted-execution entry: the
// executable unit (code object, resolved call target, compiled instance,
// or nil), a statement offset within it, and the enclosing module, if
// any.
type InterpretedFrame struct {
	Code      any
	Statement int
	Module    any
}

func (InterpretedFrame) frame() {}

// ExtendedEntry is the sentinel marking an extended entry in the raw
// entry stream. Real instruction pointers never take this value.
const ExtendedEntry = ^uintptr(0)

// Extended-entry header packing: the kind tag, the count of structured
// values the entry consumes from the Values stream, and the count of raw
// words it consumes from the Entries stream.
const (
	tagBits   = 8
	countBits = 16

	tagMask   = 1<<tagBits - 1
	countMask = 1<<countBits - 1
)

// TagInterpreted marks an interpreted-frame extended entry: two
// structured values (code unit, module) and one raw word (statement
// offset).
const TagInterpreted uintptr = 1

// PackHeader packs an extended-entry header word.
func PackHeader(tag uintptr, nvalues, nraw int) uintptr {
	return tag&tagMask |
		uintptr(nvalues&countMask)<<tagBits |
		uintptr(nraw&countMask)<<(tagBits+countBits)
}

func unpackHeader(h uintptr) (tag uintptr, nvalues, nraw int) {
	return h & tagMask,
		int(h >> tagBits & countMask),
		int(h >> (tagBits + countBits) & countMask)
}

// RawTrace is the dual-stream raw form produced by a native unwinder:
// Entries holds instruction pointers and extended-entry encodings,
// Values holds the parallel stream of structured metadata consumed by
// extended entries, in encounter order.
type RawTrace struct {
	Entries []uintptr
	Values  []any
}

// AppendNative appends a native instruction-pointer entry.
func (r *RawTrace) AppendNative(ip uintptr) {
	r.Entries = append(r.Entries, ip)
}

// AppendInterpreted appends an interpreted-frame extended entry.
func (r *RawTrace) AppendInterpreted(code, module any, statement int) {
	r.Entries = append(r.Entries,
		ExtendedEntry,
		PackHeader(TagInterpreted, 2, 1),
		uintptr(statement),
	)
	r.Values = append(r.Values, code, module)
}

// ErrTruncatedTrace reports a raw buffer that ends inside an extended
// entry. Malformed buffers are a fatal condition for the producer, never
// silently skipped.
var ErrTruncatedTrace = errors.New("base: truncated extended backtrace entry")

// UnexpectedEntryError reports an extended entry whose kind tag is not
// recognized. It carries the offending tag and the sentinel's offset in
// the entry stream.
type UnexpectedEntryError struct {
	Tag    uintptr
	Offset int
}

func (e *UnexpectedEntryError) Error() string {
	return fmt.Sprintf("base: unexpected extended backtrace entry: tag %d at offset %d", e.Tag, e.Offset)
}

// Decode converts a raw trace into structured frames, preserving order.
// Unknown tags fail with *[UnexpectedEntryError] and truncated entries
// with [ErrTruncatedTrace]; malformed input is never skipped.
func Decode(raw RawTrace) ([]Frame, error) {
	frames := make([]Frame, 0, len(raw.Entries))
	vi := 0
	for i := 0; i < len(raw.Entries); i++ {
		e := raw.Entries[i]
		if e != ExtendedEntry {
			frames = append(frames, NativeFrame{IP: e})
			continue
		}
		if i+1 >= len(raw.Entries) {
			return nil, ErrTruncatedTrace
		}
		tag, nvalues, nraw := unpackHeader(raw.Entries[i+1])
		if tag != TagInterpreted {
			return nil, &UnexpectedEntryError{Tag: tag, Offset: i}
		}
		if nvalues < 1 || nraw < 1 {
			return nil, fmt.Errorf("%w: interpreted entry needs a code value and a statement word", ErrTruncatedTrace)
		}
		if i+2+nraw > len(raw.Entries) || vi+nvalues > len(raw.Values) {
			return nil, ErrTruncatedTrace
		}
		words := raw.Entries[i+2 : i+2+nraw]
		vals := raw.Values[vi : vi+nvalues]
		vi += nvalues
		fr := InterpretedFrame{Code: vals[0], Statement: int(words[0])}
		if nvalues > 1 {
			fr.Module = vals[1]
		}
		frames = append(frames, fr)
		i += 1 + nraw
	}
	return frames, nil
}

// captureDepth is the initial frame budget for Capture; doubled until
// the whole stack fits.
const captureDepth = 32

// Capture returns the native frames of the current call point, caller
// first, always skipping Capture's own frame.
func Capture() []Frame {
	pcs := make([]uintptr, captureDepth)
	for {
		// Skip runtime.Callers and Capture itself.
		n := runtime.Callers(2, pcs)
		if n < len(pcs) {
			frames := make([]Frame, n)
			for i, pc := range pcs[:n] {
				frames[i] = NativeFrame{IP: pc}
			}
			return frames
		}
		pcs = make([]uintptr, 2*len(pcs))
	}
}
