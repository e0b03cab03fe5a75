// arena.go: the fixed-capacity capture arena
//
// Each record is conceptually a (size, reprint, payload) triple. The
// payload lives in one shared raw byte region that is bump-allocated and
// never individually freed — only reset, in bulk, by Drain. The (size,
// reprint) pair lives in a parallel, fixed-capacity, ordinary Go slice
// rather than inside the byte region itself.
//
// That split exists because Go's garbage collector does not scan []byte
// backing arrays for pointers, so a reprint func value (which closes over
// the host print callable and is itself heap-allocated) cannot be
// smuggled into raw bytes without risking collection out from under the
// arena. Keeping headers in a typed slice keeps them GC-visible while the
// payload region stays raw, untyped, contiguous bytes governed only by
// record-declared sizes.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package capture

// maxAlign is the alignment the payload region guarantees for every record
// offset, sufficient for any scalar type this package is asked to store.
const maxAlign = 8

// Header is one record's bookkeeping: where its payload bytes start, its
// unaligned payload size (the region it occupies is that size rounded up
// to maxAlign), and how to reprint it. Reprint receives exactly the
// payload slice written at push time.
type Header struct {
	Offset  int
	Size    int
	Reprint func(payload []byte)
}

// Arena is a fixed-size byte region holding a sequence of self-describing
// records, plus the bytes-used (pos) and records-written (count) counters.
type Arena struct {
	buf     []byte
	pos     int
	headers []Header
	count   int
}

// NewArena creates an arena with payloadBytes of storage and room for at
// most maxRecords headers. maxRecords bounds the pathological case of many
// tiny records; in practice it is sized generously relative to the
// smallest record this package can produce (one aligned word).
func NewArena(payloadBytes, maxRecords int) *Arena {
	return &Arena{
		buf:     make([]byte, payloadBytes),
		headers: make([]Header, maxRecords),
	}
}

func alignUp(n int) int {
	return (n + maxAlign - 1) &^ (maxAlign - 1)
}

// TryPush attempts to append one record of the given unaligned size. write
// is called with a slice of exactly size bytes at the record's offset to
// populate the payload; reprint is stored to later decode that same slice.
// Returns false, without mutating any state, if the record does not fit in
// remaining space or the header table is full — callers never observe a
// partial write.
func (a *Arena) TryPush(size int, write func(payload []byte), reprint func(payload []byte)) bool {
	aligned := alignUp(size)
	if a.count >= len(a.headers) {
		return false
	}
	if a.pos+aligned > len(a.buf) {
		return false
	}

	slice := a.buf[a.pos : a.pos+size : a.pos+aligned]
	write(slice)

	a.headers[a.count] = Header{Offset: a.pos, Size: size, Reprint: reprint}
	a.pos += aligned
	a.count++
	return true
}

// Empty reports whether the arena currently holds no records.
func (a *Arena) Empty() bool {
	return a.pos == 0
}

// Capacity returns the total payload byte budget this arena was built
// with, for callers deciding whether a record can ever fit (EntryTooLarge).
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Drain walks records in insertion order invoking each one's reprint, then
// resets pos and count to zero. The walk uses only record-declared
// headers — never external metadata — so a corrupt size cannot arise from
// this implementation: headers are ordinary Go values, not reinterpreted
// bytes.
func (a *Arena) Drain() {
	for i := 0; i < a.count; i++ {
		h := &a.headers[i]
		h.Reprint(a.buf[h.Offset : h.Offset+h.Size])
	}
	a.pos = 0
	a.count = 0
}
