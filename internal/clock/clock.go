// Package clock wraps github.com/agilira/go-timecache's cached clock for
// nanolog's own operational diagnostics.
//
// This is deliberately NOT used to timestamp captured records: nanolog
// does not timestamp events, and its ordering guarantees say nothing
// about wall-clock time. It is used only to stamp nanolog's diagnostics
// (from Logger and Server alike), at a coarser, non-hot-path granularity than the producer
// fast path would tolerate.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package clock

import "github.com/agilira/go-timecache"

// Now returns the cached current time, refreshed in the background by
// go-timecache rather than on every call — appropriate for diagnostics
// that fire far off the producer fast path.
func Now() int64 {
	return timecache.CachedTimeNano()
}

// String returns a cached, pre-formatted representation of Now(),
// avoiding a time.Format allocation on every diagnostic line.
func String() string {
	return timecache.CachedTimeString()
}
