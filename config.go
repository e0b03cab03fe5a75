// config.go: compile-time-in-spirit parameters for Logger and Server
//
// N (arena count), B (arena size), and maxLoggers are fixed for the
// lifetime of a Logger or Server and never adjusted on the fast path. Go
// has no non-type template parameters suited to baking that in at compile
// time, so they become ordinary constructor arguments validated once at
// build time through a functional-option builder.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"fmt"

	"github.com/agilira/nanolog/idle"
)

// LoggerConfig holds a Local Logger's fixed parameters.
type LoggerConfig struct {
	// Arenas is N, the number of arenas in the producer's ring. Must
	// satisfy 1 <= N <= 255 (the mini-semaphore's byte counters require
	// N < 256).
	Arenas int

	// ArenaBytes is B, the payload budget per arena. Must be at least
	// large enough to hold the largest record ever produced.
	ArenaBytes int

	// MaxRecordsPerArena bounds the header table per arena (an
	// implementation detail of the GC-safe record layout; see
	// internal/capture/arena.go). Defaults to ArenaBytes/8 when zero.
	MaxRecordsPerArena int

	// ErrorHook receives every diagnostic this package can raise.
	// Defaults to defaultErrorHook (print + os.Exit(2)) when nil.
	ErrorHook ErrorHook
}

// LoggerOption configures a LoggerConfig.
type LoggerOption func(*LoggerConfig)

// WithArenas sets N.
func WithArenas(n int) LoggerOption {
	return func(c *LoggerConfig) { c.Arenas = n }
}

// WithArenaBytes sets B.
func WithArenaBytes(b int) LoggerOption {
	return func(c *LoggerConfig) { c.ArenaBytes = b }
}

// WithMaxRecordsPerArena overrides the per-arena header table size.
func WithMaxRecordsPerArena(n int) LoggerOption {
	return func(c *LoggerConfig) { c.MaxRecordsPerArena = n }
}

// WithErrorHook installs a custom diagnostic handler.
func WithErrorHook(h ErrorHook) LoggerOption {
	return func(c *LoggerConfig) { c.ErrorHook = h }
}

func newLoggerConfig(opts []LoggerOption) (LoggerConfig, error) {
	c := LoggerConfig{
		Arenas:     8,
		ArenaBytes: 16384,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.MaxRecordsPerArena == 0 {
		c.MaxRecordsPerArena = c.ArenaBytes / 8
	}
	if c.Arenas < 1 || c.Arenas > 255 {
		return c, fmt.Errorf("nanolog: Arenas must satisfy 1 <= N <= 255, got %d", c.Arenas)
	}
	if c.ArenaBytes <= 0 {
		return c, fmt.Errorf("nanolog: ArenaBytes must be positive, got %d", c.ArenaBytes)
	}
	if c.ErrorHook == nil {
		c.ErrorHook = defaultErrorHook
	}
	return c, nil
}

// ServerConfig holds a Log Server's fixed parameters.
type ServerConfig struct {
	// MaxLoggers is the registry's fixed capacity.
	MaxLoggers int

	// Adapter supplies wait/notify/lock/unlock. Defaults to
	// NewAdapter(idle.NewChannel()) when nil.
	Adapter Adapter
}

// ServerOption configures a ServerConfig.
type ServerOption func(*ServerConfig)

// WithMaxLoggers sets the registry capacity.
func WithMaxLoggers(n int) ServerOption {
	return func(c *ServerConfig) { c.MaxLoggers = n }
}

// WithAdapter installs a custom Platform Adapter.
func WithAdapter(a Adapter) ServerOption {
	return func(c *ServerConfig) { c.Adapter = a }
}

// WithIdleStrategy is shorthand for WithAdapter(NewAdapter(strategy)).
func WithIdleStrategy(strategy idle.Strategy) ServerOption {
	return func(c *ServerConfig) { c.Adapter = NewAdapter(strategy) }
}

func newServerConfig(opts []ServerOption) (ServerConfig, error) {
	c := ServerConfig{MaxLoggers: 64}
	for _, opt := range opts {
		opt(&c)
	}
	if c.MaxLoggers <= 0 {
		return c, fmt.Errorf("nanolog: MaxLoggers must be positive, got %d", c.MaxLoggers)
	}
	if c.Adapter == nil {
		c.Adapter = NewAdapter(idle.NewChannel())
	}
	return c, nil
}
