// Package nanolog is a low-latency, in-process logging core for
// timing-critical producer code.
//
// The producer path — the call a latency-sensitive goroutine makes to
// record a log event — performs no formatting, no synchronization with
// other producers, and no system calls. It copies the captured values into
// a preallocated arena; the one heap allocation per call is the small
// reprint closure stored in the arena's header table. All
// formatting and output work is deferred to a dedicated consumer goroutine
// running a Server.
//
// A minimal program:
//
//	srv, _ := nanolog.NewServer()
//	lg, _ := nanolog.NewLogger()
//	srv.Register(lg)
//	go srv.Run(context.Background())
//
//	nanolog.Record2(lg, func(id int, name string) {
//		fmt.Printf("request %d from %s\n", id, name)
//	}, 42, "alice")
//	lg.Flush()
//	srv.Shutdown()
//
// nanolog is not a general-purpose structured logger: it persists
// nothing, does not reorder or timestamp events, and offers no
// backpressure other than failing loudly (via ErrorHook) when a producer's
// ring is full. Package idle supplies the consumer's wait/notify
// strategies; Text1, Text2, JSON1 and JSON2 build ready-made host print
// callables for the common cases.
package nanolog
