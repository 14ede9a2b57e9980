// Package typedevents provides a typed, synchronous publish/subscribe channel.
//
// # Overview
//
// A Channel[T] owns an ordered list of listeners. Subscribe appends a
// listener and returns an Unsubscribe handle bound to that one
// registration. Emit calls every listener that was registered when the
// broadcast began, in subscription order, on the caller's goroutine.
//
//	cart := typedevents.New[Cart]()
//
//	unsubscribe := cart.Subscribe(func(c Cart) {
//	    fmt.Println("items:", len(c.Items))
//	})
//	defer unsubscribe()
//
//	cart.Emit(Cart{Items: items})
//
// Channels are independent values. There is no package-level registry.
//
// # Identity
//
// Registrations, not func values, are the unit of identity. Subscribing the
// same function twice yields two registrations, two deliveries per Emit, and
// two handles that each remove exactly one of them. Calling a handle again,
// or after its registration is gone, does nothing.
//
// # Mutation During Emit
//
// Listeners may subscribe, unsubscribe, or emit on the same channel while
// being invoked. Emit snapshots the registrations when it starts and checks
// each one is still registered right before calling it:
//
//   - A listener subscribed during an Emit is not called by that Emit, only
//     by later ones.
//   - A listener unsubscribed during an Emit, before its turn, is skipped.
//   - A listener that unsubscribes itself finishes its current call.
//   - A nested Emit is an independent broadcast with its own snapshot.
//
// # Panics
//
// Listener panics are not recovered. The panic propagates out of Emit
// unchanged and the remaining listeners of that broadcast are not called.
// When observability is enabled the aborted broadcast is logged, counted, and
// its span marked with ErrEmitAborted before the panic continues.
//
// # Arity Helpers
//
// Channel[T] carries a single value. NewSignal and New2 through New6 wrap it
// for listeners with zero or several positional arguments:
//
//	moves := typedevents.New2[string, int]()
//	moves.Subscribe(func(player string, square int) { ... })
//	moves.Emit("x", 4)
//
// # Observability
//
// Logging, metrics, and tracing are opt-in:
//
//	ch := typedevents.New[Order](
//	    typedevents.WithName("orders"),
//	    typedevents.WithObservabilityLogger(logger),
//	    typedevents.WithMetrics(true),
//	    typedevents.WithTracing(true),
//	)
//
// See the observability package for the emitted log records, metric
// instruments and span names. OptionsFromConfig builds the same options from
// a config.Config loaded from YAML or JSON.
//
// # Thread Safety
//
// All methods are safe for concurrent use. The registration list is guarded
// by a lock that is never held while a listener runs.
package typedevents
