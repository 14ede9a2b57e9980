package typedevents

// Signal is a channel whose listeners take no arguments.
type Signal struct {
	ch *Channel[struct{}]
}

// NewSignal creates an empty Signal.
func NewSignal(opts ...Option) *Signal {
	return &Signal{ch: New[struct{}](opts...)}
}

// Subscribe registers listener and returns its Unsubscribe handle.
func (s *Signal) Subscribe(listener func()) Unsubscribe {
	if listener == nil {
		return s.ch.Subscribe(nil)
	}
	return s.ch.Subscribe(func(struct{}) { listener() })
}

// Emit calls the registered listeners. See Channel.Emit.
func (s *Signal) Emit() {
	s.ch.Emit(struct{}{})
}

// Name returns the channel name.
func (s *Signal) Name() string { return s.ch.Name() }

// Len returns the number of registered listeners.
func (s *Signal) Len() int { return s.ch.Len() }

// Args2 carries the arguments of a Channel2 broadcast.
type Args2[T0, T1 any] struct {
	Arg0 T0
	Arg1 T1
}

// Channel2 is a channel whose listeners take two positional arguments.
type Channel2[T0, T1 any] struct {
	ch *Channel[Args2[T0, T1]]
}

// New2 creates an empty Channel2.
func New2[T0, T1 any](opts ...Option) *Channel2[T0, T1] {
	return &Channel2[T0, T1]{ch: New[Args2[T0, T1]](opts...)}
}

// Subscribe registers listener and returns its Unsubscribe handle.
func (c *Channel2[T0, T1]) Subscribe(listener func(T0, T1)) Unsubscribe {
	if listener == nil {
		return c.ch.Subscribe(nil)
	}
	return c.ch.Subscribe(func(a Args2[T0, T1]) { listener(a.Arg0, a.Arg1) })
}

// Emit calls the registered listeners. See Channel.Emit.
func (c *Channel2[T0, T1]) Emit(arg0 T0, arg1 T1) {
	c.ch.Emit(Args2[T0, T1]{Arg0: arg0, Arg1: arg1})
}

// Name returns the channel name.
func (c *Channel2[T0, T1]) Name() string { return c.ch.Name() }

// Len returns the number of registered listeners.
func (c *Channel2[T0, T1]) Len() int { return c.ch.Len() }

// Args3 carries the arguments of a Channel3 broadcast.
type Args3[T0, T1, T2 any] struct {
	Arg0 T0
	Arg1 T1
	Arg2 T2
}

// Channel3 is a channel whose listeners take three positional arguments.
type Channel3[T0, T1, T2 any] struct {
	ch *Channel[Args3[T0, T1, T2]]
}

// New3 creates an empty Channel3.
func New3[T0, T1, T2 any](opts ...Option) *Channel3[T0, T1, T2] {
	return &Channel3[T0, T1, T2]{ch: New[Args3[T0, T1, T2]](opts...)}
}

// Subscribe registers listener and returns its Unsubscribe handle.
func (c *Channel3[T0, T1, T2]) Subscribe(listener func(T0, T1, T2)) Unsubscribe {
	if listener == nil {
		return c.ch.Subscribe(nil)
	}
	return c.ch.Subscribe(func(a Args3[T0, T1, T2]) { listener(a.Arg0, a.Arg1, a.Arg2) })
}

// Emit calls the registered listeners. See Channel.Emit.
func (c *Channel3[T0, T1, T2]) Emit(arg0 T0, arg1 T1, arg2 T2) {
	c.ch.Emit(Args3[T0, T1, T2]{Arg0: arg0, Arg1: arg1, Arg2: arg2})
}

// Name returns the channel name.
func (c *Channel3[T0, T1, T2]) Name() string { return c.ch.Name() }

// Len returns the number of registered listeners.
func (c *Channel3[T0, T1, T2]) Len() int { return c.ch.Len() }

// Args4 carries the arguments of a Channel4 broadcast.
type Args4[T0, T1, T2, T3 any] struct {
	Arg0 T0
	Arg1 T1
	Arg2 T2
	Arg3 T3
}

// Channel4 is a channel whose listeners take four positional arguments.
type Channel4[T0, T1, T2, T3 any] struct {
	ch *Channel[Args4[T0, T1, T2, T3]]
}

// New4 creates an empty Channel4.
func New4[T0, T1, T2, T3 any](opts ...Option) *Channel4[T0, T1, T2, T3] {
	return &Channel4[T0, T1, T2, T3]{ch: New[Args4[T0, T1, T2, T3]](opts...)}
}

// Subscribe registers listener and returns its Unsubscribe handle.
func (c *Channel4[T0, T1, T2, T3]) Subscribe(listener func(T0, T1, T2, T3)) Unsubscribe {
	if listener == nil {
		return c.ch.Subscribe(nil)
	}
	return c.ch.Subscribe(func(a Args4[T0, T1, T2, T3]) { listener(a.Arg0, a.Arg1, a.Arg2, a.Arg3) })
}

// Emit calls the registered listeners. See Channel.Emit.
func (c *Channel4[T0, T1, T2, T3]) Emit(arg0 T0, arg1 T1, arg2 T2, arg3 T3) {
	c.ch.Emit(Args4[T0, T1, T2, T3]{Arg0: arg0, Arg1: arg1, Arg2: arg2, Arg3: arg3})
}

// Name returns the channel name.
func (c *Channel4[T0, T1, T2, T3]) Name() string { return c.ch.Name() }

// Len returns the number of registered listeners.
func (c *Channel4[T0, T1, T2, T3]) Len() int { return c.ch.Len() }

// Args5 carries the arguments of a Channel5 broadcast.
type Args5[T0, T1, T2, T3, T4 any] struct {
	Arg0 T0
	Arg1 T1
	Arg2 T2
	Arg3 T3
	Arg4 T4
}

// Channel5 is a channel whose listeners take five positional arguments.
type Channel5[T0, T1, T2, T3, T4 any] struct {
	ch *Channel[Args5[T0, T1, T2, T3, T4]]
}

// New5 creates an empty Channel5.
func New5[T0, T1, T2, T3, T4 any](opts ...Option) *Channel5[T0, T1, T2, T3, T4] {
	return &Channel5[T0, T1, T2, T3, T4]{ch: New[Args5[T0, T1, T2, T3, T4]](opts...)}
}

// Subscribe registers listener and returns its Unsubscribe handle.
func (c *Channel5[T0, T1, T2, T3, T4]) Subscribe(listener func(T0, T1, T2, T3, T4)) Unsubscribe {
	if listener == nil {
		return c.ch.Subscribe(nil)
	}
	return c.ch.Subscribe(func(a Args5[T0, T1, T2, T3, T4]) { listener(a.Arg0, a.Arg1, a.Arg2, a.Arg3, a.Arg4) })
}

// Emit calls the registered listeners. See Channel.Emit.
func (c *Channel5[T0, T1, T2, T3, T4]) Emit(arg0 T0, arg1 T1, arg2 T2, arg3 T3, arg4 T4) {
	c.ch.Emit(Args5[T0, T1, T2, T3, T4]{Arg0: arg0, Arg1: arg1, Arg2: arg2, Arg3: arg3, Arg4: arg4})
}

// Name returns the channel name.
func (c *Channel5[T0, T1, T2, T3, T4]) Name() string { return c.ch.Name() }

// Len returns the number of registered listeners.
func (c *Channel5[T0, T1, T2, T3, T4]) Len() int { return c.ch.Len() }

// Args6 carries the arguments of a Channel6 broadcast.
type Args6[T0, T1, T2, T3, T4, T5 any] struct {
	Arg0 T0
	Arg1 T1
	Arg2 T2
	Arg3 T3
	Arg4 T4
	Arg5 T5
}

// Channel6 is a channel whose listeners take six positional arguments.
type Channel6[T0, T1, T2, T3, T4, T5 any] struct {
	ch *Channel[Args6[T0, T1, T2, T3, T4, T5]]
}

// New6 creates an empty Channel6.
func New6[T0, T1, T2, T3, T4, T5 any](opts ...Option) *Channel6[T0, T1, T2, T3, T4, T5] {
	return &Channel6[T0, T1, T2, T3, T4, T5]{ch: New[Args6[T0, T1, T2, T3, T4, T5]](opts...)}
}

// Subscribe registers listener and returns its Unsubscribe handle.
func (c *Channel6[T0, T1, T2, T3, T4, T5]) Subscribe(listener func(T0, T1, T2, T3, T4, T5)) Unsubscribe {
	if listener == nil {
		return c.ch.Subscribe(nil)
	}
	return c.ch.Subscribe(func(a Args6[T0, T1, T2, T3, T4, T5]) { listener(a.Arg0, a.Arg1, a.Arg2, a.Arg3, a.Arg4, a.Arg5) })
}

// Emit calls the registered listeners. See Channel.Emit.
func (c *Channel6[T0, T1, T2, T3, T4, T5]) Emit(arg0 T0, arg1 T1, arg2 T2, arg3 T3, arg4 T4, arg5 T5) {
	c.ch.Emit(Args6[T0, T1, T2, T3, T4, T5]{Arg0: arg0, Arg1: arg1, Arg2: arg2, Arg3: arg3, Arg4: arg4, Arg5: arg5})
}

// Name returns the channel name.
func (c *Channel6[T0, T1, T2, T3, T4, T5]) Name() string { return c.ch.Name() }

// Len returns the number of registered listeners.
func (c *Channel6[T0, T1, T2, T3, T4, T5]) Len() int { return c.ch.Len() }
