// Package pipe provides an unbounded channel.
//
// Producers never wait for the consumer: values are buffered in memory until
// read. This keeps a slow reader (the interactive loop) from stalling a fast
// writer (discovery, key capture).
package pipe

import "sync"

// Unbounded is a many-producer, single-consumer FIFO with no capacity limit.
type Unbounded[T any] struct {
	in  chan T
	out chan T

	closeOnce sync.Once
}

// New starts an unbounded pipe. The pump goroutine exits after Close once
// every buffered value has been delivered.
func New[T any]() *Unbounded[T] {
	u := &Unbounded[T]{
		in:  make(chan T),
		out: make(chan T),
	}
	go u.pump()
	return u
}

// Push enqueues v. It returns as soon as the pump has taken the value, which
// never depends on the consumer. Push after Close panics.
func (u *Unbounded[T]) Push(v T) {
	u.in <- v
}

// Out is the receive side. It is closed after Close and a full drain.
func (u *Unbounded[T]) Out() <-chan T {
	return u.out
}

// Close stops accepting values. Buffered values are still delivered.
func (u *Unbounded[T]) Close() {
	u.closeOnce.Do(func() { close(u.in) })
}

func (u *Unbounded[T]) pump() {
	defer close(u.out)

	var buf []T
	in := u.in

	for in != nil || len(buf) > 0 {
		// A nil channel blocks forever, which disables the send case while
		// the buffer is empty.
		var out chan T
		var head T
		if len(buf) > 0 {
			out = u.out
			head = buf[0]
		}

		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			buf = append(buf, v)
		case out <- head:
			var zero T
			buf[0] = zero
			buf = buf[1:]
		}
	}
}
