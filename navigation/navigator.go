// Package navigation defines the router the session store drives on logout.
package navigation

import (
	"context"
	"sync"
)

// Navigator moves the client to a route
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// Func adapts a function to Navigator
type Func func(ctx context.Context, path string)

// Navigate calls f
func (f Func) Navigate(ctx context.Context, path string) {
	f(ctx, path)
}

// Recorder is a Navigator keeping navigation history
type Recorder struct {
	mux     sync.Mutex
	history []string
}

// Navigate appends path to history
func (r *Recorder) Navigate(ctx context.Context, path string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.history = append(r.history, path)
}

// History returns visited paths in order
func (r *Recorder) History() []string {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]string(nil), r.history...)
}

// Current returns last visited path
func (r *Recorder) Current() string {
	r.mux.Lock()
	defer r.mux.Unlock()
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// Nop ignores navigation requests
var Nop Navigator = Func(func(ctx context.Context, path string) {})
