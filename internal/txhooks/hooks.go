// Package txhooks defers side effects of a request until its database
// transaction has committed.
package txhooks

import "context"

// Hooks collects callbacks bound to one transaction.
type Hooks struct {
	fns []func(ctx context.Context)
}

type hooksKey struct{}

// WithHooks returns a copy of ctx carrying an empty hook list.
func WithHooks(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, hooksKey{}, h), h
}

// AfterCommit defers fn until the transaction bound to ctx commits.
// With no transaction bound, fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if h, ok := ctx.Value(hooksKey{}).(*Hooks); ok && h != nil {
		h.fns = append(h.fns, fn)
		return
	}
	fn(ctx)
}

// Run calls the registered callbacks in registration order and clears the list.
func (h *Hooks) Run(ctx context.Context) {
	fns := h.fns
	h.fns = nil
	for _, fn := range fns {
		fn(ctx)
	}
}

// Len reports how many callbacks are pending.
func (h *Hooks) Len() int {
	return len(h.fns)
}
