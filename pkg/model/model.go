// Package model defines the generative-model collaborator boundary. The
// pipeline treats it as an opaque request/response call: one prompt string
// in, one raw text response out, with failure as a first-class outcome that
// triggers the deterministic fallback.
package model

import "context"

// Invoker performs a single blocking model invocation. Implementations own
// their own timeout and retry behavior; the pipeline core adds neither.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// InvokerFunc adapts a plain function to the Invoker interface.
type InvokerFunc func(ctx context.Context, prompt string) (string, error)

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
