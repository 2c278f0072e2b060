package launch

import "context"

type ctxKey struct{}

// WithLauncher returns a new context carrying l.
func WithLauncher(ctx context.Context, l Launcher) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the Launcher from context, or the system launcher.
func FromContext(ctx context.Context) Launcher {
	if l, ok := ctx.Value(ctxKey{}).(Launcher); ok {
		return l
	}
	return New()
}
