package server

import "context"

// HealthChecker reports whether a backing service can take requests.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) bool

func (f HealthCheckFunc) Healthy(ctx context.Context) bool {
	return f(ctx)
}

// Static always reports the given result. In-process stores use Static(true).
func Static(healthy bool) HealthChecker {
	return HealthCheckFunc(func(context.Context) bool { return healthy })
}

// All is healthy when every checker is. Checkers run in order and stop at
// the first failure.
func All(checkers ...HealthChecker) HealthChecker {
	return HealthCheckFunc(func(ctx context.Context) bool {
		for _, c := range checkers {
			if !c.Healthy(ctx) {
				return false
			}
		}
		return true
	})
}
