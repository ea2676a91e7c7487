// Package health provides liveness and readiness handlers.
//
//	r.Get("/health/live", health.Liveness[*router.Context])
//	r.Get("/health/ready", health.Readiness[*router.Context](log, checks...))
//
// A check has the signature func(context.Context) error. Readiness runs
// the checks in order and answers 503 on the first failure.
package health
