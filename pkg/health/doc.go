// Package health serves liveness and readiness probes for okayjack servers.
//
// Readiness runs named checks concurrently under a shared timeout:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "catalog":   polls.CatalogCheck(catalog),
//	    "templates": app.TemplatesCheck(),
//	}, health.WithLogger(log)))
//
// Probes answer "OK" or "Service Unavailable" as plain text. Clients sending
// Accept: application/json or ?format=json get a Response document instead:
//
//	{"status":"unhealthy","checks":{"catalog":{"status":"unhealthy","error":"..."}}}
package health
