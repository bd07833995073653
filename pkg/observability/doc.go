/*
Package observability provides Prometheus instrumentation for the not-a-timer
Runner.

Iteration counting is implemented as a step middleware so the Runner core stays
free of metrics concerns; run-level outcomes and the liveness gauge are fed by
whoever owns the run lifecycle (typically the CLI wiring).
*/
package observability
