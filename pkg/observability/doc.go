// Package observability records runtime metrics for the command program.
//
// Metrics live on a private Prometheus registry owned by each Metrics value,
// so several programs (and tests) can run side by side. Nothing is exported
// over the network; Snapshot reads the current values for display.
package observability
