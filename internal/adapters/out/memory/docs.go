// Package memory provides in-process implementations of the core ports: a fixed
// driver directory, a sequential order id allocator and a per-order locker.
// They serve the facade behind cmd/ride, single-instance deployments and tests.
package memory
