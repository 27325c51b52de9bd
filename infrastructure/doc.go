// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
//   - process: runs the discovery tool with os/exec
//   - http/standard: net/http client with retries, used by the remote search client
//   - logger/structured: logrus logger with optional lumberjack file rotation
//   - metrics/prometheus: prometheus counters and histograms for searches
//
// # Process Runner
//
// The runner never goes through a shell. Exit codes are reported, not treated
// as failures, and the child is killed when the context ends:
//
//	runner := process.NewExecRunner()
//	out, err := runner.Run(ctx, domain.Invocation{
//	    Program: "sherlock",
//	    Args:    []string{"johndoe", "--print-found"},
//	})
//
// # HTTP Client
//
// GET requests are retried on transport errors and 5xx responses with
// exponential backoff. POST requests are sent once.
//
//	client := standard.NewStandardHTTPClient(3 * time.Minute)
//	resp, err := client.Get(ctx, "http://localhost:8000/health")
package infrastructure
