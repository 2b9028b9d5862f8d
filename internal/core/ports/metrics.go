package ports

import "time"

// Metrics is the abstraction for any kind of service collecting stats about
// the requests served by the daemon.
type Metrics interface {
	// RequestRejected is called when a request is dropped before being
	// admitted in the worker pool.
	RequestRejected(method string)
	// RequestStarted is called once a request has been admitted in the worker
	// pool.
	RequestStarted(method string)
	// RequestFinished is called when the result of an admitted request is
	// returned to the caller, either successfully or not.
	RequestFinished(method string, success bool, elapsed time.Duration)
}
