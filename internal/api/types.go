package api

import "time"

// Param is a single query-string key/value pair. Parameters are appended to
// the URL in the order supplied; duplicate keys become repeated pairs.
type Param struct {
	Key   string
	Value string
}

// RequestConfig carries per-request overrides. It is constructed per call
// and discarded after use.
type RequestConfig struct {
	// Headers are merged over the client's default headers. A per-request
	// header wins on key collision.
	Headers map[string]string
	// Params are appended to the request URL as a query string.
	Params []Param
	// Timeout overrides the client's timeout for this request when positive.
	Timeout time.Duration
}
