// Package resource bounds the memory and I/O bandwidth used by table
// transfers.
//
// A Controller combines a weighted semaphore for in-flight snapshot bytes
// with a token-bucket limiter for I/O throughput. A nil *Controller is
// valid and imposes no limits.
package resource
