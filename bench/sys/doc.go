// Package sys holds payloads that time host system calls: clock reads,
// entropy, zero-length I/O, descriptor queries and small file I/O on
// scratch files. The payloads are only built on Linux; elsewhere the
// package contributes no benchmarks.
package sys
