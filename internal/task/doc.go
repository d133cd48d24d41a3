// Package task samples arithmetic practice problems. It never imports grid,
// output, writers, cli or app; keep it domain-only.
//
// Every generator draws from an explicit *rand.Rand so a fixed seed
// reproduces a worksheet exactly.
package task
