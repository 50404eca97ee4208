// Package cloud applies glmat matrices to point clouds of
// github.com/seqsense/pcgol.
package cloud
