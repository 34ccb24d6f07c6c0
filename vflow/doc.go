// Package vflow is documented in timestamp.go, callbacks.go, and
// cluster.go; see Send, BranchAll, Callbacks, and Cluster for the primary
// entry points.
package vflow
