// Package ntconfig defines the YAML-parsed run configuration shared by
// cmd/ntenum and cmd/ntrank: catalogue locations, worker/chunk sizing, and
// the seed strategy for pkg/partition.
package ntconfig
