// Package version exposes build metadata for the kthmin binary.
//
// Version, commit, branch, and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/kthmin/version.Version=1.2.0" ./cmd/kthmin
//
// Missing values fall back to the VCS stamp recorded by the Go toolchain.
package version
