// Package version reports the seqkit build version.
//
// Version, commit and build time are set at link time and fall back to the
// VCS stamps the Go toolchain embeds:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=0.3.0" ./cmd/seqkit
package version
