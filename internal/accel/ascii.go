// Package accel provides small CPU-feature-gated fast paths, dispatching on
// golang.org/x/sys/cpu feature flags rather than hand-written assembly.
package accel

import "golang.org/x/sys/cpu"

// hasSSE2 gates the SWAR fast path below. SSE2 is baseline on amd64, so this
// is effectively always true there; it's checked anyway to keep the same
// feature-detection shape the rest of the pack uses, and to fail safe to the
// byte-at-a-time loop on architectures where the assumption doesn't hold.
var hasSSE2 = cpu.X86.HasSSE2

const nonASCIIMask = 0x8080808080808080

// IsASCII reports whether every byte in b is < 0x80. The alphabet this
// engine compiles against is 8-bit ASCII (spec.md §9); callers that need to
// validate or branch on "is this pure ASCII" ahead of some larger operation
// (e.g. choosing a transcoding path before handing text to the matcher) can
// use this rather than a byte-at-a-time loop of their own.
func IsASCII(b []byte) bool {
	if !hasSSE2 {
		return isASCIIByte(b)
	}

	n := len(b)
	i := 0
	for ; i+8 <= n; i += 8 {
		word := uint64(b[i]) | uint64(b[i+1])<<8 | uint64(b[i+2])<<16 | uint64(b[i+3])<<24 |
			uint64(b[i+4])<<32 | uint64(b[i+5])<<40 | uint64(b[i+6])<<48 | uint64(b[i+7])<<56
		if word&nonASCIIMask != 0 {
			return false
		}
	}
	return isASCIIByte(b[i:])
}

func isASCIIByte(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
