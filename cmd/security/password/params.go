package password

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Params controls Argon2id hashing cost. MemoryKiB is in KiB as required by
// argon2.IDKey.
type Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns a baseline suitable for interactive logins.
// Parallelism is clamped to [1..4] to keep resource usage predictable in
// containers.
func DefaultParams() Params {
	threads := runtime.NumCPU()
	if threads <= 0 {
		threads = 1
	}
	if threads > 4 {
		threads = 4
	}

	return Params{
		MemoryKiB:   64 * 1024,
		Iterations:  3,
		Parallelism: uint8(threads),
		SaltLength:  16,
		KeyLength:   32,
	}
}

// FromEnv loads Params with optional environment overrides.
//
// Optional:
//   - QNA_ARGON2_MEMORY_KIB
//   - QNA_ARGON2_ITERATIONS
//   - QNA_ARGON2_PARALLELISM
//
// Overrides are validated; out-of-range values are rejected rather than
// silently clamped so a misconfigured deployment fails loudly.
func FromEnv() (Params, error) {
	p := DefaultParams()

	if v := os.Getenv("QNA_ARGON2_MEMORY_KIB"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n < 8*1024 || n > 1024*1024 {
			return Params{}, fmt.Errorf("password: invalid QNA_ARGON2_MEMORY_KIB %q", v)
		}
		p.MemoryKiB = uint32(n)
	}

	if v := os.Getenv("QNA_ARGON2_ITERATIONS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n < 1 || n > 16 {
			return Params{}, fmt.Errorf("password: invalid QNA_ARGON2_ITERATIONS %q", v)
		}
		p.Iterations = uint32(n)
	}

	if v := os.Getenv("QNA_ARGON2_PARALLELISM"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil || n < 1 || n > 8 {
			return Params{}, fmt.Errorf("password: invalid QNA_ARGON2_PARALLELISM %q", v)
		}
		p.Parallelism = uint8(n)
	}

	return p, nil
}
