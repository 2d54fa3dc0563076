// Package entropy implements the AV1 range-coded entropy bitstream writer:
// the core that turns a stream of CDF-addressed symbols into the compact
// byte sequence an AV1 decoder consumes, including deferred carry
// propagation into already-emitted bytes. The interval arithmetic matches
// the range coder used by libaom and dav1d.
package entropy

import "github.com/dsnet/golib/errs"

// Error is the error type for all entropy-writer faults. Every fault this
// package raises is either an internal accounting bug (a propagated carry
// running off the front of the buffer) or a contract violation by the
// caller (bad CDF, out-of-range symbol, oversized literal). Both are
// raised as panics via errs.Assert rather than returned as plain errors.
type Error string

func (e Error) Error() string { return "entropy: " + string(e) }

var (
	errClosed         = Error("write on a writer that has already been finalized")
	errCarryOverflow  = Error("carry propagated past the start of the output buffer")
	errBadSymbol      = Error("symbol index out of range for the given cdf")
	errBadCDF         = Error("cdf is not strictly increasing on (0, 32768)")
	errBadBitValue    = Error("bit value must be 0 or 1")
	errBadNBits       = Error("nbits exceeds 32")
	errLiteralTooWide = Error("literal value does not fit in nbits")
	errGolombRange    = Error("golomb value exceeds 2^32-2")
	errLog2OfZero     = Error("floor_log2 of zero is undefined")
)

// assert panics with err (as an Error, recoverable only by code that
// specifically expects to catch entropy.Error) when ok is false.
func assert(ok bool, err error) {
	errs.Assert(ok, err)
}
