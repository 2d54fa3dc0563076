// Package consts holds the declarative tables an AV1 entropy-coded
// payload is built around: coefficient scan orders, coefficient-context
// offset tables, and the DC/AC quantizer step tables. It is an external
// collaborator of the entropy writer in internal/entropy, not a
// dependency of it: pure data plus small accessors.
package consts

// PlaneTypes is the number of coefficient plane types (luma, chroma).
const PlaneTypes = 2

// SupportedTxSizes is the number of transform sizes this module has scan
// orders for: 4x4 (chroma) and 8x8 (luma).
const SupportedTxSizes = 2

// MaxSupportedEOBClass is the highest EOB class among the supported
// transforms (class 6, EOB in [33, 64] for an 8x8 transform).
const MaxSupportedEOBClass = 6

// Context-count constants size the CDF tables a caller builds for
// coefficient-coding syntax elements (skip flags, base levels, sign) so
// that callers agree on alphabet sizes without duplicating magic numbers.
const (
	TokenCDFQCtxs       = 4
	TxbSkipContexts      = 13
	CoeffBaseContexts    = 26
	CoeffBaseEOBContexts = 4
	CoeffBRContexts      = 21
	DCSignContexts       = 3
)
