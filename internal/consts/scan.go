package consts

// Coord is a (row, col) position within a transform block, as used by a
// coefficient scan order.
type Coord struct {
	Row, Col uint8
}

// DefaultScan4x4 maps a coefficient index in scan order to its (row, col)
// position in a 4x4 transform block.
var DefaultScan4x4 = [16]Coord{
	{0, 0}, {0, 1}, {1, 0}, {2, 0}, {1, 1}, {0, 2}, {0, 3}, {1, 2},
	{2, 1}, {3, 0}, {3, 1}, {2, 2}, {1, 3}, {2, 3}, {3, 2}, {3, 3},
}

// DefaultScan8x8 maps a coefficient index in scan order to its (row, col)
// position in an 8x8 transform block.
var DefaultScan8x8 = [64]Coord{
	{0, 0}, {0, 1}, {1, 0}, {2, 0}, {1, 1}, {0, 2}, {0, 3}, {1, 2},
	{2, 1}, {3, 0}, {4, 0}, {3, 1}, {2, 2}, {1, 3}, {0, 4}, {0, 5},
	{1, 4}, {2, 3}, {3, 2}, {4, 1}, {5, 0}, {6, 0}, {5, 1}, {4, 2},
	{3, 3}, {2, 4}, {1, 5}, {0, 6}, {0, 7}, {1, 6}, {2, 5}, {3, 4},
	{4, 3}, {5, 2}, {6, 1}, {7, 0}, {7, 1}, {6, 2}, {5, 3}, {4, 4},
	{3, 5}, {2, 6}, {1, 7}, {2, 7}, {3, 6}, {4, 5}, {5, 4}, {6, 3},
	{7, 2}, {7, 3}, {6, 4}, {5, 5}, {4, 6}, {3, 7}, {4, 7}, {5, 6},
	{6, 5}, {7, 4}, {7, 5}, {6, 6}, {5, 7}, {6, 7}, {7, 6}, {7, 7},
}

// ScanOrder2D returns the 2D (non-directional) scan order for one of the
// SupportedTxSizes transform sizes: 0 for 4x4, 1 for 8x8.
func ScanOrder2D(txSizeIndex int) []Coord {
	switch txSizeIndex {
	case 0:
		return DefaultScan4x4[:]
	case 1:
		return DefaultScan8x8[:]
	default:
		panic("consts: txSizeIndex out of range")
	}
}

// SigRefDiffOffset lists the neighbor offsets examined to compute a
// coeff_base context, for DCT_DCT transforms only.
var SigRefDiffOffset = [5]Coord{
	{0, 1}, {1, 0}, {1, 1}, {0, 2}, {2, 0},
}

// MagRefOffset lists the neighbor offsets examined to compute a
// coefficient magnitude context.
var MagRefOffset = [3]Coord{
	{0, 1}, {1, 0}, {1, 1},
}

// CoeffBaseCtxOffset8x8 maps a clamped (row, col) position to a
// coeff_base context-group offset for 8x8 transforms.
var CoeffBaseCtxOffset8x8 = [5][5]uint8{
	{0, 1, 6, 6, 21},
	{1, 6, 6, 21, 21},
	{6, 6, 21, 21, 21},
	{6, 21, 21, 21, 21},
	{21, 21, 21, 21, 21},
}
