package game

import "golang.org/x/exp/slices"

// regionCache memoizes region sizes for the board revision they were computed at.
type regionCache struct {
	valid    bool
	revision uint64
	sizes    [3][]int // Sizes in descending order, indexed by Piece
}

func (c regionCache) copy() regionCache {
	out := regionCache{valid: c.valid, revision: c.revision}
	for i, s := range c.sizes {
		out.sizes[i] = slices.Clone(s)
	}
	return out
}

// RegionSizes returns the sizes of side's 8-connected regions, largest first.
func (b *Board) RegionSizes(side Piece) []int {
	return slices.Clone(b.regionSizes(side))
}

// RegionCount returns the number of regions of side.
func (b *Board) RegionCount(side Piece) int {
	return len(b.regionSizes(side))
}

// LargestRegion returns the size of side's largest region, or 0 if side has no pieces.
func (b *Board) LargestRegion(side Piece) int {
	sizes := b.regionSizes(side)
	if len(sizes) == 0 {
		return 0
	}
	return sizes[0]
}

// PiecesContiguous reports whether side's pieces form exactly one region.
func (b *Board) PiecesContiguous(side Piece) bool {
	return len(b.regionSizes(side)) == 1
}

func (b *Board) regionSizes(side Piece) []int {
	if !b.regions.valid || b.regions.revision != b.revision {
		b.computeRegions()
	}
	return b.regions.sizes[side]
}

// computeRegions flood fills every unvisited occupied square with an explicit stack.
func (b *Board) computeRegions() {
	var visited uint64
	var sizes [3][]int
	stack := make([]Square, 0, NUM_SQUARES)

	for _, start := range AllSquares {
		side := b.cells[start]
		if side == Empty || visited&(1<<uint(start)) != 0 {
			continue
		}
		visited |= 1 << uint(start)
		stack = append(stack[:0], start)
		size := 0
		for len(stack) > 0 {
			sq := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range sq.Adjacent() {
				if b.cells[n] == side && visited&(1<<uint(n)) == 0 {
					visited |= 1 << uint(n)
					stack = append(stack, n)
				}
			}
		}
		sizes[side] = append(sizes[side], size)
	}

	for _, s := range sizes {
		slices.SortFunc(s, func(a, b int) int { return b - a })
	}
	b.regions = regionCache{valid: true, revision: b.revision, sizes: sizes}
}
