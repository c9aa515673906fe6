package gridgraph

// Regions finds all 4-connected regions of cells whose character satisfies
// accept. Regions are discovered in row-major order of their first cell;
// cells inside a region are listed in BFS order from that cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(accept func(rune) bool) [][]Coord {
	seen := make([]bool, g.Width*g.Height)
	var regions [][]Coord

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			start := Coord{r, c}
			if !accept(g.At(start)) || seen[g.index(start)] {
				continue
			}
			// BFS to collect region
			queue := []Coord{start}
			seen[g.index(start)] = true
			var region []Coord

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				for _, v := range g.Moves(u) {
					if !accept(g.At(v)) || seen[g.index(v)] {
						continue
					}
					seen[g.index(v)] = true
					queue = append(queue, v)
				}
			}
			regions = append(regions, region)
		}
	}

	return regions
}

// RegionSizes labels every cell with the size of the region it belongs to,
// as computed by Regions(accept). Rejected cells are labelled 0.
// The result is indexed row-major: sizes[row*Width+col].
func (g *Grid) RegionSizes(accept func(rune) bool) []int {
	sizes := make([]int, g.Width*g.Height)
	for _, region := range g.Regions(accept) {
		for _, c := range region {
			sizes[g.index(c)] = len(region)
		}
	}

	return sizes
}

// RegionSize returns the size label for c from a RegionSizes result.
func (g *Grid) RegionSize(sizes []int, c Coord) int {
	return sizes[g.index(c)]
}
