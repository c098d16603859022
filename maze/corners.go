package maze

// Endpoints picks the start and end corners for a cols x rows maze. The
// corners are shuffled by a generator seeded with seed+1 so the choice does
// not follow the carving sequence. Adjacent or even equal corners (on 1xN
// grids) are possible.
func Endpoints(cols, rows, seed int) (start, end CellPosition) {
	corners := []CellPosition{
		{X: 0, Y: 0},
		{X: cols - 1, Y: 0},
		{X: 0, Y: rows - 1},
		{X: cols - 1, Y: rows - 1},
	}

	rng := NewSeededRandom(seed + 1)
	rng.Shuffle(len(corners), func(i, j int) { corners[i], corners[j] = corners[j], corners[i] })

	return corners[0], corners[1]
}
