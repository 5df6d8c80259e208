package objects

const (
	ScreenWidth  = 500
	ScreenHeight = 620

	// CellSize is the size of a board cell in pixels, including a one pixel gap.
	CellSize = 30
	BoardX   = 11
	BoardY   = 11
)
