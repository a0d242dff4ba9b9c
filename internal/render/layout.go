package render

// Layout constants for the leaderboard composition. Tuned against the
// 1366x757 background art; change them together with the asset.
const (
	CanvasWidth  = 1366
	CanvasHeight = 757

	RankIconSize     = 55
	UnrankedIconSize = 40

	FontSizeNormal = 25
	FontSizeMedium = 23
	FontSizeSmall  = 21

	// Names longer than this drop to the small face.
	longNameThreshold = 12

	// Relative offsets of the elements inside one player slot.
	nameOffsetX = 45
	nameOffsetY = 235
	iconOffsetX = 165
	iconOffsetY = 225
	textOffsetX = 237
	textOffsetY = 235
)

// Slot grid: three columns of seven rows, top players first down the
// first column.
var (
	columnXOffsets = []int{70, 513, 956}
	rowYOffsets    = []int{0, 73, 146, 219, 292, 364, 439}
)

// MaxSlots is the number of players that fit on one board image.
const MaxSlots = 21
