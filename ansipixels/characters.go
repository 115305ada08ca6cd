package ansipixels

const (
	RoundTopLeft     = "╭"
	RoundTopRight    = "╮"
	RoundBottomLeft  = "╰"
	RoundBottomRight = "╯"

	SquareTopLeft     = "┌"
	SquareTopRight    = "┐"
	SquareBottomLeft  = "└"
	SquareBottomRight = "┘"

	Horizontal = "─"
	Vertical   = "│"

	TopT        = "┬"
	BottomT     = "┴"
	LeftT       = "├"
	RightT      = "┤"
	MiddleCross = "┼"
)
