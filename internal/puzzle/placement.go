package puzzle

import (
	"github.com/KirkDiggler/block-cats/internal/errors"
)

// RejectReason explains why a placement was refused
type RejectReason string

// Placement rejection reasons
const (
	RejectNone        RejectReason = ""
	RejectOutOfBounds RejectReason = "out_of_bounds"
	RejectOccupied    RejectReason = "occupied"
)

const metaReason = "reason"

// CheckPlacement returns why piece cannot be anchored at (row, col), or
// RejectNone when every offset lands on an empty in-bounds cell.
func CheckPlacement(b Board, piece Piece, row, col int) RejectReason {
	for _, off := range piece.Shape.Cells {
		r, c := row+off.Row, col+off.Col
		if !InBounds(r, c) {
			return RejectOutOfBounds
		}
		if !b[r][c].IsEmpty() {
			return RejectOccupied
		}
	}
	return RejectNone
}

// CanPlace reports whether piece fits with its anchor at (row, col)
func CanPlace(b Board, piece Piece, row, col int) bool {
	return CheckPlacement(b, piece, row, col) == RejectNone
}

// Place validates and places piece in one step. A rejected placement
// returns the board unchanged and an error whose RejectionReason is set.
func Place(b Board, piece Piece, row, col int) (Board, error) {
	switch CheckPlacement(b, piece, row, col) {
	case RejectOutOfBounds:
		return b, errors.OutOfRangef("%s does not fit on the board at (%d,%d)", piece.Shape.Name, row, col).
			WithMeta(metaReason, RejectOutOfBounds)
	case RejectOccupied:
		return b, errors.FailedPreconditionf("%s overlaps occupied cells at (%d,%d)", piece.Shape.Name, row, col).
			WithMeta(metaReason, RejectOccupied)
	}

	for _, off := range piece.Shape.Cells {
		b[row+off.Row][col+off.Col] = Filled(piece.Cat)
	}
	return b, nil
}

// RejectionReason extracts the reason from an error returned by Place
func RejectionReason(err error) (RejectReason, bool) {
	reason, ok := errors.GetMeta(err)[metaReason].(RejectReason)
	return reason, ok
}

// CanPlaceAnywhere reports whether some anchor on the board accepts piece
func CanPlaceAnywhere(b Board, piece Piece) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if CanPlace(b, piece, r, c) {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether no offered piece fits anywhere. Nil slots are
// skipped, so a tray of only nil slots is game over.
func IsGameOver(b Board, pieces []*Piece) bool {
	for _, p := range pieces {
		if p != nil && CanPlaceAnywhere(b, *p) {
			return false
		}
	}
	return true
}
