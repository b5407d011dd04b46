package convfen

import (
	"canvaschess/src/base"
	"fmt"
	"strconv"
	"strings"
)

type Cell struct {
	Kind  base.Kind
	Color base.Color
}

func (c Cell) Empty() bool {
	return c.Kind == base.NoKind
}

// Placement is indexed by base.Square.Index, a1 = 0
type Placement [64]Cell

func (p *Placement) At(sq base.Square) Cell {
	return p[sq.Index()]
}

// PlacementField returns the first FEN field, a bare placement is returned as is
func PlacementField(desc string) string {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func ParsePlacement(desc string) (Placement, error) {
	var p Placement

	ranks := strings.Split(PlacementField(desc), "/")
	if len(ranks) != 8 {
		return p, fmt.Errorf("%w: must be 8 rows, but there are %d", base.ErrInvalidPosition, len(ranks))
	}

	for r, row := range ranks {
		rank := 7 - r
		count := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				count += int(ch - '0')
				if count > 8 {
					return p, fmt.Errorf("%w: row %d overflow", base.ErrInvalidPosition, rank+1)
				}
				continue
			}
			if count >= 8 {
				return p, fmt.Errorf("%w: row %d overflow", base.ErrInvalidPosition, rank+1)
			}
			k, c, ok := base.ConvertPieceFromRune(ch)
			if !ok {
				return p, fmt.Errorf("%w: unknown piece %q", base.ErrInvalidPosition, ch)
			}
			p[rank*8+count] = Cell{Kind: k, Color: c}
			count++
		}
		if count != 8 {
			return p, fmt.Errorf("%w: row %d has %d fields", base.ErrInvalidPosition, rank+1, count)
		}
	}
	return p, nil
}

func FormatPlacement(p Placement) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			cell := p[rank*8+file]
			if cell.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(base.ConvertRuneFromPiece(cell.Kind, cell.Color))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// ValidateFEN checks the syntax of all six fields and that each side has one king.
// Move generators downstream may panic on inputs this rejects.
func ValidateFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return fmt.Errorf("%w: must be 6 parts, but there are %d", base.ErrInvalidPosition, len(parts))
	}

	p, err := ParsePlacement(parts[0])
	if err != nil {
		return err
	}
	kings := map[base.Color]int{}
	for _, c := range p {
		if c.Kind == base.King {
			kings[c.Color]++
		}
	}
	if kings[base.White] != 1 || kings[base.Black] != 1 {
		return fmt.Errorf("%w: each side needs exactly one king", base.ErrInvalidPosition)
	}

	if parts[1] != "w" && parts[1] != "b" {
		return fmt.Errorf("%w: side to move %q", base.ErrInvalidPosition, parts[1])
	}

	if parts[2] != "-" {
		for _, ch := range parts[2] {
			if !strings.ContainsRune("KQkq", ch) {
				return fmt.Errorf("%w: castling %q", base.ErrInvalidPosition, parts[2])
			}
		}
	}

	if parts[3] != "-" {
		sq, err := base.ParseSquare(parts[3])
		if err != nil || (sq.Rank != 2 && sq.Rank != 5) {
			return fmt.Errorf("%w: en passant %q", base.ErrInvalidPosition, parts[3])
		}
	}

	if n, err := strconv.Atoi(parts[4]); err != nil || n < 0 {
		return fmt.Errorf("%w: halfmove %q", base.ErrInvalidPosition, parts[4])
	}
	if n, err := strconv.Atoi(parts[5]); err != nil || n < 1 {
		return fmt.Errorf("%w: fullmove %q", base.ErrInvalidPosition, parts[5])
	}
	return nil
}

// SideToMove reads the second FEN field
func SideToMove(fen string) base.Color {
	parts := strings.Fields(fen)
	if len(parts) > 1 && parts[1] == "b" {
		return base.Black
	}
	return base.White
}
