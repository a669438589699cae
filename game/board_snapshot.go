package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	snapshotMine     = '*'
	snapshotHidden   = '#'
	snapshotRevealed = '.'
)

// BoardSnapshot records where the mines are and which cells are shown.
// Mine counts are not stored; they are recomputed when the board is rebuilt.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (cell *Cell) serialize() rune {
	switch {
	case cell.IsMine():
		return snapshotMine
	case cell.IsRevealed():
		return snapshotRevealed
	default:
		return snapshotHidden
	}
}

func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	rows := make([]string, board.rows)
	for row := range board.cells {
		var rowBuilder strings.Builder
		for column := range board.cells[row] {
			rowBuilder.WriteRune(board.cells[row][column].serialize())
		}
		rows[row] = rowBuilder.String()
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (generator *Generator) Snapshot() *BoardSnapshot {
	if generator.board == nil {
		return nil
	}
	return generator.board.Snapshot(generator.seed)
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("unable to serialize snapshot: %w", err)
	}

	return string(out), nil
}

// CreateBoard rebuilds the board the snapshot was taken of
func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	height := len(rows)
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("snapshot holds an empty board")
	}

	board := newBoard(height, width)
	revealed := make([]Coord, 0)

	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("snapshot row %d has %d cells, expected %d", row, len(line), width)
		}

		for column, c := range line {
			coord := Coord{Row: row, Column: column}

			switch c {
			case snapshotMine:
				board.setMine(coord)
			case snapshotRevealed:
				revealed = append(revealed, coord)
			case snapshotHidden:
			default:
				return nil, fmt.Errorf("unknown cell %q at %v", c, coord)
			}
		}
	}

	board.populate()
	for _, coord := range revealed {
		board.Cell(coord).reveal()
	}

	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
