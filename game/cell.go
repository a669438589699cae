package game

import (
	"fmt"
)

type Coord struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Column)
}

type Cell struct {
	row, column int
	numMines    int

	state CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.column)
}

func (cell *Cell) Coord() Coord {
	return Coord{Row: cell.row, Column: cell.column}
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Column() int {
	return cell.column
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsMine() bool {
	return cell.state == Mine
}

func (cell *Cell) IsRevealed() bool {
	return cell.state == Revealed
}

// NumMines is only meaningful for safe cells
func (cell *Cell) NumMines() int {
	return cell.numMines
}

func (cell *Cell) IsZero() bool {
	return !cell.IsMine() && cell.numMines == 0
}

// Label is the bare name a cell is rendered with, before spoiler wrapping
func (cell *Cell) Label(emote string) string {
	if cell.IsMine() {
		return emote
	}
	return NumberLabels[cell.numMines]
}

func (cell *Cell) setMine() bool {
	if cell.IsMine() {
		return false
	}
	cell.state = Mine
	cell.numMines = 0
	return true
}

func (cell *Cell) setCount(numMines int) {
	cell.numMines = numMines
	if cell.state != Revealed {
		cell.state = Hidden
	}
}

// reveal reports whether the cell was newly revealed. Mines and unpopulated
// cells are never revealed.
func (cell *Cell) reveal() bool {
	if cell.state != Hidden {
		return false
	}
	cell.state = Revealed
	return true
}
