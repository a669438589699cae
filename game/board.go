package game

import (
	"github.com/sirupsen/logrus"
)

type Board struct {
	rows, columns int // in number of cells
	numMines      int
	cells         [][]Cell

	// non-mine cells, in the order their counts were computed
	safeCells []Coord
}

func newBoard(rows, columns int) *Board {
	board := Board{
		rows:    rows,
		columns: columns,
		cells:   make([][]Cell, rows),
	}

	for row := 0; row < rows; row++ {
		board.cells[row] = make([]Cell, columns)

		for column := 0; column < columns; column++ {
			cell := &board.cells[row][column]
			cell.row, cell.column = row, column
			cell.state = Placeholder
		}
	}

	return &board
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Columns() int {
	return board.columns
}

func (board *Board) NumCells() int {
	return board.rows * board.columns
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) CellAt(row, column int) *Cell {
	if row >= 0 && column >= 0 && row < board.rows && column < board.columns {
		return &board.cells[row][column]
	}
	return nil
}

func (board *Board) Cell(coord Coord) *Cell {
	return board.CellAt(coord.Row, coord.Column)
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for column := range board.cells[row] {
			cells = append(cells, &board.cells[row][column])
		}
	}
	return cells
}

func (board *Board) SafeCells() []Coord {
	return append([]Coord(nil), board.safeCells...)
}

// ZeroCells returns the safe cells without any neighbouring mine, in safe
// cell order
func (board *Board) ZeroCells() []Coord {
	zeros := make([]Coord, 0)
	for _, coord := range board.safeCells {
		if board.Cell(coord).IsZero() {
			zeros = append(zeros, coord)
		}
	}
	return zeros
}

func (board *Board) NumRevealed() int {
	numRevealed := 0
	for _, cell := range board.Cells() {
		if cell.IsRevealed() {
			numRevealed++
		}
	}
	return numRevealed
}

// Neighbors returns the up to 8 cells touching the given one. The board
// does not wrap around.
func (board *Board) Neighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, 8)

	isAtTopBorder := cell.row < 1
	isAtBottomBorder := cell.row >= board.rows-1

	if cell.column >= 1 {
		neighbors = append(neighbors, board.CellAt(cell.row, cell.column-1))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.row-1, cell.column-1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.row+1, cell.column-1))
		}
	}

	if cell.column < board.columns-1 {
		neighbors = append(neighbors, board.CellAt(cell.row, cell.column+1))

		if !isAtTopBorder {
			neighbors = append(neighbors, board.CellAt(cell.row-1, cell.column+1))
		}
		if !isAtBottomBorder {
			neighbors = append(neighbors, board.CellAt(cell.row+1, cell.column+1))
		}
	}

	if !isAtTopBorder {
		neighbors = append(neighbors, board.CellAt(cell.row-1, cell.column))
	}
	if !isAtBottomBorder {
		neighbors = append(neighbors, board.CellAt(cell.row+1, cell.column))
	}

	return neighbors
}

// plantMines places numMines mines by rejection sampling: a pick landing on
// an existing mine is thrown away and drawn again.
func (board *Board) plantMines(numMines int, rand RandomSource) {
	numRetries := 0

	for planted := 0; planted < numMines; {
		row := pick(rand, board.rows)
		column := pick(rand, board.columns)

		if board.CellAt(row, column).setMine() {
			planted++
		} else {
			numRetries++
			Log.WithFields(logrus.Fields{
				"row":    row,
				"column": column,
			}).Trace("cell already holds a mine, drawing again")
		}
	}

	board.numMines += numMines

	Log.WithFields(logrus.Fields{
		"mines":   numMines,
		"retries": numRetries,
	}).Debug("planted mines")
}

func (board *Board) setMine(coord Coord) {
	if board.Cell(coord).setMine() {
		board.numMines++
	}
}

// populate computes the neighbouring mine count of every safe cell and
// records the safe cells in row-major order
func (board *Board) populate() {
	board.safeCells = board.safeCells[:0]

	for row := 0; row < board.rows; row++ {
		for column := 0; column < board.columns; column++ {
			cell := board.CellAt(row, column)
			if cell.IsMine() {
				continue
			}

			board.safeCells = append(board.safeCells, cell.Coord())
			cell.setCount(board.countMines(cell))
		}
	}
}

func (board *Board) countMines(cell *Cell) int {
	numMines := 0
	for _, neighbor := range board.Neighbors(cell) {
		if neighbor.IsMine() {
			numMines++
		}
	}
	return numMines
}
