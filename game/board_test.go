package game

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.TraceLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

// sequence replays fixed values, looping once exhausted
type sequence struct {
	values []float64
	draws  int
}

func (s *sequence) Float64() float64 {
	value := s.values[s.draws%len(s.values)]
	s.draws++
	return value
}

// boardFromLayout builds a populated board from rows of '*' (mine) and '.'
func boardFromLayout(t *testing.T, layout ...string) *Board {
	t.Helper()

	board := newBoard(len(layout), len(layout[0]))
	for row, line := range layout {
		require.Len(t, line, board.Columns())
		for column, c := range line {
			if c == '*' {
				board.setMine(Coord{Row: row, Column: column})
			}
		}
	}
	board.populate()
	return board
}

func bruteForceCount(board *Board, row, column int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, column+dc
			if r >= 0 && r < board.Rows() && c >= 0 && c < board.Columns() && board.cells[r][c].IsMine() {
				count++
			}
		}
	}
	return count
}

func TestNewBoard(t *testing.T) {
	board := newBoard(15, 8)

	assert.Equal(t, 15, board.Rows())
	assert.Equal(t, 8, board.Columns())
	assert.Len(t, board.Cells(), 120)
	for _, cell := range board.Cells() {
		assert.Equal(t, Placeholder, cell.State())
	}
	assert.Nil(t, board.CellAt(15, 0))
	assert.Nil(t, board.CellAt(0, -1))
}

func TestNeighbors(t *testing.T) {
	board := newBoard(3, 4)

	tests := []struct {
		name     string
		coord    Coord
		expected int
	}{
		{name: "top left corner", coord: Coord{0, 0}, expected: 3},
		{name: "bottom right corner", coord: Coord{2, 3}, expected: 3},
		{name: "top edge", coord: Coord{0, 1}, expected: 5},
		{name: "left edge", coord: Coord{1, 0}, expected: 5},
		{name: "interior", coord: Coord{1, 2}, expected: 8},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			neighbors := board.Neighbors(board.Cell(test.coord))
			require.Len(t, neighbors, test.expected)

			seen := map[Coord]bool{}
			for _, neighbor := range neighbors {
				require.NotNil(t, neighbor)
				assert.NotEqual(t, test.coord, neighbor.Coord())
				assert.LessOrEqual(t, absDiff(neighbor.Row(), test.coord.Row), 1)
				assert.LessOrEqual(t, absDiff(neighbor.Column(), test.coord.Column), 1)
				assert.False(t, seen[neighbor.Coord()], "duplicate neighbour %v", neighbor)
				seen[neighbor.Coord()] = true
			}
		})
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func TestPlantMinesRetriesOccupiedCells(t *testing.T) {
	board := newBoard(3, 3)
	rand := &sequence{values: []float64{
		0.0, 0.0, // (0, 0)
		0.1, 0.2, // (0, 0) again, discarded
		0.5, 0.9, // (1, 2)
	}}

	board.plantMines(2, rand)

	assert.Equal(t, 6, rand.draws)
	assert.Equal(t, 2, board.NumMines())
	assert.True(t, board.CellAt(0, 0).IsMine())
	assert.True(t, board.CellAt(1, 2).IsMine())

	numMines := 0
	for _, cell := range board.Cells() {
		if cell.IsMine() {
			numMines++
		}
	}
	assert.Equal(t, 2, numMines)
}

func TestPopulateCountsNeighbouringMines(t *testing.T) {
	board := boardFromLayout(t,
		".........",
		".*.......",
		"...*.....",
		".........",
	)

	assert.Equal(t, 2, board.CellAt(2, 2).NumMines())
	assert.Equal(t, 1, board.CellAt(0, 0).NumMines())
	assert.Equal(t, 0, board.CellAt(3, 8).NumMines())
	assert.True(t, board.CellAt(2, 3).IsMine())
}

func TestSafeCellsAreRowMajor(t *testing.T) {
	board := boardFromLayout(t,
		"*.",
		".*",
		"..",
	)

	assert.Equal(t, []Coord{{0, 1}, {1, 0}, {2, 0}, {2, 1}}, board.SafeCells())
	assert.Empty(t, board.ZeroCells())
}

func TestGeneratedBoards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		rows, columns, mines int
	}{
		{name: "9x9(10)", rows: 9, columns: 9, mines: 10},
		{name: "9x9(40)", rows: 9, columns: 9, mines: 40},
		{name: "16x16(40)", rows: 16, columns: 16, mines: 40},
		{name: "30x16(99)", rows: 16, columns: 30, mines: 99},
		{name: "1x3(1)", rows: 1, columns: 3, mines: 1},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			for seed := int64(1); seed <= 20; seed++ {
				config := NewGameConfig()
				config.Rows, config.Columns, config.Mines = test.rows, test.columns, test.mines
				config.Seed = seed

				result, err := NewGenerator(config).Start()
				require.NoError(t, err)
				board := result.Board

				numMines := 0
				for _, cell := range board.Cells() {
					if cell.IsMine() {
						numMines++
						continue
					}
					require.Equal(t, Hidden, cell.State())
					require.Equal(t, bruteForceCount(board, cell.Row(), cell.Column()), cell.NumMines(), "seed %d cell %v", seed, cell)
				}

				require.Equal(t, test.mines, numMines)
				require.Equal(t, test.mines, board.NumMines())
				require.Len(t, board.SafeCells(), test.rows*test.columns-test.mines)
			}
		})
	}
}
