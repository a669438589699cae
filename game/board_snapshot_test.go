package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoresBoard(t *testing.T) {
	config := NewGameConfig()
	config.Rows, config.Columns, config.Mines = 10, 12, 20
	config.RevealFirstCell = true
	config.Seed = 1234

	generator := NewGenerator(config)
	result, err := generator.Start()
	require.NoError(t, err)

	serialized, err := generator.Snapshot().Serialize()
	require.NoError(t, err)

	snapshot, err := LoadSnapshot(serialized)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), snapshot.Seed)

	board, err := snapshot.CreateBoard()
	require.NoError(t, err)

	assert.Equal(t, result.Board.Matrix(DefaultEmote, true), board.Matrix(DefaultEmote, true))
	assert.Equal(t, result.Board.SafeCells(), board.SafeCells())
	assert.Equal(t, 20, board.NumMines())
}

func TestSnapshotLayout(t *testing.T) {
	board := boardFromLayout(t,
		"*...",
		"....",
	)
	board.RevealSurroundings(Coord{1, 3}, true)

	assert.Equal(t, "*...\n#...", board.Snapshot(0).SerializedBoard)
}

func TestCreateBoardRejectsMalformedSnapshots(t *testing.T) {
	tests := []struct {
		name  string
		board string
	}{
		{name: "empty", board: ""},
		{name: "ragged", board: "*..\n.."},
		{name: "unknown cell", board: "*.x\n..."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot := &BoardSnapshot{SerializedBoard: test.board}
			board, err := snapshot.CreateBoard()
			assert.Error(t, err)
			assert.Nil(t, board)
		})
	}
}

func TestLoadSnapshotRejectsInvalidYAML(t *testing.T) {
	_, err := LoadSnapshot("seed: [not a number")
	assert.Error(t, err)
}
