package game

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// ErrTooManyMines is returned by Start when mines would cover half of the
// board or more
var ErrTooManyMines = errors.New("too many mines for the board size")

type GameConfig struct {
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Mines   int    `yaml:"mines"`
	Emote   string `yaml:"emote"`

	// Whether a random safe cell should be shown up front
	RevealFirstCell bool `yaml:"reveal_first_cell"`
	// Whether revealing a zero cell should also reveal its connected region
	ExpandZeros bool `yaml:"expand_zeros"`
	// Whether emotes are padded with spaces and separated by one
	Spaces     bool       `yaml:"spaces"`
	ReturnType ReturnType `yaml:"return_type"`

	// Seed for the default random source; 0 seeds from the clock
	Seed int64 `yaml:"seed"`
	// Rand overrides the seeded source when set
	Rand RandomSource `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:            DefaultRows,
		Columns:         DefaultColumns,
		Mines:           DefaultMines,
		Emote:           DefaultEmote,
		RevealFirstCell: false,
		ExpandZeros:     true,
		Spaces:          true,
		ReturnType:      Text,
	}
}

func (config GameConfig) withDefaults() GameConfig {
	if config.Rows <= 0 {
		config.Rows = DefaultRows
	}
	if config.Columns <= 0 {
		config.Columns = DefaultColumns
	}
	if config.Mines <= 0 {
		config.Mines = DefaultMines
	}
	if config.Emote == "" {
		config.Emote = DefaultEmote
	}
	return config
}

// Valid reports whether the board leaves more safe cells than mines
func (config GameConfig) Valid() bool {
	return config.Rows*config.Columns > config.Mines*2
}

// Generator builds one board. It owns its board and random source, so
// concurrent callers should each use their own.
type Generator struct {
	config GameConfig
	rand   RandomSource
	seed   int64

	board *Board
}

func NewGenerator(config GameConfig) *Generator {
	config = config.withDefaults()

	generator := &Generator{
		config: config,
		rand:   config.Rand,
		seed:   config.Seed,
	}

	if generator.rand == nil {
		if generator.seed == 0 {
			generator.seed = timeSeed()
		}
		generator.rand = NewSeededSource(generator.seed)
	}

	return generator
}

func (generator *Generator) Config() GameConfig {
	return generator.config
}

// Seed is the seed of the default random source. It means nothing when a
// custom source was injected.
func (generator *Generator) Seed() int64 {
	return generator.seed
}

func (generator *Generator) Board() *Board {
	return generator.board
}

type Result struct {
	Board      *Board
	Seed       int64
	ReturnType ReturnType
	// Cell the first reveal focused on, or NoReveal
	Revealed Coord

	Text   string
	Matrix [][]string
}

// Output returns the rendered board in the configured form: a string for
// Text and Code, a [][]string for Matrix
func (result *Result) Output() interface{} {
	if result.ReturnType == Matrix {
		return result.Matrix
	}
	return result.Text
}

// Start generates a fresh board, optionally reveals its first cell and
// renders it
func (generator *Generator) Start() (*Result, error) {
	config := generator.config
	if !config.Valid() {
		Log.WithFields(logrus.Fields{
			"rows":    config.Rows,
			"columns": config.Columns,
			"mines":   config.Mines,
		}).Debug("refusing to generate board")
		return nil, ErrTooManyMines
	}

	generator.board = newBoard(config.Rows, config.Columns)
	generator.board.plantMines(config.Mines, generator.rand)
	generator.board.populate()
	revealed := generator.RevealFirst()

	result := &Result{
		Board:      generator.board,
		Seed:       generator.seed,
		ReturnType: config.ReturnType,
		Revealed:   revealed,
	}

	switch config.ReturnType {
	case Code:
		result.Text = CodeBlock(generator.board.TextRepresentation(config.Emote, config.Spaces))
	case Matrix:
		result.Matrix = generator.board.Matrix(config.Emote, config.Spaces)
	default:
		result.Text = generator.board.TextRepresentation(config.Emote, config.Spaces)
	}

	return result, nil
}

// RevealFirst shows one random safe cell, preferring cells without
// neighbouring mines when zero expansion is enabled, and returns it
func (generator *Generator) RevealFirst() Coord {
	board := generator.board
	if !generator.config.RevealFirstCell || board == nil || len(board.safeCells) == 0 {
		return NoReveal
	}

	candidates := board.safeCells
	if generator.config.ExpandZeros {
		if zeros := board.ZeroCells(); len(zeros) > 0 {
			candidates = zeros
		}
	}

	coord := candidates[pick(generator.rand, len(candidates))]
	cell := board.Cell(coord)

	if !generator.config.ExpandZeros || !cell.IsZero() {
		cell.reveal()
		Log.WithField("cell", coord).Debug("revealed first cell")
		return coord
	}

	numRevealed := board.RevealSurroundings(coord, true)
	Log.WithFields(logrus.Fields{
		"cell":     coord,
		"revealed": numRevealed,
	}).Debug("expanded first cell")

	return coord
}

// RevealSurroundings reveals the cell at coord and its neighbours. With
// recurse, neighbours without surrounding mines are expanded the same way.
// Mines are never revealed. It returns the number of newly revealed cells.
func (board *Board) RevealSurroundings(coord Coord, recurse bool) int {
	start := board.Cell(coord)
	if start == nil {
		return 0
	}

	numRevealed := 0
	flood(
		start,
		recurse,
		func(cell *Cell) {
			if cell.reveal() {
				numRevealed++
			}
		},
		board.Neighbors,
	)
	return numRevealed
}

func (generator *Generator) RevealSurroundings(coord Coord, recurse bool) int {
	if generator.board == nil {
		return 0
	}
	return generator.board.RevealSurroundings(coord, recurse)
}
