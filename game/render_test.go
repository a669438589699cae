package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpoilerize(t *testing.T) {
	assert.Equal(t, "|| :hello: ||", Spoilerize("hello", true))
	assert.Equal(t, "||:hello:||", Spoilerize("hello", false))
}

func TestCellRender(t *testing.T) {
	board := boardFromLayout(t,
		"*.",
		"..",
	)

	assert.Equal(t, "|| :tada: ||", board.CellAt(0, 0).Render("tada", true))
	assert.Equal(t, "||:one:||", board.CellAt(1, 1).Render("tada", false))

	board.CellAt(1, 1).reveal()
	assert.Equal(t, " :one: ", board.CellAt(1, 1).Render("tada", true))
	assert.Equal(t, ":one:", board.CellAt(1, 1).Render("tada", false))
}

func TestTextRepresentation(t *testing.T) {
	board := boardFromLayout(t, "..", "..")

	assert.Equal(t,
		"|| :zero: || || :zero: ||\n|| :zero: || || :zero: ||",
		board.TextRepresentation(DefaultEmote, true),
	)
	assert.Equal(t,
		"||:zero:||||:zero:||\n||:zero:||||:zero:||",
		board.TextRepresentation(DefaultEmote, false),
	)
}

func TestTextRepresentationOfUnpopulatedBoard(t *testing.T) {
	board := newBoard(1, 3)

	assert.Equal(t, "||:zero:||||:zero:||||:zero:||", board.TextRepresentation(DefaultEmote, false))
}

func TestMatrix(t *testing.T) {
	board := boardFromLayout(t,
		"*..",
		"...",
	)
	board.CellAt(1, 2).reveal()

	assert.Equal(t, [][]string{
		{"||:boom:||", "||:one:||", "||:zero:||"},
		{"||:one:||", "||:one:||", ":zero:"},
	}, board.Matrix(DefaultEmote, false))
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "```||:one:||```", CodeBlock("||:one:||"))
}
