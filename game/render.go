package game

import (
	"strings"
)

const (
	spoilerMark = "||"
	codeFence   = "```"
)

// Spoilerize hides a label behind a Discord spoiler tag
func Spoilerize(label string, spaces bool) string {
	return spoilerMark + emoteOf(label, spaces) + spoilerMark
}

func emoteOf(label string, spaces bool) string {
	if spaces {
		return " :" + label + ": "
	}
	return ":" + label + ":"
}

// Render returns how a single cell shows up in the output: spoiler-wrapped
// while hidden, bare once revealed
func (cell *Cell) Render(emote string, spaces bool) string {
	if cell.IsRevealed() {
		return emoteOf(cell.Label(emote), spaces)
	}
	return Spoilerize(cell.Label(emote), spaces)
}

func (board *Board) Matrix(emote string, spaces bool) [][]string {
	matrix := make([][]string, board.rows)
	for row := range board.cells {
		matrix[row] = make([]string, board.columns)
		for column := range board.cells[row] {
			matrix[row][column] = board.cells[row][column].Render(emote, spaces)
		}
	}
	return matrix
}

func (board *Board) TextRepresentation(emote string, spaces bool) string {
	separator := ""
	if spaces {
		separator = " "
	}

	matrix := board.Matrix(emote, spaces)
	rows := make([]string, len(matrix))
	for i, row := range matrix {
		rows[i] = strings.Join(row, separator)
	}
	return strings.Join(rows, "\n")
}

func CodeBlock(text string) string {
	return codeFence + text + codeFence
}
