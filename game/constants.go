package game

import (
	"fmt"
	"strings"
)

type CellState int
type ReturnType int

const (
	// Placeholder marks a cell whose mine count has not been computed yet
	Placeholder CellState = iota - 1
	Hidden
	Revealed
	Mine
)

func (state CellState) String() string {
	switch state {
	case Placeholder:
		return "placeholder"
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Mine:
		return "mine"
	default:
		return fmt.Sprintf("CellState(%d)", int(state))
	}
}

const (
	Text ReturnType = iota
	Code
	Matrix
)

var returnTypes = map[string]ReturnType{
	"text":   Text,
	"code":   Code,
	"matrix": Matrix,

	"emoji":      Text,
	"code-block": Code,
	"raw-grid":   Matrix,
}

func ParseReturnType(name string) (ReturnType, error) {
	if returnType, isValid := returnTypes[strings.ToLower(name)]; isValid {
		return returnType, nil
	}
	return Text, fmt.Errorf("invalid return type %q", name)
}

func (returnType ReturnType) String() string {
	switch returnType {
	case Text:
		return "text"
	case Code:
		return "code"
	case Matrix:
		return "matrix"
	default:
		return fmt.Sprintf("ReturnType(%d)", int(returnType))
	}
}

func (returnType ReturnType) MarshalYAML() (interface{}, error) {
	return returnType.String(), nil
}

func (returnType *ReturnType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	parsed, err := ParseReturnType(name)
	if err != nil {
		return err
	}
	*returnType = parsed
	return nil
}

const (
	DefaultRows    = 9
	DefaultColumns = 9
	DefaultMines   = 10
	DefaultEmote   = "boom"
)

// NumberLabels holds the label of every possible neighbouring mine count
var NumberLabels = [9]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
}

var NoReveal = Coord{Row: -1, Column: -1}
