package cif

import (
	"fmt"
	"strings"
)

// Loop is a loop_ table: column names and rows of values
type Loop struct {
	Names []string
	Rows  [][]string
}

// Column returns the index of a column name, or -1
func (l *Loop) Column(name string) int {
	for i, n := range l.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// Block is one data_ block: single data items and loop tables.
// All data names are stored lower case.
type Block struct {
	Name  string
	Items map[string]string
	Loops []*Loop
}

// Item returns a single data item
func (b *Block) Item(name string) (string, bool) {
	v, ok := b.Items[name]
	return v, ok
}

// FirstItem returns the first of several alternative data names that is present
func (b *Block) FirstItem(names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := b.Items[name]; ok {
			return v, true
		}
	}
	return "", false
}

// FindLoop returns the loop containing the data name, or nil
func (b *Block) FindLoop(name string) *Loop {
	for _, l := range b.Loops {
		if l.Column(name) >= 0 {
			return l
		}
	}
	return nil
}

// parseBlock reads the first data block out of a token stream.
// A second data_ header ends the block.
func parseBlock(tokens []token) (*Block, error) {
	block := &Block{Items: make(map[string]string)}

	i := 0
	for i < len(tokens) && !tokens[i].isData() {
		i++
	}
	if i == len(tokens) {
		return nil, &ParseError{Msg: "no data_ block found"}
	}
	block.Name = tokens[i].val[5:]
	i++

	for i < len(tokens) {
		t := tokens[i]
		switch {
		case t.isData():
			return block, nil

		case t.isLoop():
			loop, next, err := parseLoop(tokens, i+1)
			if err != nil {
				return nil, err
			}
			block.Loops = append(block.Loops, loop)
			i = next

		case t.isKeyword():
			if i+1 >= len(tokens) || tokens[i+1].isKeyword() {
				return nil, &ParseError{Line: t.line, Msg: fmt.Sprintf("data name %s has no value", t.val)}
			}
			block.Items[strings.ToLower(t.val)] = tokens[i+1].val
			i += 2

		default:
			return nil, &ParseError{Line: t.line, Msg: "unexpected value", Text: t.val}
		}
	}

	return block, nil
}

// parseLoop reads the names and values of a loop starting at tokens[i]
func parseLoop(tokens []token, i int) (*Loop, int, error) {
	loop := &Loop{}
	start := i

	for i < len(tokens) && tokens[i].isKeyword() && strings.HasPrefix(tokens[i].val, "_") {
		loop.Names = append(loop.Names, strings.ToLower(tokens[i].val))
		i++
	}
	if len(loop.Names) == 0 {
		line := 0
		if start > 0 {
			line = tokens[start-1].line
		}
		return nil, i, &ParseError{Line: line, Msg: "loop_ without data names"}
	}

	var values []token
	for i < len(tokens) && !tokens[i].isKeyword() {
		values = append(values, tokens[i])
		i++
	}

	if len(values)%len(loop.Names) != 0 {
		line := tokens[start].line
		return nil, i, &ParseError{
			Line: line,
			Msg:  fmt.Sprintf("loop has %d values for %d columns", len(values), len(loop.Names)),
		}
	}

	for row := 0; row < len(values); row += len(loop.Names) {
		vals := make([]string, len(loop.Names))
		for col := range loop.Names {
			vals[col] = values[row+col].val
		}
		loop.Rows = append(loop.Rows, vals)
	}

	return loop, i, nil
}
