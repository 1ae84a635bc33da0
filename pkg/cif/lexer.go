package cif

import (
	"bufio"
	"bytes"
	"strings"
)

// token is one CIF value or keyword with the line it started on.
// Quoted and text-field values are never keywords even if they look like one.
type token struct {
	val    string
	line   int
	quoted bool
}

// isKeyword reports whether the token is a data name, loop_ or data_ header
func (t token) isKeyword() bool {
	if t.quoted {
		return false
	}
	return strings.HasPrefix(t.val, "_") || t.isLoop() || t.isData()
}

func (t token) isLoop() bool {
	return !t.quoted && strings.EqualFold(t.val, "loop_")
}

func (t token) isData() bool {
	return !t.quoted && len(t.val) >= 5 && strings.EqualFold(t.val[:5], "data_")
}

func iswhite(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// tokenize splits CIF text into tokens. It handles # comments, 'single' and
// "double" quoted values (a quote only closes when followed by white space)
// and ;-delimited multi-line text fields.
func tokenize(data []byte) ([]token, error) {
	var tokens []token
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()

		if strings.HasPrefix(line, ";") {
			start := n
			var text strings.Builder
			text.WriteString(line[1:])
			closed := false
			for scanner.Scan() {
				n++
				next := scanner.Text()
				if strings.HasPrefix(next, ";") {
					closed = true
					break
				}
				text.WriteByte('\n')
				text.WriteString(next)
			}
			if !closed {
				return nil, &ParseError{Line: start, Msg: "unterminated text field"}
			}
			tokens = append(tokens, token{val: strings.TrimSpace(text.String()), line: start, quoted: true})
			continue
		}

		lineTokens, err := splitLine(line, n)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: n, Msg: err.Error()}
	}

	return tokens, nil
}

// splitLine breaks one line at white space, honouring quotes and comments
func splitLine(line string, n int) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(line) {
		for i < len(line) && iswhite(line[i]) {
			i++
		}
		if i == len(line) || line[i] == '#' {
			break
		}

		if q := line[i]; q == '\'' || q == '"' {
			end := -1
			for j := i + 1; j < len(line); j++ {
				if line[j] == q && (j+1 == len(line) || iswhite(line[j+1])) {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, &ParseError{Line: n, Msg: "unterminated quoted value", Text: line}
			}
			tokens = append(tokens, token{val: line[i+1 : end], line: n, quoted: true})
			i = end + 1
			continue
		}

		start := i
		for i < len(line) && !iswhite(line[i]) {
			i++
		}
		tokens = append(tokens, token{val: line[start:i], line: n})
	}
	return tokens, nil
}
