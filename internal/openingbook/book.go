//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package openingbook parses the "** VISUAL ENTRIES **" opening book text
// format and answers weighted-random move queries by tokenized visual
// equality.
//
// A book file is a sequence of "**"-marked sections; only
// "** VISUAL ENTRIES **" is understood, and "//" lines are comments. Inside
// that section, each entry is braced:
//
//	{
//	<8 board lines><trailer: side castling ep>
//	[
//	<notation> <percent>%
//	u <notation> <percent>%
//	...
//	]
//	}
//
// The board-plus-trailer block is matched against a queried position's own
// visual rendering by splitting both into whitespace-separated tokens and
// comparing position-by-position, with "*" a wildcard on either side — so
// an entry can leave castling rights or the en-passant square unspecified.
// A "u" prefix on an option marks it long algebraic ("universal" in the
// original's terms); without it the notation is short algebraic.
package openingbook

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/notation"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/variant"
)

const visualEntriesSection = "** VISUAL ENTRIES **"

// option is one weighted reply recorded for a book entry.
type option struct {
	notation  string
	universal bool
	weight    int
}

// entry is one VisualEntry: a tokenized board+trailer pattern and the
// options available from a position matching it.
type entry struct {
	tokens  []string
	options []option
}

// Book is an in-memory opening book: an ordered list of visual entries,
// matched in file order against a queried position.
type Book struct {
	entries []entry
}

// Parse reads a "** VISUAL ENTRIES **" opening book from r. The book text
// itself is variant-agnostic (entries are matched by visual tokens, not by
// rule set); v is accepted for symmetry with every other Parse/Setup entry
// point in the engine and so a caller never needs to special-case this one.
func Parse(r *bufio.Reader, _ variant.Variant) (*Book, error) {
	b := &Book{}

	section := ""
	var cache []string
	lineNo := 0
	for {
		raw, err := r.ReadString('\n')
		if raw == "" && err != nil {
			break
		}
		lineNo++
		trimmed := strings.TrimSpace(raw)

		if strings.HasPrefix(trimmed, "**") {
			section = trimmed
			if err != nil {
				break
			}
			continue
		}
		if strings.HasPrefix(trimmed, "//") {
			if err != nil {
				break
			}
			continue
		}
		if section == visualEntriesSection {
			cache = append(cache, trimmed)
			if trimmed == "}" {
				e, perr := parseEntry(cache)
				if perr != nil {
					return nil, fmt.Errorf("openingbook: entry ending at line %d: %w", lineNo, perr)
				}
				b.entries = append(b.entries, e)
				cache = nil
			}
		}
		if err != nil {
			break
		}
	}
	return b, nil
}

// parseEntry parses one brace-delimited entry, cache holding every
// trimmed, non-blank line from the opening "{" through the closing "}".
func parseEntry(cache []string) (entry, error) {
	var lines []string
	for _, l := range cache {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 || lines[0] != "{" {
		return entry{}, fmt.Errorf("visual entry does not start with '{'")
	}
	idx := 1

	var board []string
	for idx < len(lines) && lines[idx] != "[" {
		board = append(board, lines[idx])
		idx++
	}
	if idx == len(lines) {
		return entry{}, fmt.Errorf("visual entry missing '['")
	}
	idx++ // skip "["

	var options []option
	for idx < len(lines) && lines[idx] != "]" {
		opt, err := parseOption(lines[idx])
		if err != nil {
			return entry{}, err
		}
		options = append(options, opt)
		idx++
	}
	if idx == len(lines) {
		return entry{}, fmt.Errorf("visual entry missing ']'")
	}
	idx++ // skip "]"

	if idx != len(lines)-1 || lines[idx] != "}" {
		return entry{}, fmt.Errorf("visual entry does not end with '}'")
	}

	return entry{tokens: strings.Fields(strings.Join(board, "\n")), options: options}, nil
}

func parseOption(line string) (option, error) {
	tokens := strings.Fields(line)
	universal := false
	if len(tokens) == 3 && tokens[0] == "u" {
		universal = true
		tokens = tokens[1:]
	}
	if len(tokens) != 2 {
		return option{}, fmt.Errorf("invalid visual entry option %q", line)
	}
	percent := strings.TrimSuffix(tokens[1], "%")
	weight, err := strconv.Atoi(percent)
	if err != nil {
		return option{}, fmt.Errorf("invalid visual entry option %q: %w", line, err)
	}
	return option{notation: tokens[0], universal: universal, weight: weight}, nil
}

// matches reports whether e's board+trailer pattern matches position
// tokens token-for-token, with "*" a wildcard on either side.
func (e entry) matches(tokens []string) bool {
	if len(e.tokens) != len(tokens) {
		return false
	}
	for i, t := range e.tokens {
		if t == "*" || tokens[i] == "*" {
			continue
		}
		if t != tokens[i] {
			return false
		}
	}
	return true
}

// matchingEntry returns the first entry whose pattern matches p's visual
// rendering and that carries at least one option, or (nil, false).
func (b *Book) matchingEntry(p *position.Position) (*entry, bool) {
	tokens := strings.Fields(p.WriteVisual())
	for i := range b.entries {
		e := &b.entries[i]
		if e.matches(tokens) && len(e.options) > 0 {
			return e, true
		}
	}
	return nil, false
}

// Lookup returns a weighted-random reply notation for p's current position,
// or ("", false) if no entry matches. The returned string carries whatever
// notation the book entry used (short algebraic, or long algebraic); callers
// that need to apply the move should use LookupMove instead, which
// dispatches to the right parser.
func (b *Book) Lookup(p *position.Position) (string, bool) {
	e, ok := b.matchingEntry(p)
	if !ok {
		return "", false
	}
	return e.options[pickIndex(e.options)].notation, true
}

// LookupMove is Lookup plus notation parsing against p's legal moves,
// dispatching to long or short algebraic per the matched option's prefix.
func (b *Book) LookupMove(p *position.Position) (move.Move, bool) {
	e, ok := b.matchingEntry(p)
	if !ok {
		return move.Null, false
	}
	picked := e.options[pickIndex(e.options)]
	if picked.universal {
		return notation.ParseLong(p, picked.notation)
	}
	return notation.ParseShort(p, picked.notation)
}

func pickIndex(options []option) int {
	total := 0
	for _, o := range options {
		total += o.weight
	}
	if total <= 0 {
		return rand.Intn(len(options))
	}
	pick := rand.Intn(total)
	cumulative := 0
	for i, o := range options {
		cumulative += o.weight
		if pick < cumulative {
			return i
		}
	}
	return len(options) - 1
}
