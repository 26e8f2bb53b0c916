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

// Package uci implements a line-oriented front end over stdin/stdout that
// speaks a UCI-compatible protocol: the standard handshake and search
// commands, plus three engine-specific extensions ("d" to print the board,
// "variant <name>" to switch rule variants for the next game, and
// "perft <depth>" to count leaf nodes from the current position).
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/halvorsen/hmbird/internal/config"
	myLogging "github.com/halvorsen/hmbird/internal/logging"
	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/notation"
	"github.com/halvorsen/hmbird/internal/openingbook"
	"github.com/halvorsen/hmbird/internal/perft"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/search"
	"github.com/halvorsen/hmbird/internal/util"
	"github.com/halvorsen/hmbird/internal/variant"
	"github.com/halvorsen/hmbird/internal/version"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// Handler owns the running position, search and opening book, and speaks
// UCI over InIo/OutIo. The zero value is not usable; build one with New.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *position.Position
	srch   *search.Search
	book   *openingbook.Book
	v      variant.Variant
	uciLog *logging.Logger
}

// New creates a Handler wired to stdin/stdout, starting a CLASSIC game at
// the standard start position.
func New() *Handler {
	if log == nil {
		log = myLogging.GetLog()
	}
	h := &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    position.NewStart(variant.Classic),
		srch:   search.New(),
		v:      variant.Classic,
		uciLog: myLogging.GetUciLog(),
	}
	h.loadBook()
	return h
}

// Loop reads commands from InIo until "quit" or end of input.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns whatever it
// wrote to OutIo, restoring OutIo afterwards. Useful for tests.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// handle processes one line of input, returning true if it was "quit".
func (h *Handler) handle(cmd string) bool {
	if strings.TrimSpace(cmd) == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.pos = position.NewStart(h.v)
		h.srch = search.New()
	case "setoption":
		h.setOptionCommand(tokens)
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		// single-threaded synchronous search: nothing in flight to cancel
	case "perft":
		h.perftCommand(tokens)
	case "variant":
		h.variantCommand(tokens)
	case "d":
		h.send(h.pos.String())
	case "debug", "register", "ponderhit":
		// accepted, no effect
	default:
		log.Warningf("unknown UCI command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send(fmt.Sprintf("id name %s %s", version.Name, version.Number))
	h.send("id author Anders Halvorsen")
	for _, o := range optionStrings() {
		h.send(o)
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	if len(tokens) < 3 || tokens[1] != "name" {
		h.SendInfoString("malformed setoption command")
		return
	}
	i := 2
	var name strings.Builder
	for i < len(tokens) && tokens[i] != "value" {
		if name.Len() > 0 {
			name.WriteByte(' ')
		}
		name.WriteString(tokens[i])
		i++
	}
	value := ""
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	if !applyOption(h, name.String(), value) {
		h.SendInfoString(out.Sprintf("no such option '%s'", name.String()))
	}
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("malformed position command")
		return
	}
	i := 1
	switch tokens[i] {
	case "startpos":
		h.pos = position.NewStart(h.v)
		i++
	case "fen":
		i++
		var fenb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			fenb.WriteString(tokens[i])
			fenb.WriteString(" ")
			i++
		}
		p := position.New(h.v)
		if err := p.SetupFen(strings.TrimSpace(fenb.String())); err != nil {
			h.SendInfoString(out.Sprintf("malformed fen: %s", err))
			return
		}
		h.pos = p
	default:
		h.SendInfoString(out.Sprintf("malformed position command: %v", tokens))
		return
	}
	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m, ok := notation.ParseLong(h.pos, tokens[i])
			if !ok || !h.pos.Attempt(m) {
				h.SendInfoString(out.Sprintf("illegal move in position command: %s", tokens[i]))
				return
			}
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	lim := search.Limits{MoveTimeMs: config.Settings.Search.DefaultMoveMs}
	if config.Settings.Search.DefaultDepth > 0 {
		lim.Depth = config.Settings.Search.DefaultDepth
		lim.MoveTimeMs = 0
	}
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			i++
			if i >= len(tokens) {
				h.SendInfoString("go depth missing value")
				return
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.SendInfoString(out.Sprintf("go depth not a number: %s", tokens[i]))
				return
			}
			lim.Depth = d
			lim.MoveTimeMs = 0
		case "movetime":
			i++
			if i >= len(tokens) {
				h.SendInfoString("go movetime missing value")
				return
			}
			ms, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.SendInfoString(out.Sprintf("go movetime not a number: %s", tokens[i]))
				return
			}
			lim.MoveTimeMs = ms
		case "infinite":
			lim.Depth = 0
			lim.MoveTimeMs = 0
		case "perft":
			i++
			if i >= len(tokens) {
				h.SendInfoString("go perft missing depth")
				return
			}
			d, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.SendInfoString(out.Sprintf("go perft not a number: %s", tokens[i]))
				return
			}
			h.runPerft(d)
			return
		case "nodes":
			i++ // accepted, not enforced by this search
		default:
			// ignore time-control fields (wtime/btime/winc/binc/movestogo) the
			// engine does not yet use to budget a single-game clock
		}
	}

	if bm, ok := h.book.LookupMove(h.pos); config.Settings.Search.UseBook && ok {
		h.send("bestmove " + bm.String())
		return
	}

	start := time.Now()
	result := h.srch.FindBestMove(h.pos, lim)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info depth %d score cp %d time %d pv %s",
		result.DepthReached, result.Score, elapsed.Milliseconds(), result.BestMove.String()))
	h.send("bestmove " + bestMoveOr(result.BestMove))
}

func bestMoveOr(m move.Move) string {
	if m == move.Null {
		return "0000"
	}
	return m.String()
}

func (h *Handler) runPerft(depth int) {
	start := time.Now()
	nodes := perft.Perft(h.pos, depth)
	elapsed := time.Since(start)
	h.send(fmt.Sprintf("info string perft depth %d nodes %d time %d", depth, nodes, elapsed.Milliseconds()))
}

// perftCommand handles the standalone "perft <depth>" command, distinct
// from "go perft <depth>" which runs under the same "go" dispatch.
func (h *Handler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		d, err := strconv.Atoi(tokens[1])
		if err != nil {
			h.SendInfoString(out.Sprintf("perft depth not a number: %s", tokens[1]))
			return
		}
		depth = d
	}
	h.runPerft(depth)
}

func (h *Handler) variantCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("variant command requires a name")
		return
	}
	name := strings.Join(tokens[1:], " ")
	v, ok := variant.FromName(name)
	if !ok {
		h.SendInfoString(out.Sprintf("unrecognized variant: %s", name))
		return
	}
	h.v = v
	h.pos = position.NewStart(v)
	h.loadBook()
}

func (h *Handler) loadBook() {
	if !config.Settings.Search.UseBook || config.Settings.Search.BookFile == "" {
		h.book = &openingbook.Book{}
		return
	}
	path, _ := util.ResolveFile(config.Settings.Search.BookPath + "/" + config.Settings.Search.BookFile)
	f, err := os.Open(path)
	if err != nil {
		h.book = &openingbook.Book{}
		return
	}
	defer f.Close()
	b, err := openingbook.Parse(bufio.NewReader(f), h.v)
	if err != nil {
		h.book = &openingbook.Book{}
		return
	}
	h.book = b
}

// SendInfoString sends an arbitrary "info string" line, used for both
// protocol diagnostics and invalid-input reporting.
func (h *Handler) SendInfoString(s string) {
	h.send("info string " + s)
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
