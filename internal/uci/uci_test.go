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

package uci

import (
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/config"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestUciHandshake(t *testing.T) {
	h := New()
	out := h.Command("uci")
	assert.Contains(t, out, "id name hmbird 0.1.0")
	assert.Contains(t, out, "id author Anders Halvorsen")
	assert.Contains(t, out, "option name Hash")
	assert.Contains(t, out, "uciok")
}

func TestIsReady(t *testing.T) {
	h := New()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposAndMoves(t *testing.T) {
	h := New()
	h.Command("position startpos moves e2e4 e7e5")
	out := h.Command("d")
	assert.Contains(t, out, "r n b q k b n r")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 1", h.pos.WriteFen())
}

func TestPositionFen(t *testing.T) {
	h := New()
	h.Command("position fen 4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", h.pos.WriteFen())
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	h := New()
	out := h.Command("position startpos moves e2e5")
	assert.Contains(t, out, "info string")
	assert.Contains(t, out, "illegal move")
}

func TestGoDepthReturnsBestMove(t *testing.T) {
	h := New()
	h.Command("position startpos")
	out := h.Command("go depth 2")
	assert.Contains(t, out, "bestmove")
}

func TestGoFindsMateInOne(t *testing.T) {
	h := New()
	h.Command("position fen k7/pp6/8/8/8/8/8/6KR w - - 0 1")
	out := h.Command("go depth 2")
	assert.Contains(t, out, "bestmove h1h8")
}

func TestPerftCommand(t *testing.T) {
	h := New()
	h.Command("position startpos")
	out := h.Command("perft 2")
	assert.Contains(t, out, "nodes 400")
}

func TestVariantCommandSwitchesAndResetsPosition(t *testing.T) {
	h := New()
	h.Command("position startpos moves e2e4")
	out := h.Command("variant exploding_knights")
	assert.Equal(t, "", out)
	assert.Equal(t, "EXPLODING_KNIGHTS", h.v.String())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", h.pos.WriteFen())
}

func TestVariantCommandRejectsUnknownName(t *testing.T) {
	h := New()
	out := h.Command("variant not_a_real_variant")
	assert.Contains(t, out, "unrecognized variant")
}

func TestSetOptionTogglesUseTT(t *testing.T) {
	h := New()
	config.Settings.Search.UseTT = true
	h.Command("setoption name Use_TT value false")
	assert.False(t, config.Settings.Search.UseTT)
	h.Command("setoption name Use_TT value true")
	assert.True(t, config.Settings.Search.UseTT)
}

func TestSetOptionUnknownNameReportsError(t *testing.T) {
	h := New()
	out := h.Command("setoption name Not_A_Real_Option value 1")
	assert.Contains(t, out, "no such option")
}

func TestQuitStopsLoop(t *testing.T) {
	h := New()
	assert.True(t, h.handle("quit"))
	assert.False(t, h.handle("isready"))
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	h := New()
	out := h.Command("frobnicate")
	assert.Equal(t, "", out)
}

func TestStripsWhitespaceVariadic(t *testing.T) {
	h := New()
	out := strings.TrimSpace(h.Command("  isready  "))
	assert.Equal(t, "readyok", out)
}
