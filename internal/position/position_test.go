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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/config"
	myLogging "github.com/halvorsen/hmbird/internal/logging"
	"github.com/halvorsen/hmbird/internal/move"
	. "github.com/halvorsen/hmbird/internal/types"
	"github.com/halvorsen/hmbird/internal/variant"
)

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	myLogging.GetTestLog()
	os.Exit(m.Run())
}

func TestNewStart(t *testing.T) {
	p := NewStart(variant.Classic)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastleAll, p.CastlingRights())
	assert.Equal(t, Bitboard(0), p.EnPassant())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, StartFen, p.WriteFen())
	assert.Empty(t, p.SanityCheck())
}

func TestSanityCheckCatchesOverlap(t *testing.T) {
	p := NewStart(variant.Classic)
	p.players[White] |= SqE8.Bb()
	problems := p.SanityCheck()
	assert.NotEmpty(t, problems)
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
		"rnbq1rk1/ppp1bppp/4pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 0 1",
	}
	for _, fen := range fens {
		p := New(variant.Classic)
		err := p.SetupFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.WriteFen())
		assert.Empty(t, p.SanityCheck())
		assert.Equal(t, p.ComputeHash(), p.Hash())
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	p := NewStart(variant.Classic)
	startHash := p.Hash()
	startFen := p.WriteFen()

	m := move.CreateMove(SqE2, SqE4, Pawn, SqE3)
	ok := p.Attempt(m)
	assert.True(t, ok)
	assert.NotEqual(t, startHash, p.Hash())
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, p.ComputeHash(), p.Hash())

	p.Undo()
	assert.Equal(t, startHash, p.Hash())
	assert.Equal(t, startFen, p.WriteFen())
	assert.Equal(t, White, p.SideToMove())
}

func TestApplyUndoSequenceRestoresHash(t *testing.T) {
	p := NewStart(variant.Classic)
	startHash := p.Hash()

	moves := []move.Move{
		move.CreateMove(SqE2, SqE4, Pawn, SqE3),
		move.CreateMove(SqE7, SqE5, Pawn, SqE6),
		move.CreateMove(SqG1, SqF3, Knight, SqNone),
		move.CreateMove(SqB8, SqC6, Knight, SqNone),
	}
	for _, m := range moves {
		assert.True(t, p.Attempt(m))
		assert.Equal(t, p.ComputeHash(), p.Hash())
	}
	for range moves {
		p.Undo()
	}
	assert.Equal(t, startHash, p.Hash())
	assert.Equal(t, StartFen, p.WriteFen())
}

func TestAttemptRejectsMoveLeavingKingInCheck(t *testing.T) {
	p := New(variant.Classic)
	// white king on e1 pinned by black rook on e8 with bishop on e2
	err := p.SetupFen("4r3/8/8/8/8/8/4B3/4K3 w - - 0 1")
	assert.NoError(t, err)
	m := move.CreateMove(SqE2, SqA6, Bishop, SqNone)
	ok := p.Attempt(m)
	assert.False(t, ok)
	assert.Equal(t, Piece(Bishop), p.PieceAt(SqE2))
}

func TestIsCheck(t *testing.T) {
	p := New(variant.Classic)
	err := p.SetupFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)
	assert.False(t, p.IsCheck(Black))

	err = p.SetupFen("4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsCheck(Black))
}

func TestEnPassantCapture(t *testing.T) {
	p := New(variant.Classic)
	err := p.SetupFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	assert.Equal(t, SqD6.Bb(), p.EnPassant())

	m := move.CreateCaptureMove(SqE5, SqD6, Pawn, Pawn, Black)
	ok := p.Attempt(m)
	assert.True(t, ok)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, Piece(Pawn), p.PieceAt(SqD6))

	p.Undo()
	assert.Equal(t, Piece(Pawn), p.PieceAt(SqD5))
	assert.Equal(t, PieceNone, p.PieceAt(SqD6))
}

func TestFiftyMoveDraw(t *testing.T) {
	p := New(variant.Classic)
	err := p.SetupFen("8/8/4k3/8/8/4K3/8/8 w - - 74 60")
	assert.NoError(t, err)
	assert.False(t, p.IsFiftyMoveDraw())

	ok := p.Attempt(move.CreateMove(SqE3, SqD3, King, SqNone))
	assert.True(t, ok)
	assert.True(t, p.IsFiftyMoveDraw())
}

func TestThreefoldRepetition(t *testing.T) {
	p := NewStart(variant.Classic)
	shuffle := []move.Move{
		move.CreateMove(SqG1, SqF3, Knight, SqNone),
		move.CreateMove(SqG8, SqF6, Knight, SqNone),
		move.CreateMove(SqF3, SqG1, Knight, SqNone),
		move.CreateMove(SqF6, SqG8, Knight, SqNone),
	}
	for i := 0; i < 2; i++ {
		for _, m := range shuffle {
			assert.True(t, p.Attempt(m))
		}
	}
	assert.True(t, p.IsThreeMoveRepetition())
}

func TestAlternativeWinningConditionKingOfTheHill(t *testing.T) {
	p := New(variant.KingOfTheHill)
	err := p.SetupFen("8/8/8/3K4/8/8/8/4k3 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.AlternativeWinningConditionMet(White))
	assert.False(t, p.AlternativeWinningConditionMet(Black))
}
