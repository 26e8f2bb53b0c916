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

package notation

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/movegen"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/variant"
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

func TestParseLongStartMove(t *testing.T) {
	p := position.NewStart(variant.Classic)
	m, ok := ParseLong(p, "e2e4")
	assert.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestParseLongNull(t *testing.T) {
	p := position.NewStart(variant.Classic)
	m, ok := ParseLong(p, "null")
	assert.True(t, ok)
	assert.Equal(t, move.Null, m)
	m, ok = ParseLong(p, "0000")
	assert.True(t, ok)
	assert.Equal(t, move.Null, m)
}

func TestParseLongRejectsIllegalMove(t *testing.T) {
	p := position.NewStart(variant.Classic)
	_, ok := ParseLong(p, "e2e5")
	assert.False(t, ok)
}

func TestParseLongPromotion(t *testing.T) {
	p := position.New(variant.Classic)
	err := p.SetupFen("8/4P3/8/8/8/8/4k3/4K3 w - - 0 1")
	assert.NoError(t, err)
	m, ok := ParseLong(p, "e7e8q")
	assert.True(t, ok)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, "e7e8q", m.String())
}

func TestWriteLongRoundTrip(t *testing.T) {
	p := position.NewStart(variant.Classic)
	for _, m := range movegen.LegalMoves(p) {
		s := WriteLong(m)
		back, ok := ParseLong(p, s)
		assert.True(t, ok)
		assert.Equal(t, m, back)
	}
}

func TestWriteShortStartingKnightMoves(t *testing.T) {
	p := position.NewStart(variant.Classic)
	m, ok := ParseLong(p, "g1f3")
	assert.True(t, ok)
	assert.Equal(t, "Nf3", WriteShort(p, m))
}

func TestWriteShortCastling(t *testing.T) {
	p := position.New(variant.Classic)
	err := p.SetupFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	m, ok := ParseLong(p, "e1g1")
	assert.True(t, ok)
	assert.Equal(t, "O-O", WriteShort(p, m))
}

func TestWriteShortCheckSuffix(t *testing.T) {
	p := position.New(variant.Classic)
	err := p.SetupFen("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	assert.NoError(t, err)
	m, ok := ParseLong(p, "a1a8")
	assert.True(t, ok)
	assert.Equal(t, "Ra8+", WriteShort(p, m))
}

func TestWriteShortMateSuffix(t *testing.T) {
	p := position.New(variant.Classic)
	err := p.SetupFen("k7/pp6/8/8/8/8/8/6KR w - - 0 1")
	assert.NoError(t, err)
	m, ok := ParseLong(p, "h1h8")
	assert.True(t, ok)
	assert.Equal(t, "Rh8#", WriteShort(p, m))
}

func TestShortRoundTripAllLegalMoves(t *testing.T) {
	p := position.New(variant.Classic)
	err := p.SetupFen("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	assert.NoError(t, err)
	for _, m := range movegen.LegalMoves(p) {
		san := WriteShort(p, m)
		back, ok := ParseShort(p, san)
		assert.True(t, ok, "san=%s", san)
		assert.Equal(t, m, back)
	}
}
