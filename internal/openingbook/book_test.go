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

package openingbook

import (
	"bufio"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/config"
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

const startEntry = `** VISUAL ENTRIES **
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w KQkq -
[
u e2e4 100%
]
}
`

func TestParseSingleEntryLookup(t *testing.T) {
	b, err := Parse(bufio.NewReader(strings.NewReader(startEntry)), variant.Classic)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(b.entries))

	p := position.NewStart(variant.Classic)
	s, ok := b.Lookup(p)
	assert.True(t, ok)
	assert.Equal(t, "e2e4", s)
}

func TestLookupMoveParsesAgainstLegalMoves(t *testing.T) {
	b, err := Parse(bufio.NewReader(strings.NewReader(startEntry)), variant.Classic)
	assert.NoError(t, err)

	p := position.NewStart(variant.Classic)
	m, ok := b.LookupMove(p)
	assert.True(t, ok)
	assert.Equal(t, "e2e4", m.String())
}

func TestLookupMissingPositionReturnsFalse(t *testing.T) {
	b, err := Parse(bufio.NewReader(strings.NewReader(startEntry)), variant.Classic)
	assert.NoError(t, err)

	p := position.New(variant.Classic)
	err = p.SetupFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	_, ok := b.Lookup(p)
	assert.False(t, ok)
}

// the second entry's option has no "u" prefix, so it must round-trip
// through the short-algebraic parser rather than the long-algebraic one.
func TestParseMultipleEntriesShortAlgebraicOption(t *testing.T) {
	const two = `** VISUAL ENTRIES **
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w KQkq -
[
u e2e4 100%
]
}
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . P . . .
. . . . . . . .
P P P P . P P P
R N B Q K B N R
b KQkq e3
[
Nf6 100%
]
}
`
	b, err := Parse(bufio.NewReader(strings.NewReader(two)), variant.Classic)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(b.entries))

	open := position.NewStart(variant.Classic)
	s, ok := b.Lookup(open)
	assert.True(t, ok)
	assert.Equal(t, "e2e4", s)

	reply := position.New(variant.Classic)
	err = reply.SetupFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	assert.NoError(t, err)
	s, ok = b.Lookup(reply)
	assert.True(t, ok)
	assert.Equal(t, "Nf6", s)

	m, ok := b.LookupMove(reply)
	assert.True(t, ok)
	assert.Equal(t, "g8f6", m.String())
}

// the trailer's "*" wildcard on castling rights lets one entry match the
// start position whether or not a caller has already cleared a right.
func TestWildcardTrailerMatchesEitherCastlingState(t *testing.T) {
	const wildcard = `** VISUAL ENTRIES **
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w * -
[
u e2e4 100%
]
}
`
	b, err := Parse(bufio.NewReader(strings.NewReader(wildcard)), variant.Classic)
	assert.NoError(t, err)

	p := position.NewStart(variant.Classic)
	_, ok := b.Lookup(p)
	assert.True(t, ok)
}

func TestLookupPicksAmongWeightedCandidates(t *testing.T) {
	const multi = `** VISUAL ENTRIES **
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w KQkq -
[
u e2e4 33%
u d2d4 33%
u g1f3 34%
]
}
`
	b, err := Parse(bufio.NewReader(strings.NewReader(multi)), variant.Classic)
	assert.NoError(t, err)

	candidates := map[string]bool{"e2e4": true, "d2d4": true, "g1f3": true}
	p := position.NewStart(variant.Classic)
	for i := 0; i < 20; i++ {
		s, ok := b.Lookup(p)
		assert.True(t, ok)
		assert.True(t, candidates[s], "unexpected candidate %q", s)
	}
}

func TestParseCommentLinesAreIgnored(t *testing.T) {
	const withComments = `** VISUAL ENTRIES **
// this book has one opening line
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w KQkq -
[
// only one reply on file
u e2e4 100%
]
}
`
	b, err := Parse(bufio.NewReader(strings.NewReader(withComments)), variant.Classic)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(b.entries))
	assert.Equal(t, 1, len(b.entries[0].options))
}

func TestParseIgnoresEntriesOutsideVisualSection(t *testing.T) {
	const other = `** SOME OTHER SECTION **
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w KQkq -
[
u e2e4 100%
]
}
`
	b, err := Parse(bufio.NewReader(strings.NewReader(other)), variant.Classic)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(b.entries))
}

func TestParseRejectsMalformedEntry(t *testing.T) {
	const malformed = `** VISUAL ENTRIES **
{
r n b q k b n r
p p p p p p p p
. . . . . . . .
. . . . . . . .
. . . . . . . .
. . . . . . . .
P P P P P P P P
R N B Q K B N R
w KQkq -
[
not-a-valid-option
]
}
`
	_, err := Parse(bufio.NewReader(strings.NewReader(malformed)), variant.Classic)
	assert.Error(t, err)
}
