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

package testsuite

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/evaluator"
	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/search"
	. "github.com/halvorsen/hmbird/internal/types"
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

func TestParseLineBestMove(t *testing.T) {
	tt := parseLine(`4k3/8/8/8/8/8/8/R3K3 w Q - 0 1 bm Ra8; id "test.1";`, variant.Classic)
	if assert.NotNil(t, tt) {
		assert.Equal(t, bestMove, tt.op)
		assert.Equal(t, "test.1", tt.id)
		assert.Equal(t, 1, len(tt.targets))
		assert.Equal(t, "a1a8", tt.targets[0].String())
	}
}

func TestParseLineAvoidMove(t *testing.T) {
	tt := parseLine(`4k3/8/8/8/8/8/8/R3K3 w Q - 0 1 am Ra2; id "test.2";`, variant.Classic)
	if assert.NotNil(t, tt) {
		assert.Equal(t, avoidMove, tt.op)
		assert.Equal(t, "a1a2", tt.targets[0].String())
	}
}

func TestParseLineDirectMate(t *testing.T) {
	tt := parseLine(`k7/pp6/8/8/8/8/8/6KR w - - 0 1 dm 1; id "mate.1";`, variant.Classic)
	if assert.NotNil(t, tt) {
		assert.Equal(t, directMate, tt.op)
		assert.Equal(t, 1, tt.mateDepth)
		assert.Equal(t, "mate.1", tt.id)
	}
}

func TestParseLineIgnoresCommentsAndBlankLines(t *testing.T) {
	assert.Nil(t, parseLine("# a whole-line comment", variant.Classic))
	assert.Nil(t, parseLine("", variant.Classic))
	assert.Nil(t, parseLine("   ", variant.Classic))
}

func TestParseLineStripsTrailingComment(t *testing.T) {
	tt := parseLine(`4k3/8/8/8/8/8/8/R3K3 w Q - 0 1 bm Ra8; id "test.3"; # a trailing note`, variant.Classic)
	if assert.NotNil(t, tt) {
		assert.Equal(t, "test.3", tt.id)
	}
}

func TestParseLineRejectsMalformedLine(t *testing.T) {
	assert.Nil(t, parseLine("this is not a valid epd line at all", variant.Classic))
}

func TestJudgeDirectMate(t *testing.T) {
	tt := &Test{op: directMate, mateDepth: 1}
	assert.Equal(t, succeededResult, judge(tt, search.Result{Score: evaluator.CheckmateScore - 1}))
	assert.Equal(t, failedResult, judge(tt, search.Result{Score: 100}))
}

func TestJudgeBestMove(t *testing.T) {
	want := move.CreateMove(SqE2, SqE4, Pawn, SqE3)
	tt := &Test{op: bestMove, targets: []move.Move{want}}
	assert.Equal(t, succeededResult, judge(tt, search.Result{BestMove: want}))
	assert.Equal(t, failedResult, judge(tt, search.Result{BestMove: move.Null}))
}

func TestJudgeAvoidMove(t *testing.T) {
	bad := move.CreateMove(SqE2, SqE4, Pawn, SqE3)
	tt := &Test{op: avoidMove, targets: []move.Move{bad}}
	assert.Equal(t, failedResult, judge(tt, search.Result{BestMove: bad}))
	assert.Equal(t, succeededResult, judge(tt, search.Result{BestMove: move.Null}))
}

func TestSuiteRunFindsMateInOne(t *testing.T) {
	dir := t.TempDir()
	epdPath := path.Join(dir, "mate.epd")
	const epd = "k7/pp6/8/8/8/8/8/6KR w - - 0 1 dm 1; id \"mate.1\";\n"
	assert.NoError(t, os.WriteFile(epdPath, []byte(epd), 0o644))

	s, err := New(epdPath, variant.Classic)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(s.Tests))

	sum := s.Run(0, 2)
	assert.Equal(t, Summary{Total: 1, Succeeded: 1, Failed: 0}, sum)
}
