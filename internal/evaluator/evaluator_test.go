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

package evaluator

import (
	"os"
	"path"
	"runtime"
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

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	p := position.NewStart(variant.Classic)
	assert.EqualValues(t, 0, Evaluate(p))
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	p := position.New(variant.Classic)
	err := p.SetupFen("8/8/8/3k4/8/4P3/4K3/8 w - - 0 1")
	assert.NoError(t, err)

	mirror := position.New(variant.Classic)
	err = mirror.SetupFen("8/4k3/4p3/8/3K4/8/8/8 b - - 0 1")
	assert.NoError(t, err)

	assert.Equal(t, Evaluate(p), Evaluate(mirror))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	p := position.New(variant.Classic)
	err := p.SetupFen("4k3/8/8/8/8/8/4P3/4K2R w K - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, Evaluate(p), int32(0))
}

func TestEvaluateLoserVariantInvertsScore(t *testing.T) {
	config.Settings.Eval.Tempo = 0
	classic := position.New(variant.Classic)
	err := classic.SetupFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)

	loser := position.New(variant.Loser)
	err = loser.SetupFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	assert.NoError(t, err)

	assert.Equal(t, Evaluate(classic), -Evaluate(loser))
}

func TestMateScoreIncreasesWithPly(t *testing.T) {
	assert.Less(t, MateScore(1), MateScore(3))
	assert.Less(t, MateScore(1), int32(0))
}
