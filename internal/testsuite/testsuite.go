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

// Package testsuite runs EPD (Extended Position Description) test files
// against the search: each line is a FEN plus one of the opcodes "bm" (best
// move), "am" (avoid move) or "dm" (direct mate in N), used as an external
// oracle check of search quality.
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/evaluator"
	myLogging "github.com/halvorsen/hmbird/internal/logging"
	"github.com/halvorsen/hmbird/internal/move"
	"github.com/halvorsen/hmbird/internal/notation"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/search"
	"github.com/halvorsen/hmbird/internal/variant"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

type opcode uint8

// implemented EPD opcodes.
const (
	none opcode = iota
	bestMove
	avoidMove
	directMate
)

func (o opcode) String() string {
	switch o {
	case bestMove:
		return "bm"
	case avoidMove:
		return "am"
	case directMate:
		return "dm"
	default:
		return "?"
	}
}

type result uint8

const (
	notTested result = iota
	failedResult
	succeededResult
)

func (r result) String() string {
	switch r {
	case failedResult:
		return "FAILED"
	case succeededResult:
		return "SUCCESS"
	default:
		return "NOT TESTED"
	}
}

// Test is one EPD line, before and after it is run.
type Test struct {
	id        string
	fen       string
	line      string
	op        opcode
	targets   []move.Move
	mateDepth int

	actual move.Move
	score  int32
	r      result
}

// Summary totals the outcome of a Suite run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Suite is a parsed EPD file, ready to Run.
type Suite struct {
	Tests    []*Test
	Variant  variant.Variant
	FilePath string
}

// New reads and parses filePath as an EPD test file under rule variant v.
func New(filePath string, v variant.Variant) (*Suite, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := &Suite{Variant: v, FilePath: filePath}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		t := parseLine(scanner.Text(), v)
		if t != nil {
			s.Tests = append(s.Tests, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// RunFolder runs every ".epd" file in dir and prints an aggregate summary.
func RunFolder(dir string, v variant.Variant, moveTime time.Duration, depth int) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var total Summary
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".epd" {
			continue
		}
		s, err := New(filepath.Join(dir, e.Name()), v)
		if err != nil {
			out.Printf("skipping %s: %v\n", e.Name(), err)
			continue
		}
		sum := s.Run(moveTime, depth)
		total.Total += sum.Total
		total.Succeeded += sum.Succeeded
		total.Failed += sum.Failed
	}
	out.Printf("\nFolder totals: %d/%d succeeded\n", total.Succeeded, total.Total)
}

// Run executes every test in the suite with a fresh search instance per
// position, printing a per-test line and a final summary.
func (s *Suite) Run(moveTime time.Duration, depth int) Summary {
	if len(s.Tests) == 0 {
		out.Println("no tests to run")
		return Summary{}
	}
	config.Settings.Search.UseBook = false

	lim := search.Limits{Depth: depth, MoveTimeMs: int(moveTime.Milliseconds())}

	out.Printf("Running test suite %s (%d tests)\n", s.FilePath, len(s.Tests))
	for i, t := range s.Tests {
		srch := search.New()
		p := position.New(s.Variant)
		if err := p.SetupFen(t.fen); err != nil {
			t.r = failedResult
			continue
		}
		res := srch.FindBestMove(p, lim)
		t.actual = res.BestMove
		t.score = res.Score
		t.r = judge(t, res)
		out.Printf("%3d/%d  %-8s  %-8s  id=%s\n", i+1, len(s.Tests), t.r, t.actual.String(), t.id)
	}

	var sum Summary
	sum.Total = len(s.Tests)
	for _, t := range s.Tests {
		switch t.r {
		case succeededResult:
			sum.Succeeded++
		case failedResult:
			sum.Failed++
		}
	}
	out.Printf("Summary: %d/%d succeeded\n", sum.Succeeded, sum.Total)
	return sum
}

func judge(t *Test, res search.Result) result {
	switch t.op {
	case directMate:
		// a forced mate in mateDepth moves is found within 2*mateDepth-1
		// plies; require a score close enough to CheckmateScore that no
		// non-mating line could have produced it.
		if res.Score >= evaluator.CheckmateScore-int32(2*t.mateDepth) {
			return succeededResult
		}
		return failedResult
	case bestMove:
		for _, m := range t.targets {
			if m == res.BestMove {
				return succeededResult
			}
		}
		return failedResult
	case avoidMove:
		for _, m := range t.targets {
			if m == res.BestMove {
				return failedResult
			}
		}
		return succeededResult
	default:
		return notTested
	}
}

var epdRegex = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)
var trailingComment = regexp.MustCompile(`^(.*)#([^;]*)$`)

func parseLine(line string, v variant.Variant) *Test {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "#") || line == "" {
		return nil
	}
	line = trailingComment.ReplaceAllString(line, "$1")

	m := epdRegex.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	fen, op, rest, id := m[1], m[2], m[3], m[5]

	p := position.New(v)
	if err := p.SetupFen(fen); err != nil {
		log.Warningf("invalid fen in EPD line: %s", fen)
		return nil
	}

	t := &Test{id: id, fen: fen, line: line}
	switch op {
	case "bm":
		t.op = bestMove
	case "am":
		t.op = avoidMove
	case "dm":
		t.op = directMate
	default:
		return nil
	}

	if t.op == directMate {
		depth, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			log.Warningf("invalid dm depth in EPD line: %s", rest)
			return nil
		}
		t.mateDepth = depth
		return t
	}

	for _, token := range strings.Fields(rest) {
		token = strings.TrimRight(token, "!?")
		if mv, ok := notation.ParseShort(p, token); ok {
			t.targets = append(t.targets, mv)
		}
	}
	if len(t.targets) == 0 {
		log.Warningf("no valid target moves in EPD line: %s", line)
		return nil
	}
	return t
}
