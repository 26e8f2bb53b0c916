/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/logging"
	"github.com/halvorsen/hmbird/internal/perft"
	"github.com/halvorsen/hmbird/internal/position"
	"github.com/halvorsen/hmbird/internal/testsuite"
	"github.com/halvorsen/hmbird/internal/uci"
	"github.com/halvorsen/hmbird/internal/variant"
	"github.com/halvorsen/hmbird/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	variantName := flag.String("variant", "CLASSIC", "rule variant to start with\n(CLASSIC|EXPLODING_KNIGHTS|COMPULSION|COMPULSION_AND_BACKSTABBING|\nFORCED_CHECK|FORCED_CHECK_AND_BACKSTABBING|LOSER|\nKING_OF_THE_HILL|KING_OF_THE_HILL_AND_COMPULSION)")
	testSuite := flag.String("testsuite", "", "path to a file or folder of EPD test positions")
	testMovetime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testSearchDepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	perftDepth := flag.Int("perft", 0, "runs perft on the start position (or -fen) to the given depth and exits")
	fen := flag.String("fen", position.StartFen, "fen for -perft")
	profileMode := flag.String("profile", "", "enable pprof profiling\n(cpu|mem|goroutine)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "goroutine":
		defer profile.Start(profile.GoroutineProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	logging.GetLog()

	v, ok := variant.FromName(*variantName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unrecognized -variant %q\n", *variantName)
		os.Exit(1)
	}

	if *perftDepth != 0 {
		p := position.New(v)
		if err := p.SetupFen(*fen); err != nil {
			fmt.Fprintf(os.Stderr, "invalid -fen: %v\n", err)
			os.Exit(1)
		}
		for d := 1; d <= *perftDepth; d++ {
			start := time.Now()
			nodes := perft.Perft(p, d)
			elapsed := time.Since(start)
			out.Printf("Perft depth %d: %d nodes in %s\n", d, nodes, elapsed)
		}
		return
	}

	if *testSuite != "" {
		fi, err := os.Stat(*testSuite)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		moveTime := time.Duration(*testMovetime) * time.Millisecond
		switch {
		case fi.IsDir():
			testsuite.RunFolder(*testSuite, v, moveTime, *testSearchDepth)
		default:
			ts, err := testsuite.New(*testSuite, v)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ts.Run(moveTime, *testSearchDepth)
		}
		return
	}

	u := uci.New()
	u.Loop()
}

func printVersionInfo() {
	out.Printf("%s %s\n", version.Name, version.Number)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
