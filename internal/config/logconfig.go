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

package config

type logConfiguration struct {
	StandardLogLevel string
	SearchLogLevel   string
	TestLogLevel     string
	UciLogEnabled    bool
}

// LogLevels maps the textual log level names accepted in the config
// file and on the command line to op/go-logging's numeric levels.
var LogLevels = map[string]int{
	"critical": 1,
	"error":    2,
	"warning":  3,
	"notice":   4,
	"info":     5,
	"debug":    6,
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Log.StandardLogLevel = "info"
	Settings.Log.SearchLogLevel = "info"
	Settings.Log.TestLogLevel = "info"
	Settings.Log.UciLogEnabled = true
}

// setupLogLvl sets LogLevel, SearchLogLevel and TestLogLevel from the level
// names in Settings.Log (config file or defaults); a name missing from
// LogLevels leaves that level unchanged. Command line overrides are applied
// by the caller after Setup returns.
func setupLogLvl() {
	if lvl, ok := LogLevels[Settings.Log.StandardLogLevel]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLevel]; ok {
		SearchLogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.TestLogLevel]; ok {
		TestLogLevel = lvl
	}
}
