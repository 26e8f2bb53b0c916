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
	"strconv"
	"strings"

	"github.com/halvorsen/hmbird/internal/config"
	"github.com/halvorsen/hmbird/internal/search"
)

// optionKind mirrors the UCI option type vocabulary (check/spin/button/
// string); this engine never registers a combo option.
type optionKind int

const (
	kindCheck optionKind = iota
	kindSpin
	kindButton
	kindString
)

// uciOption describes one engine-tunable setting as exposed to the UCI
// "option" handshake, plus the handler invoked when "setoption" changes it.
type uciOption struct {
	name    string
	kind    optionKind
	def     string
	min     string
	max     string
	handler func(h *Handler, value string)
}

// options lists every option this engine registers, in handshake order.
var options = []uciOption{
	{name: "Hash", kind: kindSpin, def: "10000000", min: "1", max: "100000000", handler: func(h *Handler, v string) {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return
		}
		config.Settings.Search.TTSize = n
		h.srch = search.New()
	}},
	{name: "Clear Hash", kind: kindButton, handler: func(h *Handler, v string) {
		h.srch = search.New()
	}},
	{name: "Use_TT", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Search.UseTT = parseBool(v, config.Settings.Search.UseTT)
	}},
	{name: "Use_TT_Move", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Search.UseTTMove = parseBool(v, config.Settings.Search.UseTTMove)
	}},
	{name: "Use_TT_Value", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Search.UseTTValue = parseBool(v, config.Settings.Search.UseTTValue)
	}},
	{name: "Use_PVS", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Search.UsePVS = parseBool(v, config.Settings.Search.UsePVS)
	}},
	{name: "OwnBook", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Search.UseBook = parseBool(v, config.Settings.Search.UseBook)
		h.loadBook()
	}},
	{name: "Use_Mobility", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Eval.UseMobility = parseBool(v, config.Settings.Eval.UseMobility)
	}},
	{name: "Use_Hanging_Penalty", kind: kindCheck, def: "true", handler: func(h *Handler, v string) {
		config.Settings.Eval.UseHangingPenalty = parseBool(v, config.Settings.Eval.UseHangingPenalty)
	}},
}

func parseBool(s string, fallback bool) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}

// optionStrings renders every registered option as the "option name ..."
// line the UCI handshake expects.
func optionStrings() []string {
	lines := make([]string, 0, len(options))
	for _, o := range options {
		var sb strings.Builder
		sb.WriteString("option name ")
		sb.WriteString(o.name)
		sb.WriteString(" type ")
		switch o.kind {
		case kindCheck:
			sb.WriteString("check default ")
			sb.WriteString(o.def)
		case kindSpin:
			sb.WriteString("spin default ")
			sb.WriteString(o.def)
			sb.WriteString(" min ")
			sb.WriteString(o.min)
			sb.WriteString(" max ")
			sb.WriteString(o.max)
		case kindButton:
			sb.WriteString("button")
		case kindString:
			sb.WriteString("string default ")
			sb.WriteString(o.def)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// applyOption dispatches a "setoption name ... value ..." command to the
// matching registered option, reporting whether one was found.
func applyOption(h *Handler, name, value string) bool {
	for _, o := range options {
		if strings.EqualFold(o.name, name) {
			o.handler(h, value)
			return true
		}
	}
	return false
}
