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

// evalConfiguration holds the tuning knobs for the static evaluator.
type evalConfiguration struct {
	Tempo int16

	UseMobility   bool
	MobilityBonus int16 // per quasi-legal destination of a knight, bishop, rook or queen

	BishopPairBonus int16 // once, if a side holds both bishops

	UseHangingPenalty bool
	HangingPawnMalus   int16
	HangingMinorMalus  int16
	HangingRookMalus   int16
	HangingQueenMalus  int16
	HangingKingMalus   int16

	CastlingRightBonus int16 // per remaining castling right

	// King of the Hill bonuses, applied to a king standing exactly two
	// (Ring2) or three (Ring3) king steps from the board's center four
	// squares; a king on or next to the center squares gets neither.
	KingOfTheHillRing2Bonus int16
	KingOfTheHillRing3Bonus int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.Tempo = 34

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = 4

	Settings.Eval.BishopPairBonus = 30

	Settings.Eval.UseHangingPenalty = true
	Settings.Eval.HangingPawnMalus = 8
	Settings.Eval.HangingMinorMalus = 40
	Settings.Eval.HangingRookMalus = 80
	Settings.Eval.HangingQueenMalus = 120
	Settings.Eval.HangingKingMalus = 220

	Settings.Eval.CastlingRightBonus = 20

	Settings.Eval.KingOfTheHillRing2Bonus = 400
	Settings.Eval.KingOfTheHillRing3Bonus = 200
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
	if Settings.Eval.MobilityBonus == 0 {
		Settings.Eval.MobilityBonus = 4
	}
}
