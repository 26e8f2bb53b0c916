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

// Package variant holds the rule-variant tag and the pure predicates that
// drive every rule-sensitive decision in move generation, make/unmake and
// the evaluator. Hot paths branch on these predicates rather than
// special-casing variant names directly.
package variant

import "strings"

// Variant identifies one rule set. The zero value is Classic.
type Variant int8

// Recognized variants.
const (
	Classic Variant = iota
	ExplodingKnights
	Compulsion
	CompulsionAndBackstabbing
	ForcedCheck
	ForcedCheckAndBackstabbing
	Loser
	KingOfTheHill
	KingOfTheHillAndCompulsion
	Unrecognized
)

var names = map[Variant]string{
	Classic:                    "CLASSIC",
	ExplodingKnights:           "EXPLODING_KNIGHTS",
	Compulsion:                 "COMPULSION",
	CompulsionAndBackstabbing:  "COMPULSION_AND_BACKSTABBING",
	ForcedCheck:                "FORCED_CHECK",
	ForcedCheckAndBackstabbing: "FORCED_CHECK_AND_BACKSTABBING",
	Loser:                      "LOSER",
	KingOfTheHill:              "KING_OF_THE_HILL",
	KingOfTheHillAndCompulsion: "KING_OF_THE_HILL_AND_COMPULSION",
}

// String returns the canonical upper-snake-case name of the variant.
func (v Variant) String() string {
	if n, ok := names[v]; ok {
		return n
	}
	return "UNRECOGNIZED_VARIANT"
}

// normalize strips everything but letters, upper-cased, so that
// "king of the hill", "King-Of-The-Hill" and "KING_OF_THE_HILL" all compare
// equal.
func normalize(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

var byNormalizedName map[string]Variant

func init() {
	byNormalizedName = make(map[string]Variant, len(names))
	for v, n := range names {
		byNormalizedName[normalize(n)] = v
	}
}

// FromName parses a variant name, case- and punctuation-insensitive.
// Returns (Unrecognized, false) if the name doesn't match any variant.
func FromName(name string) (Variant, bool) {
	v, ok := byNormalizedName[normalize(name)]
	if !ok {
		return Unrecognized, false
	}
	return v, true
}

// FriendlyFire reports whether own pieces (except own king) are legal
// capture targets under v.
func (v Variant) FriendlyFire() bool {
	switch v {
	case CompulsionAndBackstabbing, ForcedCheckAndBackstabbing:
		return true
	default:
		return false
	}
}

// Backstabbing reports whether the backstabbing ruleset (moves may place
// one's own undefended pieces at risk without further restriction) is
// active. It is carried as a distinct predicate from FriendlyFire because
// the two combined variants layer it onto forced-capture/forced-check
// respectively; today it has no independent rule effect beyond what
// ForcedCapture/ForcedCheck already encode, and is kept for completeness of
// the variant table.
func (v Variant) Backstabbing() bool {
	switch v {
	case CompulsionAndBackstabbing, ForcedCheckAndBackstabbing:
		return true
	default:
		return false
	}
}

// ForcedCapture reports whether, if any capture is legal, non-captures are
// illegal.
func (v Variant) ForcedCapture() bool {
	switch v {
	case Compulsion, CompulsionAndBackstabbing, KingOfTheHillAndCompulsion, Loser:
		return true
	default:
		return false
	}
}

// ForcedCheck reports whether, if any move delivers check, non-checking
// moves are illegal.
func (v Variant) ForcedCheck() bool {
	switch v {
	case ForcedCheck, ForcedCheckAndBackstabbing:
		return true
	default:
		return false
	}
}

// CheckDisabled reports whether a king may be left in or moved into check,
// i.e. "check" has no meaning under v.
func (v Variant) CheckDisabled() bool {
	return v == Loser
}

// WinByKingCapture reports whether losing the king loses the game.
func (v Variant) WinByKingCapture() bool {
	return v == ExplodingKnights
}

// KingOfTheHill reports whether moving one's own king to the center four
// squares wins immediately.
func (v Variant) KingOfTheHill() bool {
	return v == KingOfTheHill || v == KingOfTheHillAndCompulsion
}

// DestructiveMoves reports whether some move kinds under v remove
// information the move word cannot carry, requiring make/unmake to
// snapshot the full position (currently: knight captures in
// ExplodingKnights).
func (v Variant) DestructiveMoves() bool {
	return v == ExplodingKnights
}

// WinByCheckmate reports whether delivering checkmate wins the game.
// Disabled in Loser, where being checkmated is instead a win for the
// checkmated side.
func (v Variant) WinByCheckmate() bool {
	return v != Loser
}

// IsDestructiveMove reports whether applying a move, described by whether it
// is a knight move and whether it captures, triggers the destructive-move
// snapshot mechanism under v.
func (v Variant) IsDestructiveMove(isKnightMove, isCapture bool) bool {
	return v.DestructiveMoves() && isKnightMove && isCapture
}
