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

package zobrist

// mt19937_64 is a direct port of the 64-bit Mersenne Twister reference
// generator (Matsumoto & Nishimura). Used, rather than Go's math/rand, so
// that the exact same key sequence can be reproduced by any reimplementation
// that seeds the same generator the same way — required for opening books
// and persisted hashes to transfer across engines.
type mt19937_64 struct {
	mt  [nn]uint64
	mti int
}

const (
	nn         = 312
	mm         = 156
	matrixA    = uint64(0xB5026F5AA96619E9)
	upperMask  = uint64(0xFFFFFFFF80000000)
	lowerMask  = uint64(0x7FFFFFFF)
)

func newMT19937_64(seed uint64) *mt19937_64 {
	g := &mt19937_64{}
	g.seed(seed)
	return g
}

func (g *mt19937_64) seed(seed uint64) {
	g.mt[0] = seed
	for i := 1; i < nn; i++ {
		g.mt[i] = 6364136223846793005*(g.mt[i-1]^(g.mt[i-1]>>62)) + uint64(i)
	}
	g.mti = nn
}

func (g *mt19937_64) next() uint64 {
	mag01 := [2]uint64{0, matrixA}

	if g.mti >= nn {
		var i int
		for i = 0; i < nn-mm; i++ {
			x := (g.mt[i] & upperMask) | (g.mt[i+1] & lowerMask)
			g.mt[i] = g.mt[i+mm] ^ (x >> 1) ^ mag01[x&1]
		}
		for ; i < nn-1; i++ {
			x := (g.mt[i] & upperMask) | (g.mt[i+1] & lowerMask)
			g.mt[i] = g.mt[i+(mm-nn)] ^ (x >> 1) ^ mag01[x&1]
		}
		x := (g.mt[nn-1] & upperMask) | (g.mt[0] & lowerMask)
		g.mt[nn-1] = g.mt[mm-1] ^ (x >> 1) ^ mag01[x&1]
		g.mti = 0
	}

	x := g.mt[g.mti]
	g.mti++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71D67FFFEDA60000
	x ^= (x << 37) & 0xFFF7EEE000000000
	x ^= x >> 43

	return x
}
