// Package equity provides the heads-up preflop equity table used by the
// push/fold game, together with the two-card hand enumeration it is
// indexed by.
package equity

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	NumCards = 52
	// NumHands is the number of distinct two-card starting hands.
	NumHands = NumCards * (NumCards - 1) / 2
	// NumBoards is the number of five-card boards once both players'
	// hole cards are removed from the deck: C(48, 5).
	NumBoards = 48 * 47 * 46 * 45 * 44 / (5 * 4 * 3 * 2)
)

// Rank of a card, from Two (0) to Ace (12).
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const numRanks = 13

// Suit of a card.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

func (r Rank) String() string {
	return rankChars[r : r+1]
}

func (s Suit) String() string {
	return suitChars[s : s+1]
}

// Card is a playing card numbered 0..51 as rank*4 + suit.
type Card int

func NewCard(r Rank, s Suit) Card {
	return Card(int(r)*4 + int(s))
}

func (c Card) Rank() Rank { return Rank(c / 4) }
func (c Card) Suit() Suit { return Suit(c % 4) }

func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses a card such as "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, errors.Errorf("invalid card %q", s)
	}

	r := strings.IndexByte(rankChars, s[0])
	suit := strings.IndexByte(suitChars, s[1])
	if r < 0 || suit < 0 {
		return 0, errors.Errorf("invalid card %q", s)
	}

	return NewCard(Rank(r), Suit(suit)), nil
}

var handCards, handIndex = buildHandTables()

func buildHandTables() (cards [NumHands][2]Card, index [NumCards][NumCards]int) {
	k := 0
	for i := 0; i < NumCards; i++ {
		index[i][i] = -1
		for j := i + 1; j < NumCards; j++ {
			cards[k] = [2]Card{Card(i), Card(j)}
			index[i][j] = k
			index[j][i] = k
			k++
		}
	}

	return cards, index
}

// HandIndex returns the index of the two-card hand {c1, c2} in 0..NumHands-1.
// Hands are enumerated as (i, j) with i < j, i varying slowest. It panics
// if c1 == c2.
func HandIndex(c1, c2 Card) int {
	k := handIndex[c1][c2]
	if k < 0 {
		panic(fmt.Errorf("hand with duplicate card %v", c1))
	}

	return k
}

// HandCards returns the two cards of hand k, lower card first.
func HandCards(k int) (Card, Card) {
	cards := handCards[k]
	return cards[0], cards[1]
}

// HandString returns a hand such as "AsKd", higher card first.
func HandString(k int) string {
	c1, c2 := HandCards(k)
	return c2.String() + c1.String()
}

// Overlaps reports whether hands a and b share a card.
func Overlaps(a, b int) bool {
	a1, a2 := HandCards(a)
	b1, b2 := HandCards(b)
	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}

// HandClass identifies a starting hand up to suit isomorphism: one of the
// 169 cells of the usual 13x13 chart.
type HandClass struct {
	High, Low Rank
	Suited    bool
}

// Class returns the class of hand k.
func Class(k int) HandClass {
	c1, c2 := HandCards(k)
	// c2 > c1, so c2's rank is at least c1's.
	return HandClass{High: c2.Rank(), Low: c1.Rank(), Suited: c1.Suit() == c2.Suit()}
}

// Combos returns the number of two-card hands in the class.
func (hc HandClass) Combos() int {
	switch {
	case hc.High == hc.Low:
		return 6
	case hc.Suited:
		return 4
	default:
		return 12
	}
}

func (hc HandClass) String() string {
	switch {
	case hc.High == hc.Low:
		return hc.High.String() + hc.Low.String()
	case hc.Suited:
		return hc.High.String() + hc.Low.String() + "s"
	default:
		return hc.High.String() + hc.Low.String() + "o"
	}
}
