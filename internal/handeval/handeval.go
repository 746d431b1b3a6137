// Package handeval scores 7-card hold'em hands.
//
// Cards are numbered 0..51 as rank*4 + suit, with rank 0 the deuce and
// rank 12 the ace.
package handeval

import (
	"math/bits"
)

// Hand is a set of cards. Each suit occupies its own 16-bit lane, with the
// rank as the bit position within the lane.
type Hand uint64

// NewHand returns the hand containing the given cards.
func NewHand(cards ...int) Hand {
	var h Hand
	for _, c := range cards {
		h = h.Add(c)
	}

	return h
}

func cardBit(card int) Hand {
	return 1 << uint((card%4)*16+card/4)
}

// Add returns h with card added.
func (h Hand) Add(card int) Hand {
	return h | cardBit(card)
}

// Contains reports whether card is in h.
func (h Hand) Contains(card int) bool {
	return h&cardBit(card) != 0
}

// CountCards returns the number of cards in h.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// suitMask returns the ranks held in the given suit as a 13-bit mask.
func (h Hand) suitMask(suit int) uint16 {
	return uint16(h >> uint(16*suit))
}

// Category is the class of a made hand, ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var categoryStr = [...]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

func (c Category) String() string {
	return categoryStr[c]
}

// Strength orders hands: a larger Strength is a better hand, and equal
// strengths split the pot.
//
// The category occupies the high bits and up to five ranks follow, four
// bits each, most significant first.
type Strength uint32

// Category returns the class of the hand.
func (s Strength) Category() Category {
	return Category(s >> 20)
}

func (s Strength) String() string {
	return s.Category().String()
}

func makeStrength(c Category, ranks ...int) Strength {
	s := Strength(c) << 20
	shift := 16
	for _, r := range ranks {
		s |= Strength(r) << uint(shift)
		shift -= 4
	}

	return s
}

// Evaluate returns the strength of the best five-card hand in h.
// h should hold between five and seven cards.
func Evaluate(h Hand) Strength {
	suitMasks := [4]uint16{h.suitMask(0), h.suitMask(1), h.suitMask(2), h.suitMask(3)}
	rankMask := suitMasks[0] | suitMasks[1] | suitMasks[2] | suitMasks[3]

	flushSuit := -1
	for suit, mask := range suitMasks {
		if bits.OnesCount16(mask) >= 5 {
			flushSuit = suit
			break
		}
	}

	if flushSuit >= 0 {
		if high := straightHigh(suitMasks[flushSuit]); high >= 0 {
			return makeStrength(StraightFlush, high)
		}
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]
	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		kicker := highestRank(rankMask &^ (1 << uint(quad)))
		return makeStrength(FourOfAKind, quad, kicker)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		pairCandidates := pairsMask | (tripsMask &^ (1 << uint(trip)))
		if pair := highestRank(pairCandidates); pair >= 0 {
			return makeStrength(FullHouse, trip, pair)
		}
	}

	if flushSuit >= 0 {
		return makeStrength(Flush) | topRanks(suitMasks[flushSuit], 5, 16)
	}

	if high := straightHigh(rankMask); high >= 0 {
		return makeStrength(Straight, high)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		return makeStrength(ThreeOfAKind, trip) | topRanks(rankMask&^(1<<uint(trip)), 2, 12)
	}

	if high := highestRank(pairsMask); high >= 0 {
		rest := pairsMask &^ (1 << uint(high))
		if low := highestRank(rest); low >= 0 {
			// A third pair can still play as the kicker.
			kicker := highestRank(rankMask &^ (1<<uint(high) | 1<<uint(low)))
			return makeStrength(TwoPair, high, low, kicker)
		}

		return makeStrength(Pair, high) | topRanks(rankMask&^(1<<uint(high)), 3, 12)
	}

	return makeStrength(HighCard) | topRanks(rankMask, 5, 16)
}

// straightHigh returns the top rank of the highest straight in mask, or -1.
// The wheel (A-2-3-4-5) counts as five-high.
func straightHigh(mask uint16) int {
	// Bit k of run is set when ranks k..k+4 are all present.
	run := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if run != 0 {
		return highestRank(run) + 4
	}

	const wheel = 1<<12 | 0xf
	if mask&wheel == wheel {
		return 3
	}

	return -1
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}

	return bits.Len16(mask) - 1
}

// topRanks packs the n highest ranks in mask in descending order, four
// bits each, the first at bit offset shift.
func topRanks(mask uint16, n, shift int) Strength {
	var s Strength
	for ; n > 0 && mask != 0; n-- {
		top := highestRank(mask)
		s |= Strength(top) << uint(shift)
		shift -= 4
		mask &^= 1 << uint(top)
	}

	return s
}
