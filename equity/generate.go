package equity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/go-dcfr/internal/handeval"
)

// PairFrequencies counts, over every five-card board drawn from the
// remaining 48 cards, how often hand h1 beats, ties and loses to hand h2.
// The counts sum to NumBoards. h1 and h2 must not share a card.
func PairFrequencies(h1, h2 int) (win, tie, lose int) {
	a1, a2 := HandCards(h1)
	b1, b2 := HandCards(h2)
	hand1 := handeval.NewHand(int(a1), int(a2))
	hand2 := handeval.NewHand(int(b1), int(b2))
	used := hand1 | hand2

	deck := make([]handeval.Hand, 0, NumCards-4)
	for c := 0; c < NumCards; c++ {
		if !used.Contains(c) {
			deck = append(deck, handeval.NewHand(c))
		}
	}

	n := len(deck)
	for i := 0; i < n-4; i++ {
		bi := deck[i]
		for j := i + 1; j < n-3; j++ {
			bj := bi | deck[j]
			for k := j + 1; k < n-2; k++ {
				bk := bj | deck[k]
				for l := k + 1; l < n-1; l++ {
					bl := bk | deck[l]
					for m := l + 1; m < n; m++ {
						board := bl | deck[m]
						s1 := handeval.Evaluate(hand1 | board)
						s2 := handeval.Evaluate(hand2 | board)
						switch {
						case s1 > s2:
							win++
						case s1 == s2:
							tie++
						default:
							lose++
						}
					}
				}
			}
		}
	}

	return win, tie, lose
}

// suitPerms lists the 24 permutations of the four suits.
var suitPerms = func() [][4]int {
	var perms [][4]int
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			for c := 0; c < 4; c++ {
				for d := 0; d < 4; d++ {
					if a != b && a != c && a != d && b != c && b != d && c != d {
						perms = append(perms, [4]int{a, b, c, d})
					}
				}
			}
		}
	}

	return perms
}()

// permutedHands[p][k] is the index of hand k with its suits relabeled by suitPerms[p].
var permutedHands = func() [][NumHands]int {
	result := make([][NumHands]int, len(suitPerms))
	for p, perm := range suitPerms {
		for k := 0; k < NumHands; k++ {
			c1, c2 := HandCards(k)
			result[p][k] = HandIndex(
				NewCard(c1.Rank(), Suit(perm[c1.Suit()])),
				NewCard(c2.Rank(), Suit(perm[c2.Suit()])))
		}
	}

	return result
}()

// pairClass is a set of ordered hand pairs that are equal up to relabeling
// suits, and so have identical win/tie/lose counts.
type pairClass struct {
	rep     [2]int
	members [][2]int
}

// classifyPairs groups the given (hand1, hand2) pairs by suit isomorphism.
// Classes are returned in order of first appearance.
func classifyPairs(pairs [][2]int) []*pairClass {
	var classes []*pairClass
	byKey := make(map[int]*pairClass)
	for _, pair := range pairs {
		key := -1
		for p := range permutedHands {
			k := permutedHands[p][pair[0]]*NumHands + permutedHands[p][pair[1]]
			if key < 0 || k < key {
				key = k
			}
		}

		c, ok := byKey[key]
		if !ok {
			c = &pairClass{rep: pair}
			byKey[key] = c
			classes = append(classes, c)
		}

		c.members = append(c.members, pair)
	}

	return classes
}

// disjointPairs returns every pair (i, j) with i < j of hands sharing no card.
func disjointPairs() [][2]int {
	pairs := make([][2]int, 0, NumHands*(50*49/2)/2)
	for i := 0; i < NumHands; i++ {
		for j := i + 1; j < NumHands; j++ {
			if !Overlaps(i, j) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}

// Generate computes a complete table by exhaustive enumeration.
//
// The 812k unordered hand pairs collapse to about 50k classes under suit
// relabeling. Each class is enumerated once over all 1.7M boards by one
// goroutine, with at most workers running concurrently, and the counts are
// then copied to every member of the class in both orders.
func Generate(ctx context.Context, workers int) (*Table, error) {
	t := NewTable()
	if err := generatePairs(ctx, t, disjointPairs(), workers); err != nil {
		return nil, errors.Wrap(err, "generate equity table")
	}

	return t, nil
}

// generatePairs fills the entries (i, j) and (j, i) of t for each given pair.
func generatePairs(ctx context.Context, t *Table, pairs [][2]int, workers int) error {
	if workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", workers)
	}

	classes := classifyPairs(pairs)
	glog.Infof("Enumerating %d classes covering %d hand pairs", len(classes), len(pairs))

	freqs := make([][3]int, len(classes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	start := time.Now()
	var done int64
	for n, c := range classes {
		n, c := n, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			win, tie, lose := PairFrequencies(c.rep[0], c.rep[1])
			freqs[n] = [3]int{win, tie, lose}
			if d := atomic.AddInt64(&done, 1); d%1000 == 0 {
				glog.Infof("Enumerated %d/%d classes in %v", d, len(classes), time.Since(start))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for n, c := range classes {
		win, tie, lose := freqs[n][0], freqs[n][1], freqs[n][2]
		for _, pair := range c.members {
			t.Set(pair[0], pair[1], int32(2*win+tie))
			t.Set(pair[1], pair[0], int32(2*lose+tie))
		}
	}

	return nil
}
