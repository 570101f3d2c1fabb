package quiz

import "github.com/saulo-duarte/academy-functions/internal/shuffle"

// Shuffle returns q with its options in random order and CorrectIndex
// pointing at the same answer text. Questions with fewer than two options or
// without a usable answer pointer are returned unchanged.
func Shuffle(q Question) Question {
	return shuffleWith(q, shuffle.Shuffle[string])
}

// ShuffleWith is Shuffle with the random source supplied by the caller.
func ShuffleWith(q Question, intn func(n int) int) Question {
	return shuffleWith(q, func(opts []string) shuffle.Result[string] {
		return shuffle.ShuffleWith(opts, intn)
	})
}

func shuffleWith(q Question, perm func([]string) shuffle.Result[string]) Question {
	if len(q.Options) < 2 || !q.HasValidAnswer() {
		return q
	}

	res := perm(q.Options)
	out := q
	out.Options = res.Shuffled
	out.CorrectIndex = res.PositionOf(q.CorrectIndex)
	return out
}

func ShuffleAll(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = Shuffle(q)
	}
	return out
}
