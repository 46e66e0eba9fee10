// Package scatter implements the random word-placement engine.
//
// Given a list of tokens and a canvas size, the engine estimates a
// rectangular footprint for each token, searches for a non-overlapping
// position via bounded rejection sampling, and retries the whole pass
// with a fresh shuffle when some tokens could not be placed.
//
// The engine is deliberately greedy: it does no bin packing and no
// spatial indexing. Rejection sampling with a generous attempt budget
// is adequate for the low-to-moderate token counts a word cloud holds,
// and reshuffling on partial failure usually frees the space a stuck
// token needed.
//
// All randomness flows through an injected *rand.Rand, so layouts are
// reproducible from a seed:
//
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	placements, err := scatter.Layout(rng, tokens, scatter.DefaultConfig())
package scatter
