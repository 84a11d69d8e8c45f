package position

// Perft counts leaf nodes (play sequences) from the position for a given depth.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	plays := b.Plays()
	if depth == 1 {
		return uint64(len(plays))
	}
	var nodes uint64
	for i := range plays {
		nodes += Perft(plays[i].Board, depth-1)
	}
	return nodes
}

// PerftDivide returns, for each legal root play keyed by its UCI string, the
// number of leaf nodes reachable at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, p := range b.Plays() {
		result[p.UCI()] = Perft(p.Board, depth-1)
	}
	return result
}
