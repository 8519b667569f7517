package generator

// scriptedRand returns a rand source that replays the given draws in order.
// Tests fail loudly if a stage consumes more draws than scripted.
func scriptedRand(draws ...float64) func() float64 {
	i := 0
	return func() float64 {
		if i >= len(draws) {
			panic("scripted rand exhausted")
		}
		v := draws[i]
		i++
		return v
	}
}

// noRand panics on any draw; used to prove a path consumes none.
func noRand() float64 {
	panic("unexpected random draw")
}
