package slider

// ApplyRangeConstraint places candidate on handle h of current without letting
// the handles cross. A low candidate above the high handle is clamped to it and
// vice versa, so the handles may coincide but never invert.
func ApplyRangeConstraint(h HandleIndex, candidate float64, current Pair) Pair {
	next := current
	if h == HandleHigh {
		if candidate < current.Low {
			candidate = current.Low
		}
		next.High = candidate
		return next
	}
	if candidate > current.High {
		candidate = current.High
	}
	next.Low = candidate
	return next
}

// constrain applies ApplyRangeConstraint when v is a pair and is a plain
// replacement otherwise.
func constrain(h HandleIndex, candidate float64, v Value) Value {
	if !v.IsRange() {
		return Single(candidate)
	}
	p := ApplyRangeConstraint(h, candidate, v.Pair())
	return PairOf(p.Low, p.High)
}
