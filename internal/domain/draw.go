package domain

// Draw returns an integer uniformly distributed over [r.Min, r.Max].
func Draw(r Range, rng RNG) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.Min + rng.IntN(r.Max-r.Min+1), nil
}
