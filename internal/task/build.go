package task

// Build calls gen exactly count times and returns the problems in call order.
func Build(gen Generator, count int) []Problem {
	if count <= 0 {
		return []Problem{}
	}
	out := make([]Problem, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, gen.Generate())
	}
	return out
}
