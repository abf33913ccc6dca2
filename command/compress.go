package command

// Compress merges runs of consecutive Straight commands into a single
// Straight carrying their summed distance, leaving Turn and Scan commands
// untouched and in place. Applying Compress twice yields the same result
// as applying it once (spec.md §6).
func Compress(cmds []Command) []Command {
	out := make([]Command, 0, len(cmds))

	for _, c := range cmds {
		s, isStraight := c.(Straight)
		if !isStraight {
			out = append(out, c)
			continue
		}

		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(Straight); ok {
				out[len(out)-1] = Straight{Dist: prev.Dist + s.Dist}
				continue
			}
		}
		out = append(out, s)
	}

	return dropZeroStraights(out)
}

// dropZeroStraights removes any Straight whose merged distance cancelled
// out to zero, since a zero-distance move has no wire encoding.
func dropZeroStraights(cmds []Command) []Command {
	out := cmds[:0]
	for _, c := range cmds {
		if s, ok := c.(Straight); ok && s.Dist == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}
