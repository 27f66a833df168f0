// Package runs splits strings into runs of repeated characters.
package runs

// Split partitions s into its maximal runs of consecutive equal characters,
// in order. Concatenating the result gives back s.
func Split(s string) []string {
	var out []string
	var run []rune
	for _, ch := range s {
		if len(run) > 0 && ch != run[len(run)-1] {
			out = append(out, string(run))
			run = run[:0]
		}
		run = append(run, ch)
	}
	if len(run) > 0 {
		out = append(out, string(run))
	}
	return out
}
