// Package subseq decides subsequence containment between strings.
package subseq

// Matches reports whether needle is a subsequence of haystack: whether the
// characters of needle all appear in haystack, in order, not necessarily
// adjacent. The empty string is a subsequence of everything.
func Matches(needle, haystack string) bool {
	want := []rune(needle)
	if len(want) == 0 {
		return true
	}
	i := 0
	for _, ch := range haystack {
		if ch != want[i] {
			continue
		}
		i++
		if i == len(want) {
			return true
		}
	}
	return false
}
