package quoted_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shape-warrior-t/challenge-portfolio/quoted"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"no delimiters", "hello world", nil},
		{"single literal", "'a'", []string{"a"}},
		{"empty literal", "''", []string{""}},
		{"empty literal in text", "x''y", []string{""}},
		{"multiple literals", "say 'hi' and 'bye'", []string{"hi", "bye"}},
		{"adjacent literals merge", "'a''b'", []string{"a'b"}},
		{"escaped delimiter", "'it''s'", []string{"it's"}},
		{"only an escaped delimiter", "''''", []string{"'"}},
		{"consecutive escapes", "'a''''b'", []string{"a''b"}},
		{"leading and trailing escapes", "''' '''''", []string{"' ''"}},
		{"literals back to back with text", "'a'x'b'", []string{"a", "b"}},
		{"unicode", "'héllo' '日本語'", []string{"héllo", "日本語"}},
		{"nul passes through", "'a\x00b'", []string{"a\x00b"}},
		{"nul outside literals", "a\x00b'c'", []string{"c"}},
		{"trailing literal", "prefix 'tail'", []string{"tail"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quoted.Extract(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUnmatched(t *testing.T) {
	texts := []string{
		"'",
		"'abc",
		"abc'",
		"a'b'c'd",
		"'''abc'''def'''",
		"no quotes then one '",
	}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			got, err := quoted.Extract(text)
			require.ErrorIs(t, err, quoted.ErrUnmatchedDelimiter)
			// A failed extraction yields nothing, including literals that
			// closed before the unmatched delimiter.
			require.Nil(t, got)
		})
	}
}

func TestExtractClosingOrder(t *testing.T) {
	got, err := quoted.Extract("'first' mixed 'second''s' case '' 'last'")
	require.NoError(t, err)
	// Words between literals are skipped, not extracted.
	require.Equal(t, []string{"first", "second's", "", "last"}, got)
}

func TestExtractorCustomDelimiter(t *testing.T) {
	x := quoted.NewExtractor(&quoted.Options{Delimiter: '"'})
	require.Equal(t, '"', x.Delimiter())

	// Single quotes are ordinary characters once the delimiter is ".
	got, err := x.Extract(`say "hi" and "don""t" but 'not this'`)
	require.NoError(t, err)
	require.Equal(t, []string{"hi", `don"t`}, got)

	_, err = x.Extract(`one " alone`)
	require.ErrorIs(t, err, quoted.ErrUnmatchedDelimiter)
}

func TestExtractorMultibyteDelimiter(t *testing.T) {
	x := quoted.NewExtractor(&quoted.Options{Delimiter: '日'})
	got, err := x.Extract("ignore 日本日本日語日 the rest")
	require.NoError(t, err)
	require.Equal(t, []string{"本", "語"}, got)

	// A doubled delimiter decodes to one delimiter character.
	got, err = x.Extract("日本日日本日")
	require.NoError(t, err)
	require.Equal(t, []string{"本日本"}, got)
}

func TestExtractorDefaults(t *testing.T) {
	// The zero Options and nil Options both select the single quote.
	for _, opts := range []*quoted.Options{nil, {}} {
		x := quoted.NewExtractor(opts)
		require.Equal(t, rune(quoted.DefaultDelimiter), x.Delimiter())
		got, err := x.Extract("'a''b' c 'd'")
		require.NoError(t, err)
		require.Equal(t, []string{"a'b", "d"}, got)
	}
}

func TestExtractorReuse(t *testing.T) {
	x := quoted.NewExtractor(nil)

	_, err := x.Extract("'open")
	require.ErrorIs(t, err, quoted.ErrUnmatchedDelimiter)

	// A failed extraction must not leak state into the next one.
	got, err := x.Extract("'fine'")
	require.NoError(t, err)
	require.Equal(t, []string{"fine"}, got)
}

// quote encodes s as a string literal: delimiters doubled, the whole thing
// wrapped in delimiters.
func quote(s string, delim rune) string {
	d := string(delim)
	return d + strings.ReplaceAll(s, d, d+d) + d
}

func randText(rng *rand.Rand, alphabet []rune, minLen, maxLen int) string {
	n := minLen + rng.Intn(maxLen-minLen+1)
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(out)
}

func TestExtractRoundTrip(t *testing.T) {
	const delim = '\''
	contents := []rune("ab日é \x00'")
	separators := []rune("xy ز\x00\"")

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		literals := make([]string, rng.Intn(6))
		for j := range literals {
			literals[j] = randText(rng, contents, 0, 8)
		}

		var sb strings.Builder
		sb.WriteString(randText(rng, separators, 0, 5))
		for j, lit := range literals {
			if j > 0 {
				// Interior separators must be non-empty, otherwise the
				// neighboring literals merge into one.
				sb.WriteString(randText(rng, separators, 1, 5))
			}
			sb.WriteString(quote(lit, delim))
		}
		sb.WriteString(randText(rng, separators, 0, 5))

		got, err := quoted.Extract(sb.String())
		require.NoError(t, err, "text: %q", sb.String())
		require.Equal(t, len(literals), len(got), "text: %q", sb.String())
		for j := range literals {
			require.Equal(t, literals[j], got[j], "text: %q", sb.String())
		}
	}
}

func TestExtractOddDelimitersAlwaysFail(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("ab' ")
	for i := 0; i < 500; i++ {
		text := randText(rng, alphabet, 0, 20)
		if strings.Count(text, "'")%2 == 0 {
			continue
		}
		_, err := quoted.Extract(text)
		require.ErrorIs(t, err, quoted.ErrUnmatchedDelimiter, "text: %q", text)
	}
}
