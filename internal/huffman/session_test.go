package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func nodeStrings[S comparable](nodes []*Node[S]) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.String()
	}
	return out
}

func TestSession(t *testing.T) {
	t.Parallel()

	s0, err := Start(Count(chars("AAAAABBBCC")))
	require.NoError(t, err)

	assert.False(t, s0.Finished())
	assert.Nil(t, s0.Root())
	assert.Equal(t, 0, s0.Steps())
	assert.Equal(t, 2, s0.Remaining())
	assert.Equal(t, []string{"C:2", "B:3", "A:5"}, nodeStrings(s0.Candidates()))

	s1 := s0.Step()
	assert.False(t, s1.Finished())
	assert.Equal(t, 1, s1.Steps())
	assert.Equal(t, 1, s1.Remaining())
	assert.Equal(t, []string{"A:5", "(C:2 B:3):5"}, nodeStrings(s1.Candidates()))

	// The earlier session is untouched.
	assert.Equal(t, []string{"C:2", "B:3", "A:5"}, nodeStrings(s0.Candidates()))

	s2 := s1.Step()
	assert.True(t, s2.Finished())
	assert.Empty(t, s2.Candidates())
	assert.Equal(t, 2, s2.Steps())
	assert.Equal(t, 0, s2.Remaining())
	require.NotNil(t, s2.Root())
	assert.Equal(t, "(A:5 (C:2 B:3):5):10", s2.Root().String())

	t.Run("step after finish", func(t *testing.T) {
		s3 := s2.Step()
		assert.Equal(t, 2, s3.Steps())
		assert.Same(t, s2.Root(), s3.Root())
	})

	t.Run("replay", func(t *testing.T) {
		again := s0.Step().Step()
		assert.True(t, again.Root().Equal(s2.Root()))
	})
}

func TestSession_singleSymbol(t *testing.T) {
	t.Parallel()

	s, err := Start(Count(chars("zzz")))
	require.NoError(t, err)

	assert.True(t, s.Finished(), "single symbol sessions finish immediately")
	assert.Equal(t, 0, s.Remaining())
	assert.Empty(t, s.Candidates())
	assert.Equal(t, "z:3", s.Root().String())
	assert.Same(t, s.Root(), s.Step().Root())
}

func TestSession_zeroValue(t *testing.T) {
	t.Parallel()

	var s Session[string]
	assert.True(t, s.Finished())
	assert.Nil(t, s.Root())
	assert.Nil(t, s.Run())
	assert.Equal(t, "{}", s.String())
}

func TestSession_String(t *testing.T) {
	t.Parallel()

	s, err := Start(Count(chars("aab")))
	require.NoError(t, err)
	assert.Equal(t, "{remaining: 1, candidates: [b:1 a:2]}", s.String())

	s = s.Step()
	assert.Equal(t, "{steps: 1, root: (b:1 a:2):3}", s.String())
}

func TestSession_matchesBuild(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freqs := drawFrequencies(t, 40)

		want, err := Build(freqs)
		require.NoError(t, err)

		s, err := Start(freqs)
		require.NoError(t, err)

		steps := 0
		for !s.Finished() {
			pending := len(s.Candidates())
			s = s.Step()
			steps++

			if !s.Finished() {
				assert.Len(t, s.Candidates(), pending-1, "each step removes one candidate")
			}
		}

		assert.Equal(t, len(freqs)-1, steps, "n symbols take n-1 merges")
		assert.True(t, want.Equal(s.Root()), "eager:\n%v\nincremental:\n%v", want, s.Root())

		again, err := Start(freqs)
		require.NoError(t, err)
		assert.True(t, want.Equal(again.Run()))
	})
}

func TestSession_candidatesSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freqs := drawFrequencies(t, 40)

		s, err := Start(freqs)
		require.NoError(t, err)
		for !s.Finished() {
			cs := s.Candidates()
			for i := 1; i < len(cs); i++ {
				assert.True(t, before(cs[i-1], cs[i]),
					"candidate %v must come before %v", cs[i-1], cs[i])
			}
			s = s.Step()
		}
	})
}
