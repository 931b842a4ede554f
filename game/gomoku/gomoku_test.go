package gomoku

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAction(t *testing.T) {
	t.Run("naming cells by column letter and row number", func(t *testing.T) {
		require.Equal(t, "a1", NewAction(0, 0).String())
		require.Equal(t, "h8", NewAction(7, 7).String())
		require.Equal(t, "o15", NewAction(14, 14).String())
		require.Equal(t, 14, NewAction(14, 3).Row())
		require.Equal(t, 3, NewAction(14, 3).Col())
	})
}

// stones plays the given cells, alternating from X.
func stones(cells ...[2]int) State {
	s := New()
	for _, c := range cells {
		s = s.Play(NewAction(c[0], c[1]))
	}
	return s
}

func TestScore(t *testing.T) {
	cases := []struct {
		name string
		line func(k int) [2]int
	}{
		{"horizontal", func(k int) [2]int { return [2]int{3, 10 + k} }},
		{"vertical", func(k int) [2]int { return [2]int{10 + k, 0} }},
		{"rising diagonal", func(k int) [2]int { return [2]int{k, k} }},
		{"falling diagonal", func(k int) [2]int { return [2]int{5 + k, 14 - k} }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New()
			for k := 0; k < 5; k++ {
				_, over := s.Score()
				require.False(t, over, "Game should not be over before the fifth stone")
				s = s.Play(NewAction(c.line(k)[0], c.line(k)[1]))
				if k < 4 {
					// O answers far away
					s = s.Play(NewAction(14-k, 7))
				}
			}

			scores, over := s.Score()

			require.True(t, over)
			require.Equal(t, []int64{1, -1}, scores)
		})
	}

	t.Run("four in a row is not enough", func(t *testing.T) {
		s := stones([2]int{0, 0}, [2]int{5, 5}, [2]int{0, 1}, [2]int{5, 6}, [2]int{0, 2}, [2]int{5, 7}, [2]int{0, 3})

		_, over := s.Score()

		require.False(t, over)
	})

	t.Run("no wrap around the board edge", func(t *testing.T) {
		s := Init("X m 1 X n 1 X o 1 X a 2 X b 2")

		_, over := s.Score()

		require.False(t, over)
	})

	t.Run("five for the second player", func(t *testing.T) {
		scores, over := Init("XM O c 3 O d 4 O e 5 O f 6 O g 7").Score()

		require.True(t, over)
		require.Equal(t, []int64{-1, 1}, scores)
	})
}

func TestInit(t *testing.T) {
	t.Run("reading back the text form", func(t *testing.T) {
		s := stones([2]int{7, 7}, [2]int{7, 8}, [2]int{0, 14})

		require.Equal(t, "OM X o 1 X h 8 O i 8", s.String())
		require.Equal(t, s, Init(s.String()))
	})

	t.Run("emptying a cell", func(t *testing.T) {
		s := Init("X h 8 O a 1 + h 8")

		require.Equal(t, "XM O a 1", s.String())
	})

	t.Run("stopping at a malformed triple", func(t *testing.T) {
		s := Init("OM X h 8 X z 1 X a 1")

		require.Equal(t, "OM X h 8", s.String())
	})

	t.Run("empty text is the empty board", func(t *testing.T) {
		require.Equal(t, New(), Init(""))
		require.Len(t, New().LegalMoves(), Width*Height)
	})
}

func TestBytes(t *testing.T) {
	t.Run("encoding tells states apart", func(t *testing.T) {
		a := stones([2]int{0, 0}, [2]int{0, 1})
		b := stones([2]int{0, 1}, [2]int{0, 0})

		require.Len(t, a.Bytes(), ByteCount)
		require.NotEqual(t, a.Bytes(), b.Bytes())
		require.NotEqual(t, Init("XM").Bytes(), Init("OM").Bytes())
	})

	t.Run("appending the encoding to a buffer", func(t *testing.T) {
		a := stones([2]int{7, 7}, [2]int{3, 4})

		require.Equal(t, append([]byte{0xff}, a.Bytes()...), a.AppendBytes([]byte{0xff}))
		require.Equal(t, a.Bytes(), a.AppendBytes(nil))
	})
}

func TestRender(t *testing.T) {
	t.Run("one line per row plus coordinates", func(t *testing.T) {
		var out bytes.Buffer

		Render(&out, stones([2]int{7, 7}))

		require.GreaterOrEqual(t, strings.Count(out.String(), "\n"), Height)
		require.Contains(t, out.String(), "X")
	})
}
