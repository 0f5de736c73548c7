package tinyformat

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestWriteLiteralCursor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	out := NewStream(&buf)

	// Stops at the first real specifier.
	i, err := writeLiteral(out, "ab%d", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, i)
	assert.Equal(t, "ab", buf.String())

	// Re-anchors after a %% pair.
	buf.Reset()
	i, err = writeLiteral(out, "a%%b%s", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, i)
	assert.Equal(t, "a%b", buf.String())

	// Runs to the end when nothing remains.
	buf.Reset()
	i, err = writeLiteral(out, "tail", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, i)
	assert.Equal(t, "tail", buf.String())
}

func TestWriteLiteralWriteError(t *testing.T) {
	t.Parallel()
	out := NewStream(&errWriterInternal{})
	_, err := writeLiteral(out, "boom", 0)
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestParseSpecSideChannels(t *testing.T) {
	t.Parallel()
	out := NewStream(&bytes.Buffer{})

	idx := 0
	end, spacePad, ntrunc, err := parseSpec(out, "%.3s", 0, nil, &idx)
	require.NoError(t, err)
	assert.Equal(t, 4, end)
	assert.False(t, spacePad)
	assert.Equal(t, 3, ntrunc)
	assert.NotZero(t, out.Flags()&BoolWords)

	idx = 0
	_, spacePad, ntrunc, err = parseSpec(out, "% d", 0, nil, &idx)
	require.NoError(t, err)
	assert.True(t, spacePad)
	assert.Equal(t, -1, ntrunc)
}

func TestParseSpecCleanSlate(t *testing.T) {
	t.Parallel()
	out := NewStream(&bytes.Buffer{})
	out.SetWidth(33)
	out.SetPrecision(9)
	out.SetFill('@')
	out.SetFlags(AdjustLeft | BaseHex | Uppercase)

	idx := 0
	_, _, _, err := parseSpec(out, "%d", 0, nil, &idx)
	require.NoError(t, err)
	assert.Equal(t, State{Width: 0, Precision: 6, Fill: ' ', Flags: 0}, out.State())
}

func TestParseSpecFlagPriority(t *testing.T) {
	t.Parallel()
	out := NewStream(&bytes.Buffer{})

	// Zero fill after '-' is ignored.
	idx := 0
	_, _, _, err := parseSpec(out, "%-05d", 0, nil, &idx)
	require.NoError(t, err)
	assert.Equal(t, ' ', int32(out.Fill()))
	assert.NotZero(t, out.Flags()&AdjustLeft)
	assert.Equal(t, 5, out.Width())

	// '-' after '0' replaces the zero fill.
	idx = 0
	_, _, _, err = parseSpec(out, "%0-5d", 0, nil, &idx)
	require.NoError(t, err)
	assert.Equal(t, ' ', int32(out.Fill()))
	assert.NotZero(t, out.Flags()&AdjustLeft)
}

func TestParseSpecIntegerPrecisionEmulation(t *testing.T) {
	t.Parallel()
	out := NewStream(&bytes.Buffer{})

	idx := 0
	_, _, _, err := parseSpec(out, "%.5d", 0, nil, &idx)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Width())
	assert.Equal(t, '0', int32(out.Fill()))
	assert.NotZero(t, out.Flags()&AdjustInternal)

	// The '+' flag reserves one extra column.
	idx = 0
	_, _, _, err = parseSpec(out, "%+.5d", 0, nil, &idx)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Width())
}

func TestParseSpecStarAdvancesSharedIndex(t *testing.T) {
	t.Parallel()
	out := NewStream(&bytes.Buffer{})
	args, err := Args(4, 2, 1.0)
	require.NoError(t, err)

	idx := 0
	end, _, _, perr := parseSpec(out, "%*.*f", 0, args, &idx)
	require.NoError(t, perr)
	assert.Equal(t, 5, end)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 4, out.Width())
	assert.Equal(t, 2, out.Precision())
}

func TestParseSpecNotAtPercent(t *testing.T) {
	t.Parallel()
	out := NewStream(&bytes.Buffer{})
	idx := 0
	_, _, _, err := parseSpec(out, "plain", 0, nil, &idx)
	assert.ErrorIs(t, err, ErrTooFewSpecs)
}

func TestWriteNumberAlignment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		flags Flags
		fill  rune
		want  string
	}{
		{"right", 0, ' ', "  -0xff"},
		{"left", AdjustLeft, ' ', "-0xff  "},
		{"internal", AdjustInternal, '0', "-0x00ff"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		out := NewStream(&buf)
		out.SetWidth(7)
		out.SetFill(tt.fill)
		out.SetFlags(tt.flags)
		require.NoError(t, out.WriteNumber("-", "0x", "ff"), tt.name)
		assert.Equal(t, tt.want, buf.String(), tt.name)
	}
}

func TestWriteValueWideRunes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	out := NewStream(&buf)
	out.SetWidth(6)
	// "你" occupies two display cells, so only two fill cells remain.
	require.NoError(t, out.WriteValue("你好"))
	assert.Equal(t, "  你好", buf.String())
}

func TestKeepTrailingZeros(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		prec int
		want string
	}{
		{"2", 6, "2.00000"},
		{"0", 6, "0.00000"},
		{"1.5", 6, "1.50000"},
		{"0.5", 6, "0.500000"},
		{"100000", 6, "100000."},
		{"1e+06", 6, "1.00000e+06"},
		{"+Inf", 6, "+Inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keepTrailingZeros(tt.in, tt.prec), tt.in)
	}
}

func TestTruncatedWriteBoundsDisplayCells(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	out := NewStream(&buf)
	require.NoError(t, writeTruncated(out, "你好呀", 4))
	assert.Equal(t, "你好", buf.String())
}
