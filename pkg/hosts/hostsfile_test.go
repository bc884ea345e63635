package hosts

import (
	"errors"
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pretty = `# basic ones
127.0.0.1  localhost localhost.localdomain
0.0.0.0  allzeros  # nonstandard

# others
8.8.8.8  gdns  # this is the more common one
8.8.4.4  gdns2  # this is the less common one

# comment by itself
`

const plain = `127.0.0.1  localhost localhost.localdomain
0.0.0.0  allzeros
8.8.8.8  gdns
8.8.4.4  gdns2
`

func TestLinesRoundTrip(t *testing.T) {
	var rewritten strings.Builder
	iter := New(strings.NewReader(pretty)).Lines()
	for iter.Scan() {
		require.NoError(t, iter.Err())
		rewritten.WriteString(iter.Line().String())
		rewritten.WriteByte('\n')
	}
	assert.Equal(t, pretty, rewritten.String())
}

func TestRecordsSkipBlankAndComments(t *testing.T) {
	var rewritten strings.Builder
	count := 0
	iter := New(strings.NewReader(pretty)).Records()
	for iter.Scan() {
		require.NoError(t, iter.Err())
		count++
		rewritten.WriteString(iter.Record().String())
		rewritten.WriteByte('\n')
	}
	assert.Equal(t, 4, count)
	assert.Equal(t, plain, rewritten.String())
}

func TestPairsFlattening(t *testing.T) {
	got := make(map[string]netip.Addr)
	iter := New(strings.NewReader(pretty)).Pairs()
	for iter.Scan() {
		require.NoError(t, iter.Err())
		pair := iter.Pair()
		got[pair.Alias] = pair.Addr
	}
	assert.Equal(t, map[string]netip.Addr{
		"localhost":             netip.MustParseAddr("127.0.0.1"),
		"localhost.localdomain": netip.MustParseAddr("127.0.0.1"),
		"allzeros":              netip.MustParseAddr("0.0.0.0"),
		"gdns":                  netip.MustParseAddr("8.8.8.8"),
		"gdns2":                 netip.MustParseAddr("8.8.4.4"),
	}, got)
}

func TestPairsPreserveOrderWithinRecord(t *testing.T) {
	iter := New(strings.NewReader("::1  c b a\n127.0.0.1  z\n")).Pairs()
	var aliases []string
	for iter.Scan() {
		require.NoError(t, iter.Err())
		aliases = append(aliases, iter.Pair().Alias)
	}
	assert.Equal(t, []string{"c", "b", "a", "z"}, aliases)
}

func TestLinesResumeAfterParseError(t *testing.T) {
	input := "127.0.0.1  lh\nnot-an-ip  whatever\n8.8.8.8  gdns\n"

	iter := New(strings.NewReader(input)).Lines()

	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())
	assert.Equal(t, 1, iter.Pos())

	require.True(t, iter.Scan())
	var perr *AddrParseError
	require.ErrorAs(t, iter.Err(), &perr)
	assert.Equal(t, "not-an-ip", perr.Raw)
	assert.Equal(t, 2, iter.Pos())

	// The cursor advanced past the bad line; the next one parses cleanly.
	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())
	addr, ok := iter.Line().Addr()
	require.True(t, ok)
	assert.Equal(t, netip.MustParseAddr("8.8.8.8"), addr)
	assert.Equal(t, 3, iter.Pos())

	assert.False(t, iter.Scan())
}

func TestRecordsResumeAfterParseError(t *testing.T) {
	input := "# header\n127.0.0.1 0.0.0.0\n8.8.8.8  gdns\n"

	iter := New(strings.NewReader(input)).Records()

	require.True(t, iter.Scan())
	var aerr *AliasIsAddressError
	require.ErrorAs(t, iter.Err(), &aerr)
	assert.Equal(t, 2, iter.Pos())

	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())
	assert.Equal(t, "8.8.8.8  gdns", iter.Record().String())

	assert.False(t, iter.Scan())
}

func TestPairsSurfaceErrors(t *testing.T) {
	input := "::1  a b\nbroken\n"

	iter := New(strings.NewReader(input)).Pairs()

	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())
	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())

	require.True(t, iter.Scan())
	require.ErrorIs(t, iter.Err(), ErrNoInternalSpace)

	assert.False(t, iter.Scan())
}

func TestLinesFinalLineWithoutTerminator(t *testing.T) {
	iter := New(strings.NewReader("127.0.0.1  lh")).Lines()
	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())
	assert.Equal(t, "127.0.0.1  lh", iter.Line().String())
	assert.False(t, iter.Scan())
}

func TestLinesCRLF(t *testing.T) {
	iter := New(strings.NewReader("127.0.0.1  lh\r\n")).Lines()
	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())
	assert.Equal(t, "127.0.0.1  lh", iter.Line().String())
}

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("device gone")
}

func TestLinesSurfaceReadError(t *testing.T) {
	iter := New(&failingReader{data: "127.0.0.1  lh\n"}).Lines()

	require.True(t, iter.Scan())
	require.NoError(t, iter.Err())

	require.True(t, iter.Scan())
	var rerr *ReadError
	require.ErrorAs(t, iter.Err(), &rerr)
	assert.EqualError(t, rerr.Unwrap(), "device gone")

	assert.False(t, iter.Scan())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/hosts")
	require.Error(t, err)
}
