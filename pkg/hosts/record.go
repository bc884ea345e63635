// Package hosts parses, validates and re-serializes the hosts file format:
// one record per line, each an IP address followed by host aliases, with
// optional trailing '#' comments and blank lines.
package hosts

import (
	"net/netip"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// invalidAliasChars are the characters excluded by URL host parsing
// (https://url.spec.whatwg.org/#host-parsing), plus whitespace.
const invalidAliasChars = "\x00\t\n\r #%/:?@[\\]"

// ValidateAlias decides whether a whitespace-delimited token is usable as a
// host alias. It returns an *InvalidAliasError for a disallowed character,
// an *AliasIsAddressError for a token that is itself an IPv4 literal, and
// nil otherwise.
func ValidateAlias(alias string) error {
	if idx := strings.IndexAny(alias, invalidAliasChars); idx >= 0 {
		ch, _ := utf8.DecodeRuneInString(alias[idx:])
		return &InvalidAliasError{Char: ch, Alias: alias}
	}
	if addr, err := netip.ParseAddr(alias); err == nil && addr.Is4() {
		return &AliasIsAddressError{Addr: addr}
	}
	return nil
}

// Record is the data portion of one hosts file line: an IP address plus its
// aliases in order of appearance. A Record never exists in an invalid
// state; construct one with ParseRecord or NewRecord.
type Record struct {
	addr    netip.Addr
	aliases []string
}

// NewRecord creates a record from an address and alias tokens, validating
// every alias. An empty alias list is legal.
func NewRecord(addr netip.Addr, aliases ...string) (Record, error) {
	for _, alias := range aliases {
		if err := ValidateAlias(alias); err != nil {
			return Record{}, err
		}
	}
	return Record{addr: addr, aliases: slices.Clone(aliases)}, nil
}

// ParseRecord parses the data portion of a line: an address field followed
// by whitespace-separated alias tokens. Validation stops at the first
// invalid token. Duplicate aliases are retained; deduplication is Minify's
// job.
func ParseRecord(s string) (Record, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return Record{}, ErrNoInternalSpace
	}
	addr, err := netip.ParseAddr(s[:idx])
	if err != nil {
		return Record{}, &AddrParseError{Raw: s[:idx], Err: err}
	}
	aliases := strings.Fields(s[idx:])
	for _, alias := range aliases {
		if err := ValidateAlias(alias); err != nil {
			return Record{}, err
		}
	}
	return Record{addr: addr, aliases: aliases}, nil
}

// Addr returns the record's IP address.
func (r Record) Addr() netip.Addr { return r.addr }

// Aliases returns a copy of the record's aliases in order of appearance.
func (r Record) Aliases() []string { return slices.Clone(r.aliases) }

// Equal reports whether two records have the same address and the same
// alias sequence in the same order.
func (r Record) Equal(o Record) bool {
	return r.addr == o.addr && slices.Equal(r.aliases, o.aliases)
}

// Compare orders records address-major (IPv4 sorts before IPv6, then
// byte-wise) and alias-sequence-minor.
func (r Record) Compare(o Record) int {
	if c := r.addr.Compare(o.addr); c != 0 {
		return c
	}
	return slices.Compare(r.aliases, o.aliases)
}

// String serializes the record as the address, two spaces, then the aliases
// joined by single spaces.
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(r.addr.String())
	sb.WriteByte(' ')
	for _, alias := range r.aliases {
		sb.WriteByte(' ')
		sb.WriteString(alias)
	}
	return sb.String()
}

// Pair is one (alias, address) element of a record's expansion.
type Pair struct {
	Alias string
	Addr  netip.Addr
}

// Pairs expands the record into its (alias, address) pairs, one alias at a
// time and in order.
func (r Record) Pairs() *RecordPairs {
	return &RecordPairs{addr: r.addr, aliases: r.aliases}
}

// RecordPairs iterates over one record's (alias, address) pairs.
type RecordPairs struct {
	addr    netip.Addr
	aliases []string
}

// Next returns the next pair, or ok=false when the aliases are exhausted.
func (p *RecordPairs) Next() (Pair, bool) {
	if len(p.aliases) == 0 {
		return Pair{}, false
	}
	pair := Pair{Alias: p.aliases[0], Addr: p.addr}
	p.aliases = p.aliases[1:]
	return pair, true
}
