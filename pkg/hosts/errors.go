package hosts

import (
	"errors"
	"fmt"
	"net/netip"
)

// ErrNoInternalSpace reports a data portion with no whitespace between the
// address field and the alias field. Address-only lines fail with this too.
var ErrNoInternalSpace = errors.New("no whitespace between address and aliases")

// AliasIsAddressError reports an alias token that is itself a valid IPv4
// literal.
type AliasIsAddressError struct {
	Addr netip.Addr
}

func (e *AliasIsAddressError) Error() string {
	return fmt.Sprintf("the IPv4 address %s was given where a host name should be", e.Addr)
}

// InvalidAliasError reports an alias token containing a disallowed
// character. Char is the first offending character scanning left to right.
type InvalidAliasError struct {
	Char  rune
	Alias string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("alias %q contains invalid character %q", e.Alias, e.Char)
}

// AddrParseError reports an address field that did not parse as an IP
// address. Raw retains the original text for diagnostics.
type AddrParseError struct {
	Raw string
	Err error
}

func (e *AddrParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as an IP address: %v", e.Raw, e.Err)
}

func (e *AddrParseError) Unwrap() error { return e.Err }

// ReadError reports that the underlying byte source failed to produce a
// line.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read line: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
