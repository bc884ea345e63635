package hosts

import (
	"net/netip"
	"slices"
)

// Minify merges a record collection down to one record per distinct
// address, holding the union of all aliases ever associated with that
// address, deduplicated and sorted lexicographically. The resulting records
// are sorted by address. The same alias under two different addresses is
// kept under both; minification removes redundancy, it does not resolve
// conflicts.
func Minify(records []Record) []Record {
	byAddr := make(map[netip.Addr][]string, len(records))
	for _, rec := range records {
		byAddr[rec.addr] = append(byAddr[rec.addr], rec.aliases...)
	}

	addrs := make([]netip.Addr, 0, len(byAddr))
	for addr := range byAddr {
		addrs = append(addrs, addr)
	}
	slices.SortFunc(addrs, netip.Addr.Compare)

	out := make([]Record, 0, len(byAddr))
	for _, addr := range addrs {
		aliases := byAddr[addr]
		slices.Sort(aliases)
		out = append(out, Record{addr: addr, aliases: slices.Compact(aliases)})
	}
	return out
}
