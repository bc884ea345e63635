package hosts

import (
	"net/netip"
	"strings"
	"unicode"
)

// Line is the full unit of the hosts file format: an optional Record plus
// an optional comment. The zero value is a blank line.
type Line struct {
	record     *Record
	comment    string
	hasComment bool
}

// ParseLine parses one raw text line with its terminator already stripped.
// Everything after the first '#' is the comment, with leading whitespace
// trimmed and trailing whitespace preserved; whatever precedes it is parsed
// as a Record unless blank. A malformed data portion fails the whole line,
// comment or not.
func ParseLine(raw string) (Line, error) {
	var ln Line
	data := raw
	if idx := strings.IndexByte(raw, '#'); idx >= 0 {
		ln.comment = strings.TrimLeftFunc(raw[idx+1:], unicode.IsSpace)
		ln.hasComment = true
		data = raw[:idx]
	}
	data = strings.TrimRightFunc(data, unicode.IsSpace)
	if data != "" {
		rec, err := ParseRecord(data)
		if err != nil {
			return Line{}, err
		}
		ln.record = &rec
	}
	return ln, nil
}

// CommentLine creates a line carrying only a comment.
func CommentLine(comment string) Line {
	return Line{comment: comment, hasComment: true}
}

// RecordLine creates a line carrying only a record.
func RecordLine(rec Record) Line {
	return Line{record: &rec}
}

// NewLine creates a line from a record and a comment together.
func NewLine(rec Record, comment string) Line {
	return Line{record: &rec, comment: comment, hasComment: true}
}

// Record returns the line's record, if any.
func (l Line) Record() (Record, bool) {
	if l.record == nil {
		return Record{}, false
	}
	return *l.record, true
}

// Comment returns the line's comment, if any. A bare "#" yields an empty
// comment that is still present.
func (l Line) Comment() (string, bool) {
	return l.comment, l.hasComment
}

// Addr returns the address of the line's record, if any.
func (l Line) Addr() (netip.Addr, bool) {
	if l.record == nil {
		return netip.Addr{}, false
	}
	return l.record.addr, true
}

// Aliases returns the aliases of the line's record, empty when the line has
// none.
func (l Line) Aliases() []string {
	if l.record == nil {
		return nil
	}
	return l.record.Aliases()
}

// IsBlank reports whether the line carries neither record nor comment.
func (l Line) IsBlank() bool {
	return l.record == nil && !l.hasComment
}

// String re-serializes the line: "<record>  # <comment>" when both are
// present, "# <comment>" or "<record>" alone, and "" for a blank line.
func (l Line) String() string {
	switch {
	case l.record != nil && l.hasComment:
		return l.record.String() + "  # " + l.comment
	case l.hasComment:
		return "# " + l.comment
	case l.record != nil:
		return l.record.String()
	default:
		return ""
	}
}
