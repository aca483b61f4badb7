package parse

import "strings"

const (
	commentMarker = " #"
	fragmentSep   = " | "
)

// splitInline separates a trimmed value from its inline comment. A
// marker only starts a comment when the value before it is unquoted or
// already closed by its quote.
func splitInline(v string) (string, string, bool) {
	quoted := len(v) > 0 && (v[0] == '"' || v[0] == '\'')
	off := 0
	for {
		i := strings.Index(v[off:], commentMarker)
		if i < 0 {
			return v, "", false
		}
		i += off
		head := strings.TrimSpace(v[:i])
		if !quoted || (len(head) >= 2 && head[len(head)-1] == v[0]) {
			return head, v[i+len(commentMarker):], true
		}
		off = i + 1
	}
}

// fragments splits an inline comment into its parts, dropping empty
// ones.
func fragments(c string) []string {
	var res []string
	for _, f := range strings.Split(c, fragmentSep) {
		f = strings.TrimSpace(f)
		if f != "" {
			res = append(res, f)
		}
	}
	return res
}
