// Package libdiff compares configuration content.
//
// # Usage
//
//	// line diff of two renderings
//	lines := libdiff.Lines(onDisk, rendered)
//	if libdiff.HasChanges(lines) {
//	    libdiff.Write(os.Stdout, lines, true)
//	}
//
//	// structural diff of two trees
//	for _, c := range libdiff.Tree(oldRoot, newRoot) {
//	    fmt.Println(c)
//	}
//
// Both use github.com/sergi/go-diff: Lines hashes lines to runes, Tree
// hashes sibling keys to runes, and each diffs the rune sequences.
package libdiff
