package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/keepconf/node"
	"github.com/signadot/keepconf/parse"
)

func TestLines(t *testing.T) {
	got := Lines("a: 1\nb: 2\nc: 3", "a: 1\nb: 5\nc: 3")
	want := []Line{
		{Op: Equal, Text: "a: 1"},
		{Op: Delete, Text: "b: 2"},
		{Op: Insert, Text: "b: 5"},
		{Op: Equal, Text: "c: 3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !HasChanges(got) {
		t.Error("HasChanges = false")
	}
	if HasChanges(Lines("same\n", "same\n")) {
		t.Error("HasChanges on equal input")
	}
	if got := Lines("", ""); len(got) != 0 {
		t.Errorf("empty diff: %v", got)
	}
}

func TestWrite(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Write(buf, []Line{{Op: Equal, Text: "x"}, {Op: Insert, Text: "y"}}, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "  x\n+ y\n" {
		t.Errorf("got %q", got)
	}
}

func mustParse(t *testing.T, s string) *node.Node {
	t.Helper()
	root, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestTree(t *testing.T) {
	from := mustParse(t, `# comment
a:
  b: 1
  c: 2
l:
  - 1
gone: true
z: 1`)
	to := mustParse(t, `z: 1
a:
  b: 1
  c: 3
  d: x
l:
  - 1
  - 2`)
	var got []string
	for _, c := range Tree(from, to) {
		got = append(got, c.String())
	}
	want := []string{
		"~ a.c: 2 -> 3",
		`+ a.d: "x"`,
		"~ l: [1] -> [1 2]",
		"- gone: true",
		"> z: moved",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTreeKindChange(t *testing.T) {
	changes := Tree(mustParse(t, "a: 1"), mustParse(t, "a:\n  b: 1"))
	if len(changes) != 1 || changes[0].Op != Replace || changes[0].Path != "a" {
		t.Errorf("got %v", changes)
	}
	if got := Tree(mustParse(t, "a: 1\n# x"), mustParse(t, "\na: 1")); len(got) != 0 {
		t.Errorf("comment-only change reported: %v", got)
	}
}
