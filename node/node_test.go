package node

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func indices(n *Node) []int {
	res := make([]int, len(n.Children))
	for i, c := range n.Children {
		res[i] = c.Index
	}
	return res
}

func keys(n *Node) []string {
	res := make([]string, len(n.Children))
	for i, c := range n.Children {
		switch c.Kind {
		case CommentKind:
			res[i] = c.Text
		case BlankKind:
			res[i] = "<blank>"
		default:
			res[i] = c.Key
		}
	}
	return res
}

func TestAddInsertRemove(t *testing.T) {
	root := NewRoot()
	root.Add(NewScalar("a", "a", FromInt(1)))
	root.Add(NewBlank())
	root.Add(NewScalar("b", "b", FromInt(2)))
	if !root.Insert(NewComment("# first"), 0) {
		t.Fatal("insert at 0 failed")
	}
	if !root.Insert(NewScalar("z", "z", FromInt(3)), 99) {
		t.Fatal("insert past end failed")
	}
	if diff := cmp.Diff([]string{"# first", "a", "<blank>", "b", "z"}, keys(root)); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, indices(root)); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}
	removed := root.Remove("a")
	if removed == nil || removed.Parent != nil {
		t.Fatalf("remove a: got %v", removed)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, indices(root)); diff != "" {
		t.Errorf("indices after remove (-want +got):\n%s", diff)
	}
	if root.Remove("missing") != nil {
		t.Error("remove of a missing key returned a node")
	}
	if got := root.Inserted(); got != 5 {
		t.Errorf("Inserted() = %d, want 5", got)
	}
	if root.Insert(NewBlank(), -1) {
		t.Error("insert at a negative index succeeded")
	}
}

func TestAddRejects(t *testing.T) {
	root := NewRoot()
	if root.Add(NewRoot()) {
		t.Error("root accepted a root child")
	}
	if root.Add(NewListScalar(FromInt(1))) {
		t.Error("root accepted a list scalar")
	}
	sc := NewScalar("a", "a", FromInt(1))
	if sc.Add(NewBlank()) {
		t.Error("scalar accepted a child")
	}
	list := NewListSection("l", "l")
	if list.Add(NewComment("# c")) {
		t.Error("list section accepted a comment")
	}
	if !list.Add(NewListScalar(FromInt(1))) {
		t.Error("list section rejected a list scalar")
	}
}

func TestChild(t *testing.T) {
	root := NewRoot()
	server := NewSection("server", "server")
	root.Add(server)
	tls := NewSection("server.tls", "tls")
	server.Add(tls)
	tls.Add(NewScalar("server.tls.cert", "cert", FromString("c.pem")))
	server.Add(NewScalar("server.port", "port", FromInt(80)))
	hosts := NewListSection("server.hosts", "hosts")
	server.Add(hosts)
	hosts.AddValue(FromString("a"))

	tests := []struct {
		path string
		want string
	}{
		{path: "server", want: "server"},
		{path: "server.port", want: "server.port"},
		{path: "server.tls.cert", want: "server.tls.cert"},
		{path: "server.hosts", want: "server.hosts"},
		{path: "server.port.x", want: ""},
		{path: "server.hosts.a", want: ""},
		{path: "server..port", want: ""},
		{path: "", want: ""},
		{path: "nope", want: ""},
	}
	for _, tt := range tests {
		got := ""
		if c := root.Child(tt.path); c != nil {
			got = c.Path
		}
		if got != tt.want {
			t.Errorf("Child(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
	if root.Scalar("server") != nil {
		t.Error("Scalar(server) found a section")
	}
	if root.Section("server.hosts") != nil {
		t.Error("Section(server.hosts) found a list")
	}
	if root.ListSection("server.hosts") == nil {
		t.Error("ListSection(server.hosts) not found")
	}
	if tls.Scalar("cert") == nil {
		t.Error("relative lookup of cert failed")
	}
	if got := len(server.Scalars()); got != 1 {
		t.Errorf("server has %d scalars, want 1", got)
	}
}

func TestCommentAndBlankAt(t *testing.T) {
	root := NewRoot()
	root.Add(NewComment("# header"))
	root.Add(NewBlank())
	root.Add(NewScalar("a", "a", FromInt(1)))

	if root.Comment("# header", 0) == nil {
		t.Error("comment at 0 not found")
	}
	if root.Comment("# header", 1) != nil {
		t.Error("comment found at the wrong index")
	}
	if root.Comment("# other", 0) != nil {
		t.Error("comment with other text matched")
	}
	if root.Blank(1) == nil {
		t.Error("blank at 1 not found")
	}
	if root.Blank(0) != nil || root.Blank(2) != nil || root.Blank(7) != nil {
		t.Error("blank found where there is none")
	}
}

func TestListHomogeneous(t *testing.T) {
	list := NewListSection("l", "l")
	if !list.AddValue(MustDecimal("1.0")) {
		t.Fatal("first value rejected")
	}
	if list.AddValue(FromString("x")) {
		t.Error("text accepted into a decimal list")
	}
	if list.AddValue(FromInt(2)) {
		t.Error("int accepted into a decimal list")
	}
	if !list.AddValue(MustDecimal("2.5")) {
		t.Error("second decimal rejected")
	}
	if list.AddValue(Value{}) {
		t.Error("zero value accepted")
	}
	if list.ElemType != DecimalType {
		t.Errorf("ElemType = %s, want Decimal", list.ElemType)
	}
	var lits []string
	for _, v := range list.Values() {
		lits = append(lits, v.Literal())
	}
	if diff := cmp.Diff([]string{"1.0", "2.5"}, lits); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if !list.Contains(MustDecimal("2.50")) {
		t.Error("Contains(2.50) = false")
	}
	list.Clear()
	if list.ElemType != NoType || len(list.Children) != 0 {
		t.Error("Clear left state behind")
	}
	if !list.AddValue(FromString("x")) {
		t.Error("text rejected after clear")
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := NewRoot()
	s := NewSection("s", "s")
	root.Add(s)
	sc := NewScalar("s.k", "k", FromInt(1))
	sc.Comments = []string{"note"}
	s.Add(sc)

	c := root.Clone()
	c.Section("s").Scalar("k").Value = FromInt(2)
	c.Section("s").Scalar("k").Comments[0] = "changed"
	if got := root.Scalar("s.k").Value; !got.Equal(FromInt(1)) {
		t.Errorf("original value changed to %v", got)
	}
	if got := root.Scalar("s.k").Comments[0]; got != "note" {
		t.Errorf("original comment changed to %q", got)
	}
	if c.Section("s").Parent != c {
		t.Error("cloned child does not point at the clone")
	}
}

func TestSortAndFind(t *testing.T) {
	root := NewRoot()
	a := NewScalar("a", "a", FromInt(1))
	b := NewScalar("b", "b", FromInt(2))
	root.Add(a)
	root.Add(b)
	a.Index, b.Index = 1, 0
	if diff := cmp.Diff([]string{"b", "a"}, keys(&Node{Kind: RootKind, Children: root.Sorted()})); diff != "" {
		t.Errorf("Sorted (-want +got):\n%s", diff)
	}
	if root.Children[0] != a {
		t.Error("Sorted changed the receiver")
	}
	root.Sort()
	if root.Children[0] != b {
		t.Error("Sort did not reorder")
	}
	if got := root.Find(func(n *Node) bool { return n.Key == "a" }); got != a {
		t.Errorf("Find(a) = %v", got)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{CommentKind, BlankKind, ScalarKind, ListScalarKind, SectionKind, ListSectionKind, RootKind} {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("kind %s read back as %s", k, back)
		}
	}
}

func TestCommentMatchesIgnoringIndent(t *testing.T) {
	s := NewSection("s", "s")
	s.Add(NewComment("  # nested"))
	if s.Comment("# nested", 0) == nil {
		t.Error("indented comment did not match declared text")
	}
	s.Add(NewComment("bare"))
	if s.Comment("# bare", 1) == nil {
		t.Error("comment without marker did not match")
	}
}

func TestHoistBlanks(t *testing.T) {
	root := NewRoot()
	a := NewSection("a", "a")
	root.Add(a)
	b := NewSection("a.b", "b")
	a.Add(b)
	b.Add(NewScalar("a.b.c", "c", FromInt(1)))
	b.Add(NewBlank())
	b.Add(NewBlank())
	a.Add(NewComment("  # in a"))
	s := NewSection("s", "s")
	root.Add(s)
	s.Add(NewScalar("s.x", "x", FromInt(2)))
	s.Add(NewBlank())
	root.Add(NewScalar("d", "d", FromInt(3)))

	root.HoistBlanks()

	if diff := cmp.Diff([]string{"c"}, keys(b)); diff != "" {
		t.Errorf("a.b (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "<blank>", "<blank>", "  # in a"}, keys(a)); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "s", "<blank>", "d"}, keys(root)); diff != "" {
		t.Errorf("root (-want +got):\n%s", diff)
	}
	for _, n := range []*Node{root, a, b, s} {
		if diff := cmp.Diff([]int{0, 1, 2, 3}[:len(n.Children)], indices(n)); diff != "" {
			t.Errorf("%q indices (-want +got):\n%s", n.Path, diff)
		}
		for _, c := range n.Children {
			if c.Parent != n {
				t.Errorf("%q child %d has the wrong parent", n.Path, c.Index)
			}
		}
	}
}
