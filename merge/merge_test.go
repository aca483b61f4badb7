package merge

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/node"
	"github.com/signadot/keepconf/parse"
)

func mustParse(t *testing.T, s string) *node.Node {
	t.Helper()
	root, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

// declareAB is a target declaring the scalar a.b = 1.
func declareAB() *node.Node {
	root := node.NewRoot()
	a := node.NewSection("a", "a")
	root.Add(a)
	a.Add(node.NewScalar("a.b", "b", node.FromInt(1)))
	return root
}

func keyPaths(root *node.Node) []string {
	var res []string
	root.Visit(func(n *node.Node, isPost bool) (bool, error) {
		if !isPost && n.Kind.IsKeyed() {
			res = append(res, n.Path)
		}
		return true, nil
	})
	sort.Strings(res)
	return res
}

func TestClosedScenario(t *testing.T) {
	target := declareAB()
	res := Reconcile(mustParse(t, "a:\n  b: 2\n  c: 3"), target, Closed)
	if sc := target.Scalar("a.b"); sc == nil || !sc.Value.Equal(node.FromInt(2)) {
		t.Errorf("a.b = %v, want 2", sc)
	}
	if target.Scalar("a.c") != nil {
		t.Error("a.c present under closed schema")
	}
	if diff := cmp.Diff([]string{"a.b"}, res.Updated); diff != "" {
		t.Errorf("updated (-want +got):\n%s", diff)
	}
	if len(res.Added) != 0 {
		t.Errorf("added %v", res.Added)
	}
}

func TestOpenScenario(t *testing.T) {
	target := declareAB()
	res := Reconcile(mustParse(t, "a:\n  b: 2\n  c: 3"), target, Open)
	if sc := target.Scalar("a.b"); sc == nil || !sc.Value.Equal(node.FromInt(2)) {
		t.Errorf("a.b = %v, want 2", sc)
	}
	sc := target.Scalar("a.c")
	if sc == nil || !sc.Value.Equal(node.FromInt(3)) {
		t.Fatalf("a.c = %v, want 3", sc)
	}
	if sc.Parent != target.Section("a") || sc.Path != "a.c" {
		t.Errorf("a.c attached under %q with path %q", sc.Parent.Path, sc.Path)
	}
	if diff := cmp.Diff([]string{"a.c"}, res.Added); diff != "" {
		t.Errorf("added (-want +got):\n%s", diff)
	}
}

func TestIdempotent(t *testing.T) {
	disk := `# user
# header
b: 2

a: 1
extra:
  k: v
l:
  - 1
  - 2`
	for _, p := range []Policy{Closed, Open} {
		target := node.NewRoot()
		target.Add(node.NewComment("# header"))
		target.Add(node.NewScalar("a", "a", node.FromInt(0)))
		target.Add(node.NewScalar("b", "b", node.FromInt(0)))
		l := node.NewListSection("l", "l")
		l.AddValue(node.FromInt(1))
		target.Add(l)

		d := mustParse(t, disk)
		first := Reconcile(d, target, p)
		if !first.Changed() {
			t.Errorf("%s: first reconcile changed nothing", p)
		}
		out := encode.MustString(target)
		second := Reconcile(d, target, p)
		if second.Changed() {
			t.Errorf("%s: second reconcile changed %+v", p, second)
		}
		if got := encode.MustString(target); got != out {
			t.Errorf("%s: output changed:\n%s\nthen\n%s", p, out, got)
		}
		third := Reconcile(mustParse(t, out), target, p)
		if third.Changed() {
			t.Errorf("%s: reconciling the saved output changed %+v", p, third)
		}
	}
}

func TestOpenRestoresLines(t *testing.T) {
	target := node.NewRoot()
	target.Add(node.NewComment("# header"))
	target.Add(node.NewScalar("a", "a", node.FromInt(0)))
	target.Add(node.NewScalar("b", "b", node.FromInt(0)))
	res := Reconcile(mustParse(t, "# user\n# header\nb: 2\n\na: 1"), target, Open)
	want := "# user\n# header\na: 1\n\nb: 2"
	if got := encode.MustString(target); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if res.Lines != 2 {
		t.Errorf("lines = %d, want 2", res.Lines)
	}
	for i, c := range target.Children {
		if c.Index != i {
			t.Errorf("child %d has index %d", i, c.Index)
		}
	}
}

func TestClosedIgnoresLines(t *testing.T) {
	target := node.NewRoot()
	target.Add(node.NewScalar("a", "a", node.FromInt(0)))
	Reconcile(mustParse(t, "# user\n\na: 1"), target, Closed)
	if got := encode.MustString(target); got != "a: 1" {
		t.Errorf("got %q", got)
	}
}

func TestOpenInsertsAtDiskIndex(t *testing.T) {
	target := node.NewRoot()
	target.Add(node.NewScalar("x", "x", node.FromInt(0)))
	target.Add(node.NewScalar("y", "y", node.FromInt(0)))
	Reconcile(mustParse(t, "x: 1\nnew:\n  k: v\n  inner:\n    z: true\ny: 2"), target, Open)
	want := "x: 1\nnew:\n  k: \"v\"\n  inner:\n    z: true\ny: 2"
	if got := encode.MustString(target); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if sc := target.Scalar("new.inner.z"); sc == nil || sc.Path != "new.inner.z" {
		t.Errorf("new.inner.z = %v", sc)
	}
}

func TestLists(t *testing.T) {
	declare := func() *node.Node {
		root := node.NewRoot()
		l := node.NewListSection("l", "l")
		l.AddValue(node.FromInt(1))
		root.Add(l)
		return root
	}
	disk := "l:\n  - 1\n  - 2\nm:\n  - a"

	closed := declare()
	if res := Reconcile(mustParse(t, disk), closed, Closed); res.Changed() {
		t.Errorf("closed changed %+v", res)
	}
	if got := len(closed.ListSection("l").Values()); got != 1 {
		t.Errorf("closed list has %d values", got)
	}

	open := declare()
	res := Reconcile(mustParse(t, disk), open, Open)
	if diff := cmp.Diff([]string{"l"}, res.Updated); diff != "" {
		t.Errorf("updated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"m"}, res.Added); diff != "" {
		t.Errorf("added (-want +got):\n%s", diff)
	}
	if got := encode.MustString(open); got != "l:\n  - 1\n  - 2\nm:\n  - a" {
		t.Errorf("got %q", got)
	}
}

func TestConflict(t *testing.T) {
	target := node.NewRoot()
	target.Add(node.NewScalar("a", "a", node.FromInt(1)))
	target.Add(node.NewSection("s", "s"))
	res := Reconcile(mustParse(t, "a:\n  x: 1\ns: 2"), target, Open)
	if diff := cmp.Diff([]string{"a", "s"}, res.Conflicts); diff != "" {
		t.Errorf("conflicts (-want +got):\n%s", diff)
	}
	if target.Scalar("a") == nil || target.Section("s") == nil {
		t.Error("target lost its node on conflict")
	}
}

func TestEmptyListReadsAsSection(t *testing.T) {
	for _, p := range []Policy{Closed, Open} {
		target := node.NewRoot()
		target.Add(node.NewListSection("tags", "tags"))
		l := node.NewListSection("l", "l")
		l.AddValue(node.FromInt(1))
		target.Add(l)
		res := Reconcile(mustParse(t, encode.MustString(target)), target, p)
		if len(res.Conflicts) != 0 || res.Changed() {
			t.Errorf("%s: %+v", p, res)
		}
		if target.ListSection("tags") == nil {
			t.Errorf("%s: tags is no longer a list", p)
		}
	}
	target := node.NewRoot()
	target.Add(node.NewListSection("tags", "tags"))
	res := Reconcile(mustParse(t, "tags:\n  k: 1"), target, Open)
	if diff := cmp.Diff([]string{"tags"}, res.Conflicts); diff != "" {
		t.Errorf("keyed section against a list (-want +got):\n%s", diff)
	}
}

func TestInlineComments(t *testing.T) {
	target := node.NewRoot()
	sc := node.NewScalar("a", "a", node.FromInt(1))
	sc.Comments = []string{"declared"}
	target.Add(sc)

	Reconcile(mustParse(t, "a: 1"), target, Closed)
	if diff := cmp.Diff([]string{"declared"}, sc.Comments); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
	res := Reconcile(mustParse(t, "a: 1 # edited | twice"), target, Closed)
	if diff := cmp.Diff([]string{"edited", "twice"}, sc.Comments); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, res.Updated); diff != "" {
		t.Errorf("updated (-want +got):\n%s", diff)
	}
}

func TestClosedNonGrowth(t *testing.T) {
	disks := []string{
		"a:\n  b: 5",
		"a:\n  b: 6\n  c: 1\nz: 2",
		"top:\n  - 1\na:\n  q:\n    r: 1\n  b: \"seven\"",
	}
	for _, d := range disks {
		target := declareAB()
		want := keyPaths(target)
		disk := mustParse(t, d)
		Reconcile(disk, target, Closed)
		if diff := cmp.Diff(want, keyPaths(target)); diff != "" {
			t.Errorf("%q: keys (-want +got):\n%s", d, diff)
		}
		if got, want := target.Scalar("a.b").Value, disk.Scalar("a.b").Value; !got.Same(want) {
			t.Errorf("%q: a.b = %v, want %v", d, got, want)
		}
	}
}

func TestPolicyText(t *testing.T) {
	for _, p := range []Policy{Closed, Open} {
		d, err := p.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Policy
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != p {
			t.Errorf("%s read back as %s", p, back)
		}
	}
	if _, err := ParsePolicy("loose"); err == nil {
		t.Error("ParsePolicy(loose) succeeded")
	}
}
