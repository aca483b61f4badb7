package encode

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/keepconf/format"
	"github.com/signadot/keepconf/node"
)

func sampleTree() *node.Node {
	root := node.NewRoot()
	root.Add(node.NewComment("App settings"))
	root.Add(node.NewScalar("name", "name", node.FromString("Bob ")))
	server := node.NewSection("server", "server")
	root.Add(server)
	server.Add(node.NewScalar("server.port", "port", node.FromInt(8080)))
	hosts := node.NewListSection("server.hosts", "hosts")
	hosts.AddValue(node.FromString("a"))
	hosts.AddValue(node.FromString(" b"))
	server.Add(hosts)
	root.Add(node.NewSection("extra", "extra"))
	root.Add(node.NewBlank())
	ratio := node.NewScalar("ratio", "ratio", node.MustDecimal("1.50"))
	ratio.Comments = []string{"unit", "x"}
	root.Add(ratio)
	return root
}

func TestEncode(t *testing.T) {
	want := strings.Join([]string{
		"# App settings",
		`name: "Bob "`,
		"server:",
		"  port: 8080",
		"  hosts:",
		"    - a",
		`    - " b"`,
		"extra: ",
		"",
		"ratio: 1.50 # unit | x",
	}, "\n")
	got, err := String(sampleTree())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeSortsByIndex(t *testing.T) {
	root := node.NewRoot()
	a := node.NewScalar("a", "a", node.FromInt(1))
	b := node.NewScalar("b", "b", node.FromInt(2))
	root.Add(a)
	root.Add(b)
	a.Index, b.Index = 1, 0
	got := MustString(root)
	if got != "b: 2\na: 1" {
		t.Errorf("got %q", got)
	}
	if root.Children[0] != a {
		t.Error("encoding reordered the tree")
	}
}

func TestScalarLiteral(t *testing.T) {
	tests := []struct {
		v    node.Value
		want string
	}{
		{node.FromBool(true), "true"},
		{node.FromInt(-3), "-3"},
		{node.FromLong(1 << 40), "1099511627776"},
		{node.MustDecimal("2.50"), "2.50"},
		{node.FromFloat(2), "2.0"},
		{node.FromFloat(math.Inf(1)), `"+Inf"`},
		{node.FromSymbol("HIGH"), `"HIGH"`},
		{node.FromString(""), `""`},
		{node.FromString(`say "hi"`), `"say "hi""`},
		{node.FromString(`a" #b`), `'a" #b'`},
		{node.FromString(`a' #b`), `"a' #b"`},
	}
	for _, tt := range tests {
		if got := ScalarLiteral(tt.v); got != tt.want {
			t.Errorf("ScalarLiteral(%s %v) = %s, want %s", tt.v.Type, tt.v, got, tt.want)
		}
	}
}

func TestItemLiteral(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"plain", "plain"},
		{"two words", "two words"},
		{"", `""`},
		{"12", `"12"`},
		{"true", `"true"`},
		{"a #b", `"a #b"`},
		{"'q'", `"'q'"`},
		{" pad", `" pad"`},
		{`a" #b`, `'a" #b'`},
	}
	for _, tt := range tests {
		if got := ItemLiteral(node.FromString(tt.s)); got != tt.want {
			t.Errorf("ItemLiteral(%q) = %s, want %s", tt.s, got, tt.want)
		}
	}
}

func TestCommentLines(t *testing.T) {
	s := node.NewSection("s", "s")
	s.Add(node.NewComment("declared"))
	s.Add(node.NewComment("# marked"))
	s.Add(node.NewComment("      # from disk"))
	root := node.NewRoot()
	root.Add(s)
	want := "s:\n  # declared\n  # marked\n      # from disk"
	if got := MustString(root); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeTrailingNewline(t *testing.T) {
	root := node.NewRoot()
	root.Add(node.NewScalar("a", "a", node.FromInt(1)))
	got, err := String(root, EncodeTrailingNewline(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != "a: 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	d, err := JSON(sampleTree())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Bob ","server":{"port":8080,"hosts":["a"," b"]},"extra":{},"ratio":1.50}`
	if string(d) != want {
		t.Errorf("got %s, want %s", d, want)
	}
	if !json.Valid(d) {
		t.Error("invalid JSON")
	}
	buf := &bytes.Buffer{}
	if err := Encode(sampleTree(), buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "{\n  \"name\": \"Bob \",") {
		t.Errorf("indented JSON: %q", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(sampleTree(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	name := strings.Index(out, "name:")
	server := strings.Index(out, "server:")
	ratio := strings.Index(out, "ratio:")
	if name < 0 || server < name || ratio < server {
		t.Errorf("keys out of order:\n%s", out)
	}
	if !strings.Contains(out, "port: 8080") {
		t.Errorf("missing port:\n%s", out)
	}
}

func TestEncodeColors(t *testing.T) {
	got, err := String(sampleTree(), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "port") || !strings.Contains(got, "8080") {
		t.Errorf("colored output lost content: %q", got)
	}
}
