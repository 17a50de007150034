package main

import (
	"io/ioutil"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/m-lab/go/rtx"
)

func header(t *testing.T) string {
	b, err := ioutil.ReadFile("testdata/rtnetlink.h")
	rtx.Must(err, "Could not read testdata")
	return string(b)
}

func TestEval(t *testing.T) {
	known := map[string]uint64{"RTM_BASE": 16}
	tests := []struct {
		expr string
		want uint64
		ok   bool
	}{
		{"42", 42, true},
		{"0x100", 0x100, true},
		{"4U", 4, true},
		{"(1U << 13)", 1 << 13, true},
		{"RTM_BASE", 16, true},
		{"RTM_BASE + 4", 20, true},
		{"(RTM_BASE - 1)", 15, true},
		{"0x1 | 0x2", 3, true},
		{"UNKNOWN", 0, false},
		{"((len)+RTA_ALIGNTO-1)", 0, false},
	}
	for _, tt := range tests {
		got, ok := eval(tt.expr, known)
		if got != tt.want || ok != tt.ok {
			t.Errorf("eval(%q) = %d, %v; want %d, %v", tt.expr, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDefines(t *testing.T) {
	got := parseDefines(header(t), "RTM_F_")
	want := []constant{
		{"RTM_F_NOTIFY", 0x100},
		{"RTM_F_CLONED", 0x200},
		{"RTM_F_EQUALIZE", 0x400},
		{"RTM_F_PREFIX", 0x800},
		{"RTM_F_LOOKUP_TABLE", 0x1000},
		{"RTM_F_OFFLOAD", 0x2000},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
	if got := parseDefines(header(t), "RTNL_FAMILY_"); len(got) != 2 {
		t.Error("RTNL_FAMILY_MAX should be dropped", got)
	}
}

func TestParseEnums(t *testing.T) {
	got, err := parseEnums(header(t), "RTN_")
	rtx.Must(err, "parseEnums")
	want := []constant{{"RTN_UNSPEC", 0}, {"RTN_UNICAST", 1}, {"RTN_LOCAL", 2}, {"RTN_BROADCAST", 3}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}

	got, err = parseEnums(header(t), "RTM_")
	rtx.Must(err, "parseEnums")
	want = []constant{
		{"RTM_BASE", 16},
		{"RTM_NEWLINK", 16},
		{"RTM_DELLINK", 17},
		{"RTM_GETLINK", 18},
		{"RTM_SETLINK", 19},
		{"RTM_NEWADDR", 20},
		{"RTM_DELADDR", 21},
		{"RTM_GETADDR", 22},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(dedupe(got)[0], constant{"RTM_BASE", 16}); diff != nil || len(dedupe(got)) != 7 {
		t.Error("dedupe should keep the first of each value", diff)
	}

	if _, err := parseEnums("enum { X_A = FOO(3), X_B };", "X_"); err == nil {
		t.Error("Expected an error for an unevaluable enumerator")
	}
}

func TestTypeName(t *testing.T) {
	for prefix, want := range map[string]string{"RTN_": "Rtn", "RTM_F_": "RtmF", "IFLA": "Ifla", "NLMSG_": "Nlmsg"} {
		if got := typeName(prefix); got != want {
			t.Errorf("typeName(%q) = %q, want %q", prefix, got, want)
		}
	}
}

func matchAll(t *testing.T, src []byte, patterns ...string) {
	for _, p := range patterns {
		if !regexp.MustCompile(p).Match(src) {
			t.Errorf("Output does not match %q:\n%s", p, src)
		}
	}
}

func TestEmit(t *testing.T) {
	values, err := parseEnums(header(t), "RTN_")
	rtx.Must(err, "parseEnums")
	src, err := emit(&table{
		Source: "rtnetlink.h", Package: "nlenum", Name: "Rtn", Type: "uint8",
		Prefix: "RTN_", Default: "RTN_UNICAST", Values: values,
	})
	rtx.Must(err, "emit")
	matchAll(t, src,
		`(?m)^// Code generated by enumgen from rtnetlink.h. DO NOT EDIT.$`,
		`(?m)^package nlenum$`,
		`type Rtn uint8`,
		`RTN_BROADCAST\s+Rtn = 3`,
		`const RtnDefault = RTN_UNICAST`,
		`var RtnTable = NewTable\("RTN_", map\[Rtn\]string\{`,
		`RTN_LOCAL:\s+"LOCAL",`,
		`func \(v Rtn\) MarshalText\(\) \(\[\]byte, error\)`,
	)
	if strings.Contains(string(src), "import") {
		t.Error("The nlenum package should not import itself")
	}

	src, err = emit(&table{
		Source: "rtnetlink.h", Package: "routes", Name: "RtmF", Type: "uint32",
		Prefix: "RTM_F_", Hex: true, Values: parseDefines(header(t), "RTM_F_"),
	})
	rtx.Must(err, "emit")
	matchAll(t, src,
		`import "github.com/m-lab/nl-dump/nlenum"`,
		`RTM_F_OFFLOAD\s+RtmF = 0x2000`,
		`nlenum\.NewTable\("RTM_F_"`,
	)
}

func TestEmitErrors(t *testing.T) {
	tests := []struct {
		name string
		t    table
	}{
		{"type", table{Type: "int64", Prefix: "X_", Values: []constant{{"X_A", 1}}}},
		{"empty", table{Type: "uint8", Prefix: "X_"}},
		{"overflow", table{Type: "uint8", Prefix: "X_", Values: []constant{{"X_A", 0x100}}}},
		{"default", table{Type: "uint8", Prefix: "X_", Default: "X_B", Values: []constant{{"X_A", 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.t.Name = "X"
			tt.t.Package = "nlenum"
			if _, err := emit(&tt.t); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestGenerateFromConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestGenerateFromConfig")
	rtx.Must(err, "Could not create tempdir")
	defer os.RemoveAll(dir)

	c, err := loadConfig("testdata/enums.yaml")
	rtx.Must(err, "loadConfig")
	if len(c.Headers) != 2 || c.Package != "nlenum" || !c.Headers[0].Enum || c.Headers[1].Type != "uint32" {
		t.Fatalf("%+v", c)
	}
	c.InputDir = "testdata"
	c.OutputDir = dir

	fn, err := generate(c, c.Headers[0])
	rtx.Must(err, "generate")
	if fn != dir+"/rtn_gen.go" {
		t.Error("Wrong file name", fn)
	}
	fn, err = generate(c, c.Headers[1])
	rtx.Must(err, "generate")
	src, err := ioutil.ReadFile(fn)
	rtx.Must(err, "Could not read %s", fn)
	matchAll(t, src, `type RtmF uint32`, `RTM_F_CLONED\s+RtmF = 0x200`)
}

func TestLoadConfigErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestLoadConfigErrors")
	rtx.Must(err, "Could not create tempdir")
	defer os.RemoveAll(dir)

	if _, err := loadConfig(dir + "/missing.yaml"); err == nil {
		t.Error("Expected an error for a missing file")
	}
	rtx.Must(ioutil.WriteFile(dir+"/bad.yaml", []byte("headers:\n  - file: if.h\n"), 0644), "write")
	if _, err := loadConfig(dir + "/bad.yaml"); err == nil {
		t.Error("Expected an error for a header without a prefix")
	}
	rtx.Must(ioutil.WriteFile(dir+"/invalid.yaml", []byte("headers: [\n"), 0644), "write")
	if _, err := loadConfig(dir + "/invalid.yaml"); err == nil {
		t.Error("Expected an error for invalid yaml")
	}
}

func TestMainFlags(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestMainFlags")
	rtx.Must(err, "Could not create tempdir")
	defer os.RemoveAll(dir)

	savedArgs := os.Args
	defer func() { os.Args = savedArgs }()
	os.Args = []string{"enumgen", "-input_dir=testdata", "-output_dir=" + dir, "-prefix=RTM_F_", "-type=uint32", "-hex", "rtnetlink.h"}

	main()

	src, err := ioutil.ReadFile(dir + "/rtmf_gen.go")
	rtx.Must(err, "main did not write the table")
	matchAll(t, src, `RTM_F_NOTIFY\s+RtmF = 0x100`)
}
