package module

import (
	"testing"

	kit "lunacycle/internal/platform/testkit"
)

type bundle struct {
	Foo FooPort
	Bar int
}

type hidden struct {
	foo FooPort
}

func TestPortsOf_Bundles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		ports any
		want  int // 0 means not found
	}{
		{"nil", nil, 0},
		{"direct", FooPort(fooImpl{v: 42}), 42},
		{"struct field", bundle{Foo: fooImpl{v: 7}, Bar: 1}, 7},
		{"pointer to struct", &bundle{Foo: fooImpl{v: 8}}, 8},
		{"nil pointer", (*bundle)(nil), 0},
		{"unexported field", hidden{foo: fooImpl{v: 1}}, 0},
		{"scalar", 5, 0},
	}
	for _, c := range cases {
		got, ok := PortsOf[FooPort](fakeModule{name: c.name, ports: c.ports})
		switch {
		case c.want == 0 && ok:
			t.Fatalf("%s: unexpected match %v", c.name, got)
		case c.want != 0 && (!ok || got.Foo() != c.want):
			t.Fatalf("%s: got %v, %v; want Foo()=%d", c.name, got, ok, c.want)
		}
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	if got := MustPortsOf[FooPort](fakeModule{name: "ok", ports: fooImpl{v: 99}}); got.Foo() != 99 {
		t.Fatalf("Foo() = %d", got.Foo())
	}

	msg := kit.MustPanic(t, func() { _ = MustPortsOf[FooPort](fakeModule{name: "static"}) })
	kit.MustContain(t, msg.(string), "requested port not found on module static")
}
