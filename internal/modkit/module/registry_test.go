package module

import (
	"sync"
	"testing"
)

func TestRegistry_AddSkipsPortless(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(fakeModule{name: "meta"}, fakeModule{name: "forum", ports: fooImpl{v: 3}}, nil)

	if _, ok := PortsAs[any](r, "meta"); ok {
		t.Fatal("portless module should not be registered")
	}
	got, ok := PortsAs[FooPort](r, "forum")
	if !ok || got.Foo() != 3 {
		t.Fatalf("forum ports = %v, %v", got, ok)
	}
	if _, ok := PortsAs[string](r, "forum"); ok {
		t.Fatal("wrong type assertion should report !ok")
	}
}

func TestRegistry_BundleFieldsAndNames(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(fakeModule{name: "cycle", ports: bundle{Foo: fooImpl{v: 9}}}, fakeModule{name: "chat", ports: fooImpl{v: 1}})

	got, ok := PortsAs[FooPort](r, "cycle")
	if !ok || got.Foo() != 9 {
		t.Fatalf("cycle ports = %v, %v", got, ok)
	}
	if _, ok := PortsAs[FooPort](r, "forum"); ok {
		t.Fatal("unregistered name should report !ok")
	}
	if names := r.Names(); len(names) != 2 || names[0] != "chat" || names[1] != "cycle" {
		t.Fatalf("Names = %v", names)
	}
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register("static", i)
			_, _ = PortsAs[int](r, "static")
		}()
	}
	wg.Wait()
	if _, ok := PortsAs[int](r, "static"); !ok {
		t.Fatal("expected a value after concurrent registers")
	}
}
