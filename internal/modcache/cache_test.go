package modcache

import (
	"path/filepath"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	key := HashSource([]byte("class C {}"))
	var miss Payload
	if ok, err := c.Get(key, &miss); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	in := &Payload{Path: "c.cin", Module: ".data_start\n.data_end\n"}
	if err := c.Put(key, in); err != nil {
		t.Fatal(err)
	}

	var out Payload
	ok, err := c.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if out.Module != in.Module || out.Path != in.Path {
		t.Errorf("payload mismatch: %+v", out)
	}
}

func TestHashSourceDiffers(t *testing.T) {
	a := HashSource([]byte("class A {}"))
	b := HashSource([]byte("class B {}"))
	if a == b {
		t.Fatal("distinct sources must hash differently")
	}
}

func TestDropAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := OpenAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	key := HashSource([]byte("x"))
	if err := c.Put(key, &Payload{Module: "m"}); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	var out Payload
	if ok, _ := c.Get(key, &out); ok {
		t.Fatal("cache must be empty after DropAll")
	}
}
