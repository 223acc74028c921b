package store

import (
	"context"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	if data, err := kv.Get(ctx, "missing"); err != nil || data != nil {
		t.Fatalf("missing key should read nil,nil; got %v, %v", data, err)
	}

	if err := kv.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	data, err := kv.Get(ctx, "k")
	if err != nil || string(data) != `{"a":1}` {
		t.Fatalf("Get after Set = %q, %v", data, err)
	}

	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if data, _ := kv.Get(ctx, "k"); data != nil {
		t.Fatalf("key survived delete: %q", data)
	}
}

func TestGetJSONCorruptBlobReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	if err := kv.Set(ctx, "bad", []byte(`{not json`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var dest map[string]int
	found, err := GetJSON(ctx, kv, "bad", &dest)
	if err != nil {
		t.Fatalf("corrupt blob must not error: %v", err)
	}
	if found {
		t.Fatal("corrupt blob should read as missing")
	}
}

func TestSetJSONGetJSON(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	in := map[string]int{"x": 42}
	if err := SetJSON(ctx, kv, "k", in); err != nil {
		t.Fatalf("SetJSON failed: %v", err)
	}
	var out map[string]int
	found, err := GetJSON(ctx, kv, "k", &out)
	if err != nil || !found {
		t.Fatalf("GetJSON = %v, %v", found, err)
	}
	if out["x"] != 42 {
		t.Fatalf("round trip lost data: %v", out)
	}
}
