package driver

import (
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt error: %v", err)
	}

	res := ParseSource("cached.vt", []byte("$a = 1;\n$b = 2;\n"), 50)
	payload := PayloadFor(res)
	if payload.Broken {
		t.Fatalf("clean source marked broken: %+v", res.Bag.Items())
	}
	if payload.StmtCount != 2 {
		t.Fatalf("StmtCount = %d, want 2", payload.StmtCount)
	}

	key := res.File.Hash
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if got.Path != payload.Path || got.StmtCount != 2 || got.Broken {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt error: %v", err)
	}

	var out DiskPayload
	hit, err := cache.Get(Digest{1, 2, 3}, &out)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Fatal("expected a miss for an unknown digest")
	}
}

func TestDiskCacheRecordsErrorIDs(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt error: %v", err)
	}

	res := ParseSource("broken.vt", []byte("$a = ;\n"), 50)
	payload := PayloadFor(res)
	if !payload.Broken {
		t.Fatal("syntax error must mark the payload broken")
	}
	if len(payload.ErrorIDs) != 1 || payload.ErrorIDs[0] != "SYN2006" {
		t.Fatalf("ErrorIDs = %v, want [SYN2006]", payload.ErrorIDs)
	}

	key := res.File.Hash
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	var got DiskPayload
	if hit, err := cache.Get(key, &got); err != nil || !hit {
		t.Fatalf("Get = %v, %v; want hit", hit, err)
	}
	if !got.Broken || len(got.ErrorIDs) != 1 {
		t.Fatalf("payload mismatch: %+v", got)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir() + "/cache")
	if err != nil {
		t.Fatalf("OpenDiskCacheAt error: %v", err)
	}

	key := Digest{9}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "x.vt"}); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll error: %v", err)
	}

	var out DiskPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get after drop error: %v", err)
	}
	if hit {
		t.Fatal("expected a miss after DropAll")
	}
}
