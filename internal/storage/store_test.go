package storage

import (
	"reflect"
	"sync"
	"testing"
)

type snapshot struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(NewMemoryBackend()).ForUser("1")

	in := snapshot{Name: "독해왕", Count: 3, Tags: []string{"a", "b"}}
	if !store.Save("snap", in) {
		t.Fatal("Save() returned false")
	}

	var out snapshot
	if !store.Load("snap", &out) {
		t.Fatal("Load() returned false for existing key")
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip changed value: got %+v, want %+v", out, in)
	}
}

func TestSaveIsStable(t *testing.T) {
	// Re-saving a loaded value must not change the persisted bytes
	backend := NewMemoryBackend()
	store := New(backend).ForUser("1")

	store.Save("snap", snapshot{Name: "x", Count: 1, Tags: []string{}})
	first, err := backend.Get("user:1:snap")
	if err != nil {
		t.Fatalf("backend.Get() error: %v", err)
	}

	var loaded snapshot
	store.Load("snap", &loaded)
	store.Save("snap", loaded)

	second, err := backend.Get("user:1:snap")
	if err != nil {
		t.Fatalf("backend.Get() error: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("save(load(x)) changed bytes: %s -> %s", first, second)
	}
}

func TestLoadMissingLeavesDefaults(t *testing.T) {
	store := New(NewMemoryBackend()).ForUser("1")

	out := snapshot{Name: "default", Count: 7}
	if store.Load("missing", &out) {
		t.Error("Load() should return false for a missing key")
	}
	if out.Name != "default" || out.Count != 7 {
		t.Errorf("Load() touched dest on miss: %+v", out)
	}
}

func TestLoadCorruptLeavesDefaults(t *testing.T) {
	backend := NewMemoryBackend()
	backend.Set("user:1:snap", []byte("{not json"))
	store := New(backend).ForUser("1")

	out := snapshot{Name: "default"}
	if store.Load("snap", &out) {
		t.Error("Load() should return false for corrupt bytes")
	}
	if out.Name != "default" {
		t.Errorf("Load() touched dest on corrupt value: %+v", out)
	}
}

func TestRemove(t *testing.T) {
	store := New(NewMemoryBackend()).ForUser("1")

	store.Save("snap", snapshot{Name: "x"})
	if !store.Remove("snap") {
		t.Fatal("Remove() returned false")
	}

	var out snapshot
	if store.Load("snap", &out) {
		t.Error("Load() should fail after Remove()")
	}
}

func TestClearIsScopedToUser(t *testing.T) {
	backend := NewMemoryBackend()
	root := New(backend)

	root.ForUser("1").Save("snap", snapshot{Name: "one"})
	root.ForUser("2").Save("snap", snapshot{Name: "two"})

	if !root.ForUser("1").Clear() {
		t.Fatal("Clear() returned false")
	}

	var out snapshot
	if root.ForUser("1").Load("snap", &out) {
		t.Error("user 1 data should be gone after Clear()")
	}
	if !root.ForUser("2").Load("snap", &out) {
		t.Error("user 2 data should survive user 1's Clear()")
	}
}

func TestUpdateSerializesWriters(t *testing.T) {
	store := New(NewMemoryBackend()).ForUser("1")
	store.Save("counter", snapshot{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("counter", func() {
				var s snapshot
				store.Load("counter", &s)
				s.Count++
				store.Save("counter", s)
			})
		}()
	}
	wg.Wait()

	var out snapshot
	store.Load("counter", &out)
	if out.Count != 50 {
		t.Errorf("Count = %d after 50 locked increments, want 50", out.Count)
	}
}
