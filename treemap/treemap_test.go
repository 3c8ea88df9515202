package treemap

import (
	"math/rand"
	"testing"
)

func TestPutAndGet(t *testing.T) {
	tree := NewTreeMap[int, string]()

	tree.Put(10, "ten")
	tree.Put(20, "twenty")
	tree.Put(5, "five")

	if val, ok := tree.Get(10); !ok || val != "ten" {
		t.Errorf("Expected 'ten', got %v", val)
	}
	if val, ok := tree.Get(20); !ok || val != "twenty" {
		t.Errorf("Expected 'twenty', got %v", val)
	}
	if val, ok := tree.Get(5); !ok || val != "five" {
		t.Errorf("Expected 'five', got %v", val)
	}

	if _, ok := tree.Get(100); ok {
		t.Errorf("Expected key 100 to not exist")
	}
}

func TestOverwriteValue(t *testing.T) {
	tree := NewTreeMap[int, string]()
	tree.Put(10, "ten")
	tree.Put(10, "TEN")

	if val, ok := tree.Get(10); !ok || val != "TEN" {
		t.Errorf("Expected 'TEN', got %v", val)
	}
}

func TestKeysAscending(t *testing.T) {
	tree := NewTreeMap[int, []int]()
	tree.Put(5, []int{0, 1})
	tree.Put(3, []int{2})
	tree.Put(8, []int{3})
	tree.Put(1, []int{4})

	keys := tree.Keys()
	want := []int{1, 3, 5, 8}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestEdgeCases(t *testing.T) {
	tree := NewTreeMap[int, string]()

	tree.Put(10, "ten")
	tree.Put(10, "TEN")
	if val, _ := tree.Get(10); val != "TEN" {
		t.Errorf("Expected TEN after overwrite, got %s", val)
	}

	// Insert in sorted order (worst case for an unbalanced tree).
	for i := 1; i <= 1000; i++ {
		tree.Put(i, "val")
	}
	// Key 10 falls inside 1..1000 and is overwritten, not added again.
	if len(tree.Keys()) != 1000 {
		t.Errorf("Expected 1000 keys, got %d", len(tree.Keys()))
	}
}

func TestRandomInsert(t *testing.T) {
	tree := NewTreeMap[int, int]()
	n := 1000

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		val := rand.Intn(10000)
		tree.Put(val, val)
		seen[val] = true
	}

	if len(tree.Keys()) != len(seen) {
		t.Errorf("got %d distinct keys, want %d", len(tree.Keys()), len(seen))
	}
}

func TestWithStrings(t *testing.T) {
	tree := NewTreeMap[string, string]()
	tree.Put("apple", "fruit")
	tree.Put("banana", "fruit")
	tree.Put("carrot", "vegetable")

	if val, ok := tree.Get("apple"); !ok || val != "fruit" {
		t.Errorf("Expected apple -> fruit, got %v", val)
	}
	keys := tree.Keys()
	want := []string{"apple", "banana", "carrot"}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}
