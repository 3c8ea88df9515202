package trie

import "testing"

func assertSetEquals(t *testing.T, got []int, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v (length mismatch)", got, want)
	}
	seen := make(map[int]bool, len(want))
	for _, w := range want {
		seen[w] = true
	}
	for _, g := range got {
		if !seen[g] {
			t.Fatalf("got %v, want %v (unexpected element %d)", got, want, g)
		}
	}
}

func TestAdd(t *testing.T) {
	tr := New()
	tr.Add("foo", 1)
	if len(tr.root.children) != 1 || tr.root.children[0].letter != 'f' {
		t.Fatalf("expected single 'f' child at root")
	}
	f := tr.root.children[0]
	if len(f.children) != 1 || f.children[0].letter != 'o' {
		t.Fatalf("expected single 'o' child under 'f'")
	}
	o1 := f.children[0]
	if len(o1.children) != 1 || o1.children[0].letter != 'o' {
		t.Fatalf("expected single 'o' child under 'fo'")
	}
	o2 := o1.children[0]
	assertSetEquals(t, o2.payloads, []int{1})

	tr.Add("f", 2)
	assertSetEquals(t, f.payloads, []int{2})
}

func TestLookupExactAndMissing(t *testing.T) {
	tr := New()
	tr.Add("foo", 1)

	if tr.Lookup("f").Len() != 0 {
		t.Error("lookup of partial prefix should be empty")
	}
	if tr.Lookup("fo").Len() != 0 {
		t.Error("lookup of partial prefix should be empty")
	}
	assertSetEquals(t, tr.Lookup("foo").Items(), []int{1})

	tr.Add("f", 2)
	assertSetEquals(t, tr.Lookup("f").Items(), []int{2})
	if tr.Lookup("fo").Len() != 0 {
		t.Error("lookup of partial prefix should be empty")
	}
	assertSetEquals(t, tr.Lookup("foo").Items(), []int{1})
}

func TestLookupPlusRepeats(t *testing.T) {
	tr := New()
	tr.Add("ab", 1)
	tr.Add("aab", 2)
	tr.Add("aaab", 3)
	tr.Add("aaa", 0)
	tr.Add("aaaab", 4)
	tr.Add("aaaabb", 0)

	assertSetEquals(t, tr.Lookup("a+b").Items(), []int{1, 2, 3, 4})
}

func TestLookupDotWildcard(t *testing.T) {
	tr := New()
	tr.Add("aaaa", 1)
	tr.Add("aaba", 2)
	tr.Add("aaca", 3)
	tr.Add("abaa", 4)

	assertSetEquals(t, tr.Lookup("aa.a").Items(), []int{1, 2, 3})
}

func TestLookupNeverFails(t *testing.T) {
	tr := New()
	tr.Add("cat", 1)
	if tr.Lookup("dog").Len() != 0 {
		t.Error("lookup of absent path should be empty, not an error")
	}
	// The root has no letter, so each leading '+' adds no repetition and
	// "+++..." matches exactly what "..." matches.
	if got := tr.Lookup("+++...").Items(); len(got) != 1 || got[0] != 1 {
		t.Errorf("leading '+' at the root should match like \"...\" and find cat, got %v", got)
	}
}
