package edit

import "testing"

func buildTestTree() *CompletionNode {
	root := NewCompletionRoot()
	first := Add(root, "first")
	Add(first, "second")
	what := Add(root, "what")
	Add(what, "other")
	something := Add(what, "something")
	Add(something, "else")
	Add(root, "wow")
	return root
}

func TestCompletionAddAndLookup(t *testing.T) {
	root := buildTestTree()

	first, ok := root.Lookup("first")
	if !ok {
		t.Fatalf("Lookup(first) not found")
	}
	if _, ok := first.Lookup("second"); !ok {
		t.Errorf("Lookup(second) under first not found")
	}
	if _, ok := root.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) unexpectedly found")
	}
}

func TestCompletionChildrenOrder(t *testing.T) {
	root := buildTestTree()
	children := root.Children()
	var labels []string
	for _, c := range children {
		labels = append(labels, c.Label())
	}
	want := []string{"first", "what", "wow"}
	if len(labels) != len(want) {
		t.Fatalf("Children() = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Children()[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestCompletionDuplicateLabelsPermitted(t *testing.T) {
	root := NewCompletionRoot()
	Add(root, "dup")
	Add(root, "dup")
	if len(root.Children()) != 2 {
		t.Errorf("duplicate labels collapsed: Children() has %d entries, want 2", len(root.Children()))
	}
}

func TestCompletionMatches(t *testing.T) {
	root := buildTestTree()
	what, _ := root.Lookup("what")
	matches := what.Matches("some")
	if len(matches) != 1 || matches[0] != "something" {
		t.Errorf("Matches(some) = %v, want [something]", matches)
	}

	matches = root.Matches("")
	if len(matches) != 3 {
		t.Errorf("Matches(\"\") = %v, want 3 entries", matches)
	}
}
