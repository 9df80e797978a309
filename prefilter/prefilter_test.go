package prefilter

import "testing"

func TestBuildAndFind(t *testing.T) {
	pf, err := Build([]string{"cat", "dog", "bird"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	haystack := []byte("the quick dog jumps over the lazy cat")
	c := pf.Find(haystack, 0)
	if c == nil {
		t.Fatal("Find() = nil, want a candidate")
	}
	if got := string(haystack[c.Start:c.End]); got != "dog" {
		t.Errorf("Find() matched %q, want \"dog\"", got)
	}
}

func TestFindNoMatch(t *testing.T) {
	pf, err := Build([]string{"zebra"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if c := pf.Find([]byte("no such animal here"), 0); c != nil {
		t.Errorf("Find() = %+v, want nil", c)
	}
}

func TestIsMatch(t *testing.T) {
	pf, err := Build([]string{"foo", "bar"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !pf.IsMatch([]byte("xxbarxx")) {
		t.Error("IsMatch() = false, want true")
	}
	if pf.IsMatch([]byte("xxxxxxx")) {
		t.Error("IsMatch() = true, want false")
	}
}

func TestFindAtOffset(t *testing.T) {
	pf, err := Build([]string{"ab"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	haystack := []byte("ab..ab")
	c := pf.Find(haystack, 1)
	if c == nil || c.Start != 4 {
		t.Errorf("Find(haystack, 1) = %+v, want Start=4", c)
	}
}
