package automata_test

import (
	"testing"

	"github.com/jmaarleveld/automata"
)

func TestCompileAndMatch(t *testing.T) {
	re, err := automata.Compile("(ab)*")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.Match("ababab") {
		t.Error("expected (ab)* to match \"ababab\"")
	}
	if re.Match("aba") {
		t.Error("expected (ab)* to reject \"aba\"")
	}
	if !re.MatchString("ababab") {
		t.Error("expected (ab)* to MatchString \"ababab\"")
	}
	if re.MatchString("aba") {
		t.Error("expected (ab)* to reject MatchString \"aba\"")
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustCompile to panic on an unbalanced pattern")
		}
	}()
	automata.MustCompile("(a")
}

func TestCompileWithConfig(t *testing.T) {
	cfg := automata.DefaultConfig()
	cfg.MaxGroupDepth = 1
	if _, err := automata.CompileWithConfig("((a))", cfg); err == nil {
		t.Error("expected exceeding MaxGroupDepth to fail")
	}
}
