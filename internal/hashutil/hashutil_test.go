package hashutil

import "testing"

func TestHashStringsSeparatesParts(t *testing.T) {
	if HashStrings("ab", "c") == HashStrings("a", "bc") {
		t.Error("boundary shift produced the same hash")
	}
	if HashStrings("a", "b") != HashStrings("a", "b") {
		t.Error("identical inputs hashed differently")
	}
}

func TestGameState(t *testing.T) {
	base := GameState("Q2", 2, "4:21", 50, 48)
	if base != GameState("Q2", 2, "4:21", 50, 48) {
		t.Error("identical states hashed differently")
	}
	if base == GameState("Q2", 2, "4:21", 52, 48) {
		t.Error("score change did not change the hash")
	}
	if base == GameState("Q3", 3, "12:00", 50, 48) {
		t.Error("period change did not change the hash")
	}
}
