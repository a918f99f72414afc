package moveplot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveMoves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.png")

	movesA := []int{1, 1, 0, 1, 0}
	movesB := []int{0, 1, 0, 0, 1}
	if err := SaveMoves(movesA, movesB, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Errorf("expected a non-empty image file at %v", path)
	}
}

func TestSaveMovesEmptyHistories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := SaveMoves(nil, nil, path); err != nil {
		t.Fatal(err)
	}
}
