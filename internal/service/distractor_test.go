package service

import (
	"testing"
)

func TestSelectDistractorsExcludesCorrectAndDuplicates(t *testing.T) {
	rng := testRNG(1)
	pool := testPool(10, 1, 1)
	correct := pool[4]

	for i := 0; i < 200; i++ {
		got := selectDistractors(rng, pool, correct, 3)

		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}

		seen := make(map[string]bool, len(got))
		for _, s := range got {
			if s.ID == correct.ID {
				t.Fatalf("distractors contain the correct species %q", s.ID)
			}
			if seen[s.ID] {
				t.Fatalf("duplicate distractor %q", s.ID)
			}
			seen[s.ID] = true
		}
	}
}

func TestSelectDistractorsShortPool(t *testing.T) {
	rng := testRNG(1)
	pool := testPool(3, 1, 1)

	got := selectDistractors(rng, pool, pool[0], 3)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (all remaining species)", len(got))
	}
}

func TestSelectDistractorsDoesNotMutatePool(t *testing.T) {
	rng := testRNG(7)
	pool := testPool(8, 1, 1)

	order := make([]string, len(pool))
	for i, s := range pool {
		order[i] = s.ID
	}

	_ = selectDistractors(rng, pool, pool[0], 3)

	for i, s := range pool {
		if s.ID != order[i] {
			t.Fatalf("pool order changed at %d: %q -> %q", i, order[i], s.ID)
		}
	}
}
