// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tasuku_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/tasuku"
)

func TestBindSequences(t *testing.T) {
	first := tasuku.New(func() (int, error) { return 10, nil })
	combined := tasuku.Bind(first, func(x int) *tasuku.Task[int] {
		return tasuku.New(func() (int, error) { return x * 2, nil })
	})
	got, err := tasuku.Wait[int](combined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestBindChangesType(t *testing.T) {
	first := tasuku.New(func() (int, error) { return 7, nil })
	combined := tasuku.Bind(first, func(x int) *tasuku.Task[string] {
		return tasuku.New(func() (string, error) {
			if x == 7 {
				return "seven", nil
			}
			return "", nil
		})
	})
	got, err := tasuku.Wait[string](combined)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "seven" {
		t.Fatalf("got %q, want %q", got, "seven")
	}
}

func TestBindShortCircuitsOnError(t *testing.T) {
	sentinel := errors.New("first failed")
	ran := false
	first := tasuku.New(func() (int, error) { return 0, sentinel })
	combined := tasuku.Bind(first, func(x int) *tasuku.Task[int] {
		ran = true
		return tasuku.New(func() (int, error) { return x, nil })
	})
	_, err := tasuku.Wait[int](combined)
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want sentinel error", err)
	}
	if ran {
		t.Fatal("continuation ran after failure")
	}
}

func TestBindBodyPanicCaptured(t *testing.T) {
	first := tasuku.New(func() (int, error) { return 1, nil })
	combined := tasuku.Bind(first, func(int) *tasuku.Task[int] {
		panic("body exploded")
	})

	defer func() {
		if v := recover(); v != "body exploded" {
			t.Fatalf("got %v, want body panic payload", v)
		}
	}()
	_, _ = tasuku.Wait[int](combined)
	t.Fatal("expected re-raised panic")
}

func TestMapTransforms(t *testing.T) {
	task := tasuku.Map(
		tasuku.New(func() (int, error) { return 21, nil }),
		func(x int) int { return x * 2 },
	)
	got, err := tasuku.Wait[int](task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestMapPropagatesError(t *testing.T) {
	sentinel := errors.New("nope")
	ran := false
	task := tasuku.Map(
		tasuku.New(func() (int, error) { return 0, sentinel }),
		func(x int) int {
			ran = true
			return x
		},
	)
	_, err := tasuku.Wait[int](task)
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want sentinel error", err)
	}
	if ran {
		t.Fatal("transform ran after failure")
	}
}

func TestThenDiscardsFirstResult(t *testing.T) {
	order := []string{}
	first := tasuku.New(func() (string, error) {
		order = append(order, "first")
		return "ignored", nil
	})
	second := tasuku.New(func() (int, error) {
		order = append(order, "second")
		return 5, nil
	})
	got, err := tasuku.Wait[int](tasuku.Then(first, second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("got order %v, want [first second]", order)
	}
}

func TestThenSkipsSecondOnError(t *testing.T) {
	sentinel := errors.New("first failed")
	ran := false
	first := tasuku.New(func() (string, error) { return "", sentinel })
	second := tasuku.New(func() (int, error) {
		ran = true
		return 5, nil
	})
	_, err := tasuku.Wait[int](tasuku.Then(first, second))
	if !errors.Is(err, sentinel) {
		t.Fatalf("got %v, want sentinel error", err)
	}
	if ran {
		t.Fatal("second task ran after first failed")
	}
}

func TestBindAssociativity(t *testing.T) {
	// Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
	mk := func() *tasuku.Task[int] {
		return tasuku.New(func() (int, error) { return 2, nil })
	}
	f := func(x int) *tasuku.Task[int] {
		return tasuku.New(func() (int, error) { return x + 3, nil })
	}
	g := func(x int) *tasuku.Task[int] {
		return tasuku.New(func() (int, error) { return x * 2, nil })
	}

	left, err := tasuku.Wait[int](tasuku.Bind(tasuku.Bind(mk(), f), g))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	right, err := tasuku.Wait[int](tasuku.Bind(mk(), func(x int) *tasuku.Task[int] {
		return tasuku.Bind(f(x), g)
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left != right {
		t.Fatalf("associativity failed: %d != %d", left, right)
	}
}
