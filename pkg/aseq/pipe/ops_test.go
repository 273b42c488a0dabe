package pipe

import (
	"strings"
	"testing"

	"github.com/ib-77/aseq/pkg/aseq"
)

func TestMap_DenseCollection(t *testing.T) {
	t.Parallel()

	out, err := From([]any{1, 2, 3}).Map(func(_, v any, _ int, _ []any) (any, error) {
		return v.(int) * 10, nil
	}).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	want := []any{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMap_PreservesHolePattern(t *testing.T) {
	t.Parallel()

	calls := 0
	out, err := From([]any{aseq.Hole, aseq.Hole, 1, aseq.Hole, 2, aseq.Hole, aseq.Hole}).
		Serial().
		Map(func(_, v any, _ int, _ []any) (any, error) {
			calls++
			return v.(int) * 2, nil
		}).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 invocations, got %d", calls)
	}

	got := out.([]any)
	want := []any{aseq.Hole, aseq.Hole, 2, aseq.Hole, 4, aseq.Hole, aseq.Hole}
	if len(got) != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v at %d, got %v", want[i], i, got[i])
		}
	}
}

func TestMap_IndexAndSourceArguments(t *testing.T) {
	t.Parallel()

	out, err := From([]any{1, 2, 3}).Map(func(_, v any, i int, src []any) (any, error) {
		prev := 0
		if i > 0 {
			prev = src[i-1].(int)
		}
		return v.(int) + prev, nil
	}).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	want := []any{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMap_ParallelAndSerialAgreeOnPureCallables(t *testing.T) {
	t.Parallel()

	double := func(_, v any, _ int, _ []any) (any, error) {
		return v.(int) * 2, nil
	}
	src := []any{5, 3, 8, 1}

	par, err := From(src).Map(double).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ser, err := From(src).Serial().Map(double).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, s := par.([]any), ser.([]any)
	for i := range p {
		if p[i] != s[i] {
			t.Fatalf("expected identical outputs, got %v vs %v", p, s)
		}
	}
}

func TestMap_OverString(t *testing.T) {
	t.Parallel()

	out, err := From("abc").Map(func(_, v any, _ int, _ []any) (any, error) {
		return strings.ToUpper(v.(string)), nil
	}).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	if got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("expected upper-cased runes, got %v", got)
	}
}

func TestMap_OverRecordTreatsGapsAsUndefined(t *testing.T) {
	t.Parallel()

	out, err := From(map[string]any{"length": 2, "0": "x"}).Map(identity).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	if got[0] != "x" {
		t.Fatalf("expected x, got %v", got[0])
	}
	// the record gap was invoked, unlike a hole
	if got[1] != aseq.Undefined {
		t.Fatalf("expected Undefined at gap, got %v", got[1])
	}
}

func TestForEach_SettlesToUndefined(t *testing.T) {
	t.Parallel()

	v, err := From([]any{1, 2}).ForEach(identity).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != aseq.Undefined {
		t.Fatalf("expected Undefined, got %v", v)
	}
}

func TestFilter_KeepsTruthyAndDropsHoles(t *testing.T) {
	t.Parallel()

	out, err := From([]any{aseq.Hole, 1, 0, aseq.Hole, 2, "", 3}).
		Filter(func(_, v any, _ int, _ []any) (any, error) {
			return v, nil
		}).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	want := []any{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFilter_SettlesDeferredElementsBeforeKeeping(t *testing.T) {
	t.Parallel()

	out, err := From([]any{aseq.Resolve[any](4), 5}).
		Filter(func(_, v any, _ int, _ []any) (any, error) {
			return v.(int)%2 == 0, nil
		}).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	if len(got) != 1 || got[0] != 4 {
		t.Fatalf("expected settled element 4, got %v", got)
	}
}

func TestFind_FirstMatchByIndexNotCompletion(t *testing.T) {
	t.Parallel()

	isEven := func(_, v any, _ int, _ []any) (any, error) {
		return v.(int)%2 == 0, nil
	}

	v, err := From([]any{1, 4, 6}).Find(isEven).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 4 {
		t.Fatalf("expected 4, got %v", v)
	}

	v, err = From([]any{1, 3}).Find(isEven).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != aseq.Undefined {
		t.Fatalf("expected Undefined for no match, got %v", v)
	}
}

func TestFindIndex(t *testing.T) {
	t.Parallel()

	isEven := func(_, v any, _ int, _ []any) (any, error) {
		return v.(int)%2 == 0, nil
	}

	i, err := From([]any{1, 4, 6}).FindIndex(isEven).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != 1 {
		t.Fatalf("expected 1, got %v", i)
	}

	i, err = From([]any{1, 3}).FindIndex(isEven).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != -1 {
		t.Fatalf("expected -1, got %v", i)
	}
}

func TestSomeAndEvery(t *testing.T) {
	t.Parallel()

	positive := func(_, v any, _ int, _ []any) (any, error) {
		return v.(int) > 0, nil
	}

	some, err := From([]any{-1, 2}).Some(positive).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if some != true {
		t.Fatalf("expected true, got %v", some)
	}

	every, err := From([]any{-1, 2}).Every(positive).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if every != false {
		t.Fatalf("expected false, got %v", every)
	}

	// holes count for neither
	every, err = From([]any{aseq.Hole, 1}).Every(positive).Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if every != true {
		t.Fatalf("expected true with holes skipped, got %v", every)
	}
}

func TestOperations_ChainAcrossStages(t *testing.T) {
	t.Parallel()

	out, err := From([]any{1, 2, 3, 4}).
		Map(func(_, v any, _ int, _ []any) (any, error) {
			return aseq.Resolve[any](v.(int) * v.(int)), nil
		}).
		Filter(func(_, v any, _ int, _ []any) (any, error) {
			return v.(int) > 3, nil
		}).
		Await()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.([]any)
	want := []any{4, 9, 16}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
