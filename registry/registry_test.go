package registry

import (
	"testing"
	"time"

	"github.com/lixenwraith/boxworld/entity"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(d int) time.Time {
	return epoch.Add(time.Duration(d) * time.Second)
}

func newRegistry() *Registry {
	return New(entity.NewPlayer(epoch))
}

func TestInsertAndFind(t *testing.T) {
	r := newRegistry()
	s := entity.NewSign("m", "hello", at(1))
	if err := r.Insert(s); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, ok := r.FindByAddress("m")
	if !ok || got != s {
		t.Fatal("Expected to find inserted sign")
	}
	if _, ok := r.FindByAddress("a"); ok {
		t.Error("Expected player to be excluded from address lookup")
	}
	if len(r.All()) != 2 || r.All()[0] != r.Player() {
		t.Errorf("Expected flattened view with player first, got %d entries", len(r.All()))
	}
}

func TestInsertRejectsPlayer(t *testing.T) {
	r := newRegistry()
	if err := r.Insert(entity.NewPlayer(epoch)); err != ErrPlayerEntity {
		t.Errorf("Expected ErrPlayerEntity, got %v", err)
	}
	if _, err := r.Remove(r.Player()); err != ErrPlayerEntity {
		t.Errorf("Expected ErrPlayerEntity on remove, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	r := newRegistry()
	v := entity.NewVortex("b", "f", true, "", at(1))
	_ = r.Insert(v)

	removed, err := r.Remove(v)
	if err != nil || !removed {
		t.Fatalf("Expected removal, got %v %v", removed, err)
	}
	if r.Occupied("b") {
		t.Error("Expected address b to be free")
	}
	removed, _ = r.Remove(v)
	if removed {
		t.Error("Expected second removal to report absent")
	}
}

func TestFindInBox(t *testing.T) {
	r := newRegistry()
	_ = r.Insert(entity.NewSign("b", "", at(1)))
	_ = r.Insert(entity.NewSign("eb", "", at(2)))
	_ = r.Insert(entity.NewVortex("ec", "a", true, "", at(3)))

	root := r.FindInBox("")
	if len(root) != 2 {
		t.Errorf("Expected player and one sign in root box, got %d", len(root))
	}
	inner := r.FindInBox("e")
	if len(inner) != 2 {
		t.Errorf("Expected two things in box e, got %d", len(inner))
	}
}

func TestResolveDuplicatesKeepsLatest(t *testing.T) {
	r := newRegistry()
	older := entity.NewSign("m", "old", at(1))
	newer := entity.NewSign("m", "new", at(5))
	vortex := entity.NewVortex("m", "a", true, "", at(3))

	removed := r.Replace([]*entity.Thing{newer, older}, []*entity.Thing{vortex})
	if removed != 2 {
		t.Errorf("Expected 2 removals, got %d", removed)
	}
	got, ok := r.FindByAddress("m")
	if !ok || got != newer {
		t.Fatalf("Expected latest sign to survive, got %+v", got)
	}
	if len(r.Signs()) != 1 || len(r.Vortexes()) != 0 {
		t.Errorf("Expected 1 sign and 0 vortexes, got %d and %d", len(r.Signs()), len(r.Vortexes()))
	}
}

func TestResolveDuplicatesIdempotent(t *testing.T) {
	r := newRegistry()
	r.Replace(
		[]*entity.Thing{
			entity.NewSign("b", "1", at(1)),
			entity.NewSign("b", "2", at(2)),
			entity.NewSign("c", "3", at(3)),
		},
		[]*entity.Thing{
			entity.NewVortex("c", "a", true, "", at(1)),
			entity.NewVortex("d", "a", true, "", at(4)),
		},
	)

	snapshot := func() []string {
		var out []string
		for _, t := range r.All() {
			out = append(out, t.Address+":"+t.Kind.String()+":"+t.Text())
		}
		return out
	}

	first := snapshot()
	if removed := r.ResolveDuplicates(); removed != 0 {
		t.Errorf("Expected second pass to remove nothing, removed %d", removed)
	}
	second := snapshot()

	if len(first) != len(second) {
		t.Fatalf("Expected identical registry, got %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Entry %d changed: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestResolveDuplicatesTieKeepsLaterEntry(t *testing.T) {
	r := newRegistry()
	a := entity.NewSign("g", "first", at(1))
	b := entity.NewSign("g", "second", at(1))
	r.Replace([]*entity.Thing{a, b}, nil)

	got, _ := r.FindByAddress("g")
	if got != b {
		t.Errorf("Expected later entry to win a tie, got %q", got.Text())
	}
}

func TestInsertCollisionEvictsOlder(t *testing.T) {
	r := newRegistry()
	old := entity.NewSign("h", "old", at(1))
	_ = r.Insert(old)
	_ = r.Insert(entity.NewVortex("h", "a", true, "", at(2)))

	got, _ := r.FindByAddress("h")
	if !got.IsVortex() {
		t.Error("Expected newer vortex to replace older sign")
	}
	if r.Count() != 1 {
		t.Errorf("Expected 1 entity, got %d", r.Count())
	}
}
