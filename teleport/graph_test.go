package teleport

import (
	"testing"
	"time"

	"github.com/lixenwraith/boxworld/entity"
	"github.com/lixenwraith/boxworld/registry"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newGraph() (*Graph, *registry.Registry) {
	reg := registry.New(entity.NewPlayer(epoch))
	return New(reg), reg
}

func TestCreateTwoWayPair(t *testing.T) {
	g, reg := newGraph()
	in, out, err := g.CreatePair("b", "f", false, epoch)
	if err != nil {
		t.Fatalf("CreatePair failed: %v", err)
	}

	if in.Address != "b" || in.Vortex.TargetAddress != "f" || !in.Vortex.IsEntry || in.Vortex.PairedAddress != "f" {
		t.Errorf("Unexpected entry vortex %+v %+v", in.Header, in.Vortex)
	}
	if out.Address != "f" || out.Vortex.TargetAddress != "b" || out.Vortex.IsEntry || out.Vortex.PairedAddress != "b" {
		t.Errorf("Unexpected exit vortex %+v %+v", out.Header, out.Vortex)
	}
	if len(reg.Vortexes()) != 2 {
		t.Errorf("Expected 2 vortexes, got %d", len(reg.Vortexes()))
	}

	if !g.Delete("b") {
		t.Fatal("Expected entry deletion to succeed")
	}
	if len(reg.Vortexes()) != 0 {
		t.Errorf("Expected both sides removed, %d remain", len(reg.Vortexes()))
	}
}

func TestCreateOneWay(t *testing.T) {
	g, reg := newGraph()
	in, out, err := g.CreatePair("b", "eye", true, epoch)
	if err != nil {
		t.Fatalf("CreatePair failed: %v", err)
	}
	if out != nil {
		t.Error("Expected no exit vortex for one-way")
	}
	if in.Vortex.PairedAddress != "" {
		t.Errorf("Expected empty pairing, got %q", in.Vortex.PairedAddress)
	}
	if reg.Occupied("eye") {
		t.Error("Expected target cell to stay free")
	}
}

func TestCreatePairRejections(t *testing.T) {
	g, reg := newGraph()
	_ = reg.Insert(entity.NewSign("f", "", epoch))

	tests := []struct {
		name        string
		entry, exit string
		oneWay      bool
		want        error
	}{
		{"malformed entry", "z", "b", false, ErrMalformedAddress},
		{"empty exit", "b", "", true, ErrMalformedAddress},
		{"same endpoint", "b", "b", true, ErrSameEndpoint},
		{"entry occupied", "f", "b", true, ErrOccupied},
		{"exit occupied two-way", "b", "f", false, ErrOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := g.CreatePair(tt.entry, tt.exit, tt.oneWay, epoch); err != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	// One-way onto an occupied target is allowed: only the entry cell is claimed
	if _, _, err := g.CreatePair("b", "f", true, epoch); err != nil {
		t.Errorf("Expected one-way onto occupied target to succeed, got %v", err)
	}
}

func TestResolveFrom(t *testing.T) {
	g, reg := newGraph()
	_, _, _ = g.CreatePair("b", "f", true, epoch)
	_ = reg.Insert(entity.NewVortex("g", "", true, "", epoch))

	if target, ok := g.ResolveFrom("b"); !ok || target != "f" {
		t.Errorf("Expected f, got %q (%v)", target, ok)
	}
	if _, ok := g.ResolveFrom("g"); ok {
		t.Error("Expected empty target to resolve to nothing")
	}
	if _, ok := g.ResolveFrom("c"); ok {
		t.Error("Expected empty cell to resolve to nothing")
	}
}

func TestChainFollowsConsecutiveJumps(t *testing.T) {
	g, _ := newGraph()
	_, _, _ = g.CreatePair("b", "c", true, epoch)
	_, _, _ = g.CreatePair("c", "d", true, epoch)
	_, _, _ = g.CreatePair("d", "ee", true, epoch)

	end, hops := g.Chain("b")
	if end != "ee" || hops != 3 {
		t.Errorf("Expected ee after 3 hops, got %q after %d", end, hops)
	}
}

func TestChainTerminatesOnCycle(t *testing.T) {
	g, _ := newGraph()
	_, _, _ = g.CreatePair("b", "c", true, epoch)
	_, _, _ = g.CreatePair("c", "b", true, epoch)

	end, hops := g.Chain("b")
	if hops != MaxHops {
		t.Errorf("Expected %d hops, got %d", MaxHops, hops)
	}
	if end != "b" {
		t.Errorf("Expected even hop count to end on b, got %q", end)
	}

	again, _ := g.Chain("b")
	if again != end {
		t.Errorf("Expected deterministic end, got %q then %q", end, again)
	}
}

func TestChainStopsOnReciprocalExit(t *testing.T) {
	g, _ := newGraph()
	_, _, _ = g.CreatePair("b", "f", false, epoch)

	end, hops := g.Chain("b")
	if end != "f" || hops != 1 {
		t.Errorf("Expected to land on f after 1 hop, got %q after %d", end, hops)
	}

	// Walking onto the exit side leads back to the entry
	end, hops = g.Chain("f")
	if end != "b" || hops != 1 {
		t.Errorf("Expected to land on b after 1 hop, got %q after %d", end, hops)
	}
}

func TestDeleteExitIsNoop(t *testing.T) {
	g, reg := newGraph()
	_, _, _ = g.CreatePair("b", "f", false, epoch)

	if g.Delete("f") {
		t.Error("Expected exit deletion to be rejected")
	}
	if len(reg.Vortexes()) != 2 {
		t.Errorf("Expected both vortexes intact, got %d", len(reg.Vortexes()))
	}
	if g.Delete("m") {
		t.Error("Expected deleting an empty cell to report nothing removed")
	}
}

func TestDeleteOrphanedExit(t *testing.T) {
	g, reg := newGraph()
	out := entity.NewVortex("f", "b", false, "b", epoch)
	if err := reg.Insert(out); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if !g.Delete("f") {
		t.Fatal("Expected an exit without its entry to be deletable")
	}
	if len(reg.Vortexes()) != 0 {
		t.Errorf("Expected orphaned exit removed, %d remain", len(reg.Vortexes()))
	}
}

func TestPruneRepairsBrokenPairs(t *testing.T) {
	g, reg := newGraph()
	// Exit at f lost its entry at b; entry at c lost its exit at h
	orphan := entity.NewVortex("f", "b", false, "b", epoch)
	widowed := entity.NewVortex("c", "h", true, "h", epoch)
	for _, v := range []*entity.Thing{orphan, widowed} {
		if err := reg.Insert(v); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	_, _, _ = g.CreatePair("k", "p", false, epoch)
	_, _, _ = g.CreatePair("s", "t", true, epoch)

	if removed := g.Prune(); removed != 1 {
		t.Errorf("Expected 1 orphaned exit removed, got %d", removed)
	}
	if _, ok := g.VortexAt("f"); ok {
		t.Error("Expected orphaned exit at f to be gone")
	}
	if widowed.Vortex.PairedAddress != "" {
		t.Errorf("Expected entry at c to become one-way, paired=%q", widowed.Vortex.PairedAddress)
	}
	if target, ok := g.ResolveFrom("c"); !ok || target != "h" {
		t.Errorf("Expected entry at c to keep its target, got %q", target)
	}
	if len(reg.Vortexes()) != 4 {
		t.Errorf("Expected intact pairs untouched, got %d vortexes", len(reg.Vortexes()))
	}
	if g.Prune() != 0 {
		t.Error("Expected Prune to be idempotent")
	}
}

func TestPairs(t *testing.T) {
	g, _ := newGraph()
	_, _, _ = g.CreatePair("b", "f", false, epoch)
	_, _, _ = g.CreatePair("c", "ea", true, epoch)

	pairs := g.Pairs()
	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0][1] == nil || pairs[0][1].Address != "f" {
		t.Error("Expected first pair to carry its exit")
	}
	if pairs[1][1] != nil {
		t.Error("Expected one-way pair without exit")
	}
}
