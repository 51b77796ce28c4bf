package biome

import (
	"math"
	"sync"
	"testing"

	"github.com/df-mc/terravolt/server/world/block"
)

// source returns a RandSource yielding the values passed in order, counting
// the draws consumed.
func source(t *testing.T, vals ...float64) (RandSource, *int) {
	t.Helper()
	i := new(int)
	return func() float64 {
		if *i >= len(vals) {
			t.Fatalf("random source exhausted after %v draws", len(vals))
		}
		v := vals[*i]
		*i++
		return v
	}, i
}

func TestBaseFeatureDraws(t *testing.T) {
	p := NewPlains()
	// Tree trial succeeds and picks the first table entry, grass and flower
	// trials fail. Four draws total.
	r, drawn := source(t, 0.01, 0, 0.9, 0.9)
	fs := p.FeaturesAt(10, 20, r, nil)
	if len(fs) != 1 || fs[0].Type != "tree" || fs[0].ID != "oak" {
		t.Fatalf("FeaturesAt = %+v, want a single oak tree", fs)
	}
	if fs[0].X != 10 || fs[0].Z != 20 {
		t.Errorf("feature emitted for (%v, %v), want (10, 20)", fs[0].X, fs[0].Z)
	}
	if *drawn != 4 {
		t.Errorf("FeaturesAt consumed %v draws, want 4", *drawn)
	}
}

func TestBaseFeatureDrawsAllFail(t *testing.T) {
	p := NewPlains()
	r, drawn := source(t, 0.9, 0.9, 0.9)
	if fs := p.FeaturesAt(0, 0, r, nil); len(fs) != 0 {
		t.Fatalf("FeaturesAt = %+v, want none", fs)
	}
	if *drawn != 3 {
		t.Errorf("failed trials consumed %v draws, want 3", *drawn)
	}
}

func TestJungleUndergrowthDrawOrder(t *testing.T) {
	j := NewJungle()
	// All base trials fail, the undergrowth trial succeeds and the follow-up
	// draw selects melon.
	r, drawn := source(t, 0.9, 0.9, 0.9, 0.05, 0.4)
	fs := j.FeaturesAt(0, 0, r, nil)
	if len(fs) != 1 || fs[0].ID != "melon" {
		t.Fatalf("FeaturesAt = %+v, want a single melon", fs)
	}
	if *drawn != 5 {
		t.Errorf("FeaturesAt consumed %v draws, want 5", *drawn)
	}
}

func TestPickWeighted(t *testing.T) {
	t.Parallel()
	table := []WeightedID{
		{ID: "tree:oak", Weight: 10},
		{ID: "plant:short_grass", Weight: 30},
		{ID: "tree:birch", Weight: 10},
	}
	// Total tree weight is 20; a draw of 0.6 lands at 12, inside birch.
	r := func() float64 { return 0.6 }
	if id, ok := pickWeighted(table, "tree", r); !ok || id != "birch" {
		t.Errorf("pickWeighted = %v, %v, want birch", id, ok)
	}
	if _, ok := pickWeighted(table, "flower", r); ok {
		t.Error("pickWeighted found an entry for an absent category")
	}
}

func TestBaseBlockAtBands(t *testing.T) {
	t.Parallel()
	p := NewPlains()
	tests := []struct {
		name    string
		y       int64
		surface float64
		want    block.Block
	}{
		{"air above surface", 71, 70, block.Air},
		{"top at surface", 70, 70, block.Grass},
		{"filler below surface", 68, 70, block.Dirt},
		{"underground", 66, 70, block.Stone},
		{"water above submerged surface", 55, 50, block.Water},
		{"air above sea level", 63, 50, block.Air},
		{"underwater surface", 50, 50, block.Gravel},
	}
	for _, tt := range tests {
		if got := p.BlockAt(0, tt.y, 0, tt.surface, nil); got != tt.want {
			t.Errorf("%v: BlockAt(y=%v, surface=%v) = %v, want %v", tt.name, tt.y, tt.surface, got, tt.want)
		}
	}
}

func TestBaseHeightFallback(t *testing.T) {
	t.Parallel()
	d := NewDeepDark()
	const k = 1.0 / 64
	for _, pos := range [][2]int64{{0, 0}, {17, -3}, {-1000, 4096}} {
		want := 64 + math.Sin(float64(pos[0])*k)*math.Cos(float64(pos[1])*k)*5
		got := d.Height(pos[0], pos[1], nil)
		if got != want {
			t.Errorf("Height(%v, %v) = %v, want %v", pos[0], pos[1], got, want)
		}
		if again := d.Height(pos[0], pos[1], nil); again != got {
			t.Errorf("Height(%v, %v) not stable across calls", pos[0], pos[1])
		}
	}
}

func TestMangroveSwampFlattensTowardsSeaLevel(t *testing.T) {
	t.Parallel()
	m := NewMangroveSwamp()
	for x := int64(-64); x <= 64; x += 16 {
		h := m.Height(x, x*3, nil)
		if math.Abs(h-SeaLevel) > 1 {
			t.Errorf("Height(%v, %v) = %v, want within 1 of sea level", x, x*3, h)
		}
	}
}

func TestOceanVariants(t *testing.T) {
	t.Parallel()
	ocean, deep, frozen := NewOcean(false, false), NewOcean(true, false), NewOcean(false, true)
	if ocean.ID() != "ocean" || deep.ID() != "deep_ocean" || frozen.ID() != "frozen_ocean" {
		t.Fatalf("variant IDs = %v, %v, %v", ocean.ID(), deep.ID(), frozen.ID())
	}
	if got := frozen.Profile().Temperature; got != (Span{Min: -1, Max: 0}) {
		t.Errorf("frozen ocean temperature span = %v", got)
	}
	for x := int64(0); x < 256; x += 32 {
		h, dh := ocean.Height(x, x, nil), deep.Height(x, x, nil)
		if h > SeaLevel-4 {
			t.Errorf("ocean floor %v above cap", h)
		}
		if dh >= h {
			t.Errorf("deep ocean floor %v not below ocean floor %v", dh, h)
		}
	}
	if got := frozen.BlockAt(0, SeaLevel, 0, 50, nil); got != block.Ice {
		t.Errorf("frozen ocean surface = %v, want ice", got)
	}
	if got := ocean.BlockAt(0, SeaLevel, 0, 50, nil); got != block.Water {
		t.Errorf("ocean surface = %v, want water", got)
	}
}

func TestNetherLavaOcean(t *testing.T) {
	t.Parallel()
	n := NewNetherWastes()
	if !n.NetherBiome() {
		t.Fatal("nether wastes not flagged as nether biome")
	}
	if got := n.BlockAt(0, 20, 0, 10, nil); got != block.Lava {
		t.Errorf("block below lava level = %v, want lava", got)
	}
	if got := n.BlockAt(0, 40, 0, 10, nil); got != block.Air {
		t.Errorf("block above lava level = %v, want air", got)
	}
}

func TestDecorativeDeterminism(t *testing.T) {
	t.Parallel()
	a, b := decorative(10, 64, -3, saltRedSand), decorative(10, 64, -3, saltRedSand)
	if a != b {
		t.Fatal("decorative hash not stable")
	}
	if a < 0 || a >= 1 {
		t.Fatalf("decorative hash %v outside [0, 1)", a)
	}
	if decorative(10, 64, -3, saltPodzol) == a {
		t.Error("distinct salts hashed identically")
	}
}

func TestDisplayNameDerived(t *testing.T) {
	t.Parallel()
	if got := NewDripstoneCaves().DisplayName(); got != "Dripstone Caves" {
		t.Errorf("DisplayName = %q, want %q", got, "Dripstone Caves")
	}
	if got := NewOcean(true, false).DisplayName(); got != "Deep Ocean" {
		t.Errorf("DisplayName = %q, want %q", got, "Deep Ocean")
	}
}

func TestDisplayNameConcurrent(t *testing.T) {
	t.Parallel()
	b := NewSoulSandValley()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 64; j++ {
				if got := b.DisplayName(); got != "Soul Sand Valley" {
					t.Errorf("DisplayName = %q, want %q", got, "Soul Sand Valley")
				}
			}
		}()
	}
	wg.Wait()
}

func TestStructuresAtDrawPerEntry(t *testing.T) {
	p := NewPlains()
	// One draw per table entry; the first succeeds against 8/10000.
	r, drawn := source(t, 0.0001, 0.9)
	st := p.StructuresAt(0, 0, r)
	if len(st) != 1 || st[0].ID != "village" {
		t.Fatalf("StructuresAt = %+v, want a single village", st)
	}
	if *drawn != 2 {
		t.Errorf("StructuresAt consumed %v draws, want 2", *drawn)
	}
}
