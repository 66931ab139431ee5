package system

import (
	"testing"

	"go-viking-defense/internal/component"
	"go-viking-defense/pkg/gridmap"
)

var towerCell = gridmap.Cell{I: 5, J: 5}

func TestTargetOrderByPriority(t *testing.T) {
	w := newWorld(t)
	a, ea := w.enemy("tiny_boat", 0, 0)
	b, eb := w.enemy("tiny_boat", 0, 0)
	c, ec := w.enemy("tiny_boat", 0, 0)
	ea.PriorityBase = 300
	eb.PriorityBase = 100
	ec.PriorityBase = 100

	got := TargetOrder(w.ecs)
	if len(got) != 3 || got[0] != b || got[1] != c || got[2] != a {
		t.Errorf("order: %v", got)
	}

	ea.PriorityOffset = -1_000_000
	if got := TargetOrder(w.ecs); got[0] != a {
		t.Errorf("commanded enemy should come first, got %v", got)
	}
}

func TestInstantTowerRespectsCooldown(t *testing.T) {
	w := newWorld(t)
	_, tw := w.tower("watchtower", towerCell)
	w.enemy("tiny_bird", tw.X+5, tw.Y) // not visible to a watchtower
	_, boat := w.enemy("tiny_boat", tw.X+10, tw.Y)

	w.combat.Update(1.0 / 60)
	if boat.Health != 10 {
		t.Fatalf("boat health after one shot: %v, want 10", boat.Health)
	}
	if tw.CooldownRemaining != 2 {
		t.Fatalf("cooldown: %v, want 2", tw.CooldownRemaining)
	}

	w.combat.Update(0.5)
	if boat.Health != 10 {
		t.Errorf("tower fired while cooling down")
	}
	if tw.CooldownRemaining != 1.5 {
		t.Errorf("cooldown after 0.5s: %v", tw.CooldownRemaining)
	}
}

func TestIdleTowerCoolsDownWithoutTarget(t *testing.T) {
	w := newWorld(t)
	_, tw := w.tower("watchtower", towerCell)
	tw.CooldownRemaining = 0.25
	w.combat.Update(0.5)
	if tw.CooldownRemaining != 0 {
		t.Errorf("cooldown should floor at 0, got %v", tw.CooldownRemaining)
	}
}

func TestAttackInstantAndProjectile(t *testing.T) {
	w := newWorld(t)
	wh, watch := w.tower("watchtower", towerCell)
	ch, cat := w.tower("catapult", gridmap.Cell{I: 6, J: 5})
	eh, e := w.enemy("tiny_boat", watch.X+10, watch.Y)

	dmg, ps := w.armory.Attack(watch, wh, eh, e)
	if dmg != 5 || ps != nil {
		t.Errorf("watchtower: %v %v", dmg, ps)
	}

	dmg, ps = w.armory.Attack(cat, ch, eh, e)
	if dmg != 0 || len(ps) != 1 {
		t.Fatalf("catapult: %v %v", dmg, ps)
	}
	p := ps[0]
	if !p.Splash || p.SplashRadius != 32 || p.IsHoming() {
		t.Errorf("catapult shell: %+v", p)
	}
	if p.TargetX != e.X || p.TargetY != e.Y {
		t.Errorf("shell aimed at (%v, %v)", p.TargetX, p.TargetY)
	}
	if cat.CooldownRemaining != 3.5 {
		t.Errorf("catapult cooldown: %v", cat.CooldownRemaining)
	}
}

func TestConstantAttackDamagePerTick(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("falcon_cliff", towerCell)
	eh, e := w.enemy("tiny_bird", tw.X, tw.Y+10)
	dmg, _ := w.armory.Attack(tw, th, eh, e)
	if !near(dmg, 0.75) {
		t.Errorf("falcon cliff hit: %v, want 0.75", dmg)
	}
}

func TestTempestBlastsEveryFifthHit(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("sanctum_of_tempest", towerCell)
	eh, e := w.enemy("tiny_bird", tw.X, tw.Y+10)

	for k := 1; k <= 4; k++ {
		dmg, ps := w.armory.Attack(tw, th, eh, e)
		if dmg != 10 || ps != nil {
			t.Fatalf("hit %d: %v %v", k, dmg, ps)
		}
	}
	dmg, ps := w.armory.Attack(tw, th, eh, e)
	if dmg != 0 || len(ps) != 1 {
		t.Fatalf("fifth hit: %v %v", dmg, ps)
	}
	if ps[0].SplashRadius != tw.Range || ps[0].Speed != 0 {
		t.Errorf("blast: %+v", ps[0])
	}
}

func TestRingThrowsShellsAround(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("bastion", towerCell)
	eh, e := w.enemy("tiny_boat", tw.X+20, tw.Y)
	_, ps := w.armory.Attack(tw, th, eh, e)
	if len(ps) != 3 {
		t.Fatalf("expected 3 shells, got %d", len(ps))
	}
	for _, p := range ps {
		d := p.Position.Dist2(component.Position{X: p.TargetX, Y: p.TargetY})
		if !near(d, 32*32) {
			t.Errorf("shell lands %v px² away, want %v", d, 32*32)
		}
	}
}

func TestFlameSplitsDamageOverParticles(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("greek_fire", towerCell)
	eh, e := w.enemy("tiny_boat", tw.X+10, tw.Y)
	tw.LastDelta = 0.0625

	_, ps := w.armory.Attack(tw, th, eh, e)
	if len(ps) != 38 {
		t.Fatalf("particles: %d, want 38", len(ps))
	}
	total := 0.0
	for _, p := range ps {
		if p.Target != eh {
			t.Fatal("flame particles must home on the target")
		}
		total += p.Damage
	}
	if !near(total, 30*0.0625) {
		t.Errorf("total flame damage %v", total)
	}
}

func TestRunesShapeProjectiles(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("catapult", towerCell)
	eh, e := w.enemy("tiny_boat", tw.X+10, tw.Y)

	tw.SetRune(component.Raidho)
	_, ps := w.armory.Attack(tw, th, eh, e)
	p := ps[0]
	if !p.Retargeting || p.Target != eh || p.ParentTower != th {
		t.Errorf("raidho shell: %+v", p)
	}

	tw.SetRune(component.Sowil)
	_, ps = w.armory.Attack(tw, th, eh, e)
	if ps[0].Speed != 5 || !near(ps[0].Velocity.Len(), 5) {
		t.Errorf("sowil shell speed %v velocity %v", ps[0].Speed, ps[0].Velocity.Len())
	}

	tw.SetRune(component.Laguz)
	_, ps = w.armory.Attack(tw, th, eh, e)
	if ps[0].Fragments != 1 {
		t.Errorf("laguz fragments: %d", ps[0].Fragments)
	}
}

func TestStoneHeadCarriesSlowdown(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("stone_head", towerCell)
	eh, e := w.enemy("tiny_bird", tw.X, tw.Y+10)
	_, ps := w.armory.Attack(tw, th, eh, e)
	if len(ps) != 1 || len(ps[0].Effects) != 1 || ps[0].Effects[0].Name != component.EffectSlowDown {
		t.Fatalf("stone head projectile: %+v", ps)
	}
}
