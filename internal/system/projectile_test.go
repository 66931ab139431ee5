package system

import (
	"testing"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/event"
)

func TestSplashImpact(t *testing.T) {
	w := newWorld(t)
	_, weak := w.enemy("tiny_boat", 210, 300)
	weak.Health = 5
	_, tough := w.enemy("medium_boat", 200, 320)
	_, far := w.enemy("tiny_boat", 260, 300)

	p := component.NewProjectile("catapult", 200, 300, 2.5, 200, 300, 10)
	p.Splash = true
	p.SplashRadius = 32
	ph := w.ecs.Projectiles.Add(p)

	if kills := w.projectile.Impact(ph, p); kills != 1 {
		t.Errorf("kills: %d, want 1", kills)
	}
	if tough.Health != 40 || far.Health != 15 {
		t.Errorf("tough %v far %v", tough.Health, far.Health)
	}
	if w.ecs.Projectiles.Len() != 0 {
		t.Error("projectile survived its impact")
	}
	if w.rec.count(event.ImpactResolved) != 1 {
		t.Error("ImpactResolved not dispatched")
	}
}

func TestImpactEffectsSkipKilledEnemies(t *testing.T) {
	w := newWorld(t)
	h, e := w.enemy("tiny_boat", 200, 300)
	slow, _ := w.armory.Effect(component.EffectSlowDown)

	p := component.NewProjectile("stone", 200, 300, 2, 200, 300, 1)
	p.Target = h
	p.Effects = []component.Effect{slow}
	w.projectile.Impact(w.ecs.Projectiles.Add(p), p)
	if len(e.Effects) != 1 {
		t.Fatalf("surviving enemy should be slowed: %+v", e.Effects)
	}

	p = component.NewProjectile("stone", 200, 300, 2, 200, 300, 100)
	p.Target = h
	p.Effects = []component.Effect{slow}
	w.projectile.Impact(w.ecs.Projectiles.Add(p), p)
	if w.ecs.Enemies.Alive(h) || len(e.Effects) != 0 {
		t.Error("killed enemy should be gone without effects")
	}
}

func TestImpactThrowsFragments(t *testing.T) {
	w := newWorld(t)
	target, _ := w.enemy("medium_boat", 200, 300)
	b, _ := w.enemy("tiny_boat", 250, 300)
	c, _ := w.enemy("tiny_boat", 200, 380)
	w.enemy("tiny_boat", 400, 300)

	p := component.NewProjectile("quarry", 200, 300, 5, 200, 300, 30)
	p.Target = target
	p.Fragments = 4
	w.projectile.Impact(w.ecs.Projectiles.Add(p), p)

	if n := w.ecs.Projectiles.Len(); n != 2 {
		t.Fatalf("expected 2 fragments, got %d", n)
	}
	got := map[any]bool{}
	for _, h := range w.ecs.Projectiles.Handles() {
		f, _ := w.ecs.Projectiles.Get(h)
		got[f.Target] = true
		if f.Damage != 15 || f.Fragments != 0 {
			t.Errorf("fragment: %+v", f)
		}
	}
	if !got[b] || !got[c] {
		t.Errorf("fragments went to the wrong enemies: %v", got)
	}
}

func TestCheckImpactsOnArrivalAndOvershoot(t *testing.T) {
	w := newWorld(t)
	arrived := component.NewProjectile("a", 100, 300, 4, 101, 300, 0)
	overshot := component.NewProjectile("b", 100, 300, 4, 150, 300, 0)
	overshot.X = 160 // flew past the target point, still heading right
	flying := component.NewProjectile("c", 100, 300, 4, 150, 300, 0)
	w.ecs.Projectiles.Add(arrived)
	w.ecs.Projectiles.Add(overshot)
	fh := w.ecs.Projectiles.Add(flying)

	w.projectile.CheckImpacts()
	if w.ecs.Projectiles.Len() != 1 || !w.ecs.Projectiles.Alive(fh) {
		t.Errorf("only the projectile still en route should remain, got %d", w.ecs.Projectiles.Len())
	}
}

func TestProjectileLeavesMap(t *testing.T) {
	w := newWorld(t)
	p := component.NewProjectile("stray", config.MapWidth+15, 300, 10, config.MapWidth+1000, 300, 0)
	w.ecs.Projectiles.Add(p)
	w.projectile.Update(1.0 / 60)
	if w.ecs.Projectiles.Len() != 0 {
		t.Error("projectile outside the margin was kept")
	}
}

func TestHomingFollowsTarget(t *testing.T) {
	w := newWorld(t)
	h, e := w.enemy("tiny_bird", 100, 400)
	p := component.NewProjectile("oak", 100, 300, 2, 100, 400, 5)
	p.Target = h
	w.ecs.Projectiles.Add(p)

	e.X = 200
	w.projectile.Update(1.0 / 60)
	if p.TargetX != 200 {
		t.Errorf("target point not refreshed: %v", p.TargetX)
	}
	if p.Velocity.X <= 0 {
		t.Errorf("projectile did not turn toward the target: %+v", p.Velocity)
	}
}

func TestRetargetingTakesTowerTarget(t *testing.T) {
	w := newWorld(t)
	th, tw := w.tower("catapult", towerCell)
	gone, _ := w.enemy("tiny_boat", tw.X+30, tw.Y)
	next, _ := w.enemy("tiny_boat", tw.X-30, tw.Y)
	tw.Target = next

	p := component.NewProjectile("catapult", tw.X, tw.Y, 2.5, tw.X+30, tw.Y, 10)
	p.Target = gone
	p.Retargeting = true
	p.ParentTower = th
	w.ecs.Projectiles.Add(p)
	w.ecs.Enemies.Remove(gone)

	w.projectile.Update(1.0 / 60)
	if p.Target != next {
		t.Errorf("projectile kept target %v, want %v", p.Target, next)
	}
}

func TestLostTargetFliesToLastPoint(t *testing.T) {
	w := newWorld(t)
	h, _ := w.enemy("tiny_boat", 200, 300)
	p := component.NewProjectile("oak", 100, 300, 2, 200, 300, 5)
	p.Target = h
	w.ecs.Projectiles.Add(p)
	w.ecs.Enemies.Remove(h)

	w.projectile.Update(1.0 / 60)
	if p.IsHoming() || p.TargetX != 200 {
		t.Errorf("projectile should fly on to the last point: %+v", p)
	}
}
