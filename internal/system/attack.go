// internal/system/attack.go
package system

import (
	"math"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/config"
	"go-viking-defense/internal/defs"
	"go-viking-defense/internal/types"
	"go-viking-defense/internal/utils"

	"go.uber.org/zap"
)

const (
	instantAnimation = 0.1
	flameEffectRate  = 0.05 // chance per second of a runed flame stream
)

// Armory turns a tower's attack strategy into damage or projectiles.
type Armory struct {
	effects map[string]component.Effect
	rng     *utils.PRNGService
	logger  *zap.Logger
}

func NewArmory(lib *defs.Library, rng *utils.PRNGService, logger *zap.Logger) *Armory {
	effects := make(map[string]component.Effect, len(lib.Effects))
	for id, def := range lib.Effects {
		effects[id] = component.EffectFromDef(def)
	}
	return &Armory{effects: effects, rng: rng, logger: logger.Named("armory")}
}

// Effect returns a fresh copy of the named effect template.
func (a *Armory) Effect(name string) (component.Effect, bool) {
	e, ok := a.effects[name]
	return e.Fresh(), ok
}

// Attack fires tower t (handle th) at enemy e (handle eh). It resets the
// cooldown and returns either direct damage or projectiles, never both.
func (a *Armory) Attack(t *component.Tower, th types.Handle, eh types.Handle, e *component.Enemy) (float64, []*component.Projectile) {
	t.CooldownRemaining = t.Cooldown
	t.Target = eh
	t.AimX, t.AimY = e.X, e.Y

	atk := &t.Def.Attack
	switch atk.Kind {
	case defs.AttackInstant:
		t.AttackAnimRemaining = instantAnimation
		if t.ConstantAttack {
			// damage is per second, delivered in cooldown sized slices
			return t.Damage * t.Cooldown, nil
		}
		return t.Damage, nil

	case defs.AttackTempest:
		every := max(atk.BlastEvery, 1)
		t.HitCounter = (t.HitCounter + 1) % every
		if t.HitCounter != 0 {
			t.AttackAnimRemaining = instantAnimation
			return t.Damage, nil
		}
		blast := component.NewProjectile("zap blast", t.X, t.Y, 0, t.X, t.Y, t.Damage)
		blast.Splash = true
		blast.SplashRadius = t.Range
		blast.Scale = atk.Scale
		if !t.HasRune(component.Raidho) && !t.HasRune(component.Laguz) {
			a.rune(t, th, blast)
		}
		return 0, []*component.Projectile{blast}

	case defs.AttackLob:
		p := a.newShell(t, atk, e.X, e.Y)
		if t.Homing {
			p.Target = eh
		}
		a.rune(t, th, p)
		return 0, []*component.Projectile{p}

	case defs.AttackRing:
		theta0 := math.Atan2(t.AimY-t.Y, t.AimX-t.X)
		count := max(atk.Count, 1)
		shells := make([]*component.Projectile, 0, count)
		for k := 0; k < count; k++ {
			theta := theta0 + 2*math.Pi*float64(k)/float64(count)
			p := a.newShell(t, atk, t.X+atk.Distance*math.Cos(theta), t.Y+atk.Distance*math.Sin(theta))
			a.rune(t, th, p)
			shells = append(shells, p)
		}
		return 0, shells

	case defs.AttackHoming:
		p := component.NewProjectile(t.DefID, t.X, t.Y, atk.ProjectileSpeed, e.X, e.Y, t.Damage)
		p.Target = eh
		p.Scale = atk.Scale
		p.AngleRate = atk.AngleRate
		p.Fragments = atk.Fragments
		p.Splash = atk.Splash
		p.SplashRadius = atk.SplashRadius
		p.Effects = a.templates(atk.Effects)
		a.rune(t, th, p)
		return 0, []*component.Projectile{p}

	case defs.AttackFlame:
		return 0, a.flame(t, th, eh, e, atk)
	}

	a.logger.Warn("tower has no usable attack", zap.String("tower", t.DefID), zap.String("kind", string(atk.Kind)))
	return 0, nil
}

func (a *Armory) newShell(t *component.Tower, atk *defs.AttackDef, x, y float64) *component.Projectile {
	p := component.NewProjectile(t.DefID, t.X, t.Y, atk.ProjectileSpeed, x, y, t.Damage)
	p.Splash = atk.Splash
	p.SplashRadius = atk.SplashRadius
	p.Scale = atk.Scale
	p.AngleRate = atk.AngleRate
	p.Effects = a.templates(atk.Effects)
	return p
}

// flame splits one tick of damage over a stream of weak homing particles.
func (a *Armory) flame(t *component.Tower, th, eh types.Handle, e *component.Enemy, atk *defs.AttackDef) []*component.Projectile {
	n := max(1, int(math.Ceil(atk.ParticlesPerSecond*t.LastDelta)))
	perParticle := t.Damage * t.LastDelta / float64(n)
	pps := math.Max(atk.ParticlesPerSecond, 1)
	chance := 1 - math.Pow(1-flameEffectRate, 1/pps)

	particles := make([]*component.Projectile, 0, n)
	for k := 0; k < n; k++ {
		p := component.NewProjectile("flame", t.X, t.Y, atk.ProjectileSpeed, e.X, e.Y, perParticle)
		p.Target = eh
		p.Scale = atk.Scale
		switch {
		case t.HasRune(component.Kenaz):
			a.maybeEffect(p, component.EffectInflame, chance)
		case t.HasRune(component.Isa):
			a.maybeEffect(p, component.EffectFreeze, chance)
		default:
			a.rune(t, th, p)
		}
		particles = append(particles, p)
	}
	return particles
}

// rune applies the projectile side of the attached rune.
func (a *Armory) rune(t *component.Tower, th types.Handle, p *component.Projectile) {
	switch t.Rune {
	case component.Raidho:
		p.Target = t.Target
		p.Retargeting = true
		p.ParentTower = th
	case component.Kenaz:
		a.maybeEffect(p, component.EffectInflame, config.RuneEffectChance)
	case component.Isa:
		a.maybeEffect(p, component.EffectFreeze, config.RuneEffectChance)
	case component.Sowil:
		p.Speed *= 2
		p.Velocity = p.Velocity.Scale(2)
	case component.Laguz:
		p.Fragments++
	}
}

func (a *Armory) maybeEffect(p *component.Projectile, name string, chance float64) {
	if !a.rng.Chance(chance) {
		return
	}
	if eff, ok := a.Effect(name); ok {
		p.Effects = append(p.Effects, eff)
	}
}

func (a *Armory) templates(names []string) []component.Effect {
	if len(names) == 0 {
		return nil
	}
	out := make([]component.Effect, 0, len(names))
	for _, n := range names {
		if eff, ok := a.Effect(n); ok {
			out = append(out, eff)
		}
	}
	return out
}
