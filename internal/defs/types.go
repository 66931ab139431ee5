// internal/defs/types.go
package defs

// AttackKind selects the attack behavior of a tower.
type AttackKind string

const (
	AttackInstant AttackKind = "instant" // damage lands on the target immediately
	AttackLob     AttackKind = "lob"     // unhoming splash shell aimed at the target's position
	AttackRing    AttackKind = "ring"    // several splash shells thrown around the tower
	AttackHoming  AttackKind = "homing"  // one projectile chasing the target
	AttackFlame   AttackKind = "flame"   // a stream of weak homing particles
	AttackTempest AttackKind = "tempest" // instant hits, every Nth hit is a blast around the tower
)

// Sight names what a tower can see; a tower lists any subset.
type Sight string

const (
	SeeFlying     Sight = "flying"
	SeeFloating   Sight = "floating"
	SeeUnderwater Sight = "underwater"
)

// AttackDef holds the parameters of an attack behavior. Fields irrelevant
// to a kind are left zero.
type AttackDef struct {
	Kind            AttackKind `yaml:"kind"`
	ProjectileSpeed float64    `yaml:"projectile_speed,omitempty"`
	Splash          bool       `yaml:"splash,omitempty"`
	SplashRadius    float64    `yaml:"splash_radius,omitempty"`
	Fragments       int        `yaml:"fragments,omitempty"`
	Scale           float64    `yaml:"scale,omitempty"`
	AngleRate       float64    `yaml:"angle_rate,omitempty"`
	Effects         []string   `yaml:"effects,omitempty"` // effect IDs stamped on every projectile
	// ring
	Count    int     `yaml:"count,omitempty"`
	Distance float64 `yaml:"distance,omitempty"`
	// flame
	ParticlesPerSecond float64 `yaml:"particles_per_second,omitempty"`
	// tempest
	BlastEvery int `yaml:"blast_every,omitempty"`
}
