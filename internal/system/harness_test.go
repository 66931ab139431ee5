package system

import (
	"math"
	"strings"
	"testing"

	"go-viking-defense/internal/component"
	"go-viking-defense/internal/defs"
	"go-viking-defense/internal/entity"
	"go-viking-defense/internal/event"
	"go-viking-defense/internal/types"
	"go-viking-defense/internal/utils"
	"go-viking-defense/pkg/gridmap"

	"go.uber.org/zap"
)

const fjord = `gggsggggggggggg
gggsggggggggggg
gggsssssgggdggg
gggggggsgggdggg
gggggggsssdddgg
gggggggggggsggg
ggggggggsssssgg
ggggggggsgggggg
ggdddssssgggggg
ggdgggggggggggg
ggsssssgggggggg
ggggggsgggggggg
ggggggsssgggggg
ggggggggsgggggg
ggggggggsssssss
`

// recorder collects every event it is subscribed to.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// world wires the systems the way a game session does.
type world struct {
	t          *testing.T
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	lib        *defs.Library
	gridMap    *gridmap.Map
	rng        *utils.PRNGService
	damager    *Damager
	effects    *StatusEffectSystem
	movement   *MovementSystem
	armory     *Armory
	combat     *CombatSystem
	projectile *ProjectileSystem
	rec        *recorder
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	m, err := gridmap.Load(strings.NewReader(fjord))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	w := &world{
		t:          t,
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		lib:        lib,
		gridMap:    m,
		rng:        utils.NewPRNGService(42),
		rec:        &recorder{},
	}
	logger := zap.NewNop()
	w.damager = NewDamager(w.ecs, w.dispatcher)
	w.effects = NewStatusEffectSystem(w.ecs, w.damager, w.dispatcher)
	w.movement = NewMovementSystem(w.ecs, m, w.dispatcher, logger)
	w.armory = NewArmory(lib, w.rng, logger)
	w.combat = NewCombatSystem(w.ecs, w.armory, w.damager)
	w.projectile = NewProjectileSystem(w.ecs, w.dispatcher, w.damager, w.effects)
	for _, et := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.EnemyEscaped, event.EffectApplied,
		event.ImpactResolved, event.WaveStarted, event.WaveEnded,
	} {
		w.dispatcher.Subscribe(et, w.rec)
	}
	return w
}

// enemy adds a rank 1 enemy of the given definition at (x, y).
func (w *world) enemy(id string, x, y float64) (types.Handle, *component.Enemy) {
	w.t.Helper()
	def, ok := w.lib.Enemies[id]
	if !ok {
		w.t.Fatalf("no enemy %s", id)
	}
	et, err := component.ParseEnemyType(def.Size)
	if err != nil {
		w.t.Fatalf("size %s: %v", def.Size, err)
	}
	et.Flying = def.Flying
	e := component.NewEnemy(&def, et, x, y)
	return w.ecs.Enemies.Add(e), e
}

func (w *world) tower(id string, c gridmap.Cell) (types.Handle, *component.Tower) {
	w.t.Helper()
	def, ok := w.lib.Towers[id]
	if !ok {
		w.t.Fatalf("no tower %s", id)
	}
	tw := component.NewTower(&def, c)
	return w.ecs.Towers.Add(tw), tw
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
