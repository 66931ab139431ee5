// internal/event/types.go
package event

import "go-viking-defense/internal/types"

const (
	EnemySpawned   EventType = "EnemySpawned"   // Data: EnemyData
	EnemyKilled    EventType = "EnemyKilled"    // Data: EnemyKilledData
	EnemyEscaped   EventType = "EnemyEscaped"   // Data: EnemyData
	EffectApplied  EventType = "EffectApplied"  // Data: EffectAppliedData
	ImpactResolved EventType = "ImpactResolved" // Data: ImpactData
	WaveStarted    EventType = "WaveStarted"    // Data: WaveData
	WaveEnded      EventType = "WaveEnded"      // Data: WaveData
	TowerPlaced    EventType = "TowerPlaced"    // Data: TowerData
	TowerRemoved   EventType = "TowerRemoved"   // Data: TowerData
	PlatformPlaced EventType = "PlatformPlaced" // Data: PlatformData
)

type EnemyData struct {
	Enemy  types.Handle
	Flying bool
}

// EnemyKilledData carries the kill credit. Reward is already scaled.
type EnemyKilledData struct {
	Enemy  types.Handle
	Reward float64
	Flying bool
	Hidden bool
}

type EffectAppliedData struct {
	Enemy  types.Handle
	Effect string
}

// ImpactData reports how many enemies a single impact finished off.
type ImpactData struct {
	Projectile string
	Kills      int
}

type WaveData struct {
	Number int
	Size   int
}

type TowerData struct {
	Tower types.Handle
	DefID string
	I, J  int
}

type PlatformData struct {
	I, J int
}
