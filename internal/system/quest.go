// internal/system/quest.go
package system

import (
	"go-viking-defense/internal/component"
	"go-viking-defense/internal/event"
)

// QuestCounters are the achievements tracked over a session.
type QuestCounters struct {
	Kills          int
	FlyingKills    int
	SubmergedKills int
	Inflamed       int
	Frozen         int
	Platforms      int
	MaxImpactKills int
	Escaped        int
}

// QuestSystem keeps QuestCounters up to date from game events.
type QuestSystem struct {
	counters QuestCounters
}

func NewQuestSystem(eventDispatcher *event.Dispatcher) *QuestSystem {
	qs := &QuestSystem{}
	eventDispatcher.Subscribe(event.EnemyKilled, qs)
	eventDispatcher.Subscribe(event.EnemyEscaped, qs)
	eventDispatcher.Subscribe(event.EffectApplied, qs)
	eventDispatcher.Subscribe(event.ImpactResolved, qs)
	eventDispatcher.Subscribe(event.PlatformPlaced, qs)
	return qs
}

func (qs *QuestSystem) Counters() QuestCounters {
	return qs.counters
}

func (qs *QuestSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		d, _ := e.Data.(event.EnemyKilledData)
		qs.counters.Kills++
		if d.Flying {
			qs.counters.FlyingKills++
		}
		if d.Hidden {
			qs.counters.SubmergedKills++
		}
	case event.EnemyEscaped:
		qs.counters.Escaped++
	case event.EffectApplied:
		d, _ := e.Data.(event.EffectAppliedData)
		switch d.Effect {
		case component.EffectInflame:
			qs.counters.Inflamed++
		case component.EffectFreeze:
			qs.counters.Frozen++
		}
	case event.ImpactResolved:
		d, _ := e.Data.(event.ImpactData)
		qs.counters.MaxImpactKills = max(qs.counters.MaxImpactKills, d.Kills)
	case event.PlatformPlaced:
		qs.counters.Platforms++
	}
}
