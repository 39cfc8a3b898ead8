// internal/system/status.go
package system

// StatusEffectSystem управляет жизненным циклом эффектов: замедление,
// оглушение, обездвиживание, яд.
type StatusEffectSystem struct {
	ctx *DamageContext
}

func NewStatusEffectSystem(ctx *DamageContext) *StatusEffectSystem {
	return &StatusEffectSystem{ctx: ctx}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	ecs := s.ctx.ECS

	for id, effect := range ecs.SlowEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(ecs.SlowEffects, id)
		}
	}

	for id, effect := range ecs.StunEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(ecs.StunEffects, id)
		}
	}

	for id, effect := range ecs.RootEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(ecs.RootEffects, id)
		}
	}

	for id, effect := range ecs.PoisonEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(ecs.PoisonEffects, id)
			continue
		}

		effect.TickTimer -= deltaTime
		if effect.TickTimer <= 0 {
			// Урон от яда идёт без атакующего: отражать его некому.
			s.ctx.ApplyDamage(id, 0, effect.DamagePerSec)
			effect.TickTimer = 1.0
		}
	}
}
