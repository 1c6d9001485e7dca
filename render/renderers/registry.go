package renderers

import "github.com/lixenwraith/sarada/render"

// RegisterDefaults installs the standard layer stack
func RegisterDefaults(o *render.RenderOrchestrator) {
	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	for _, def := range []rendererDef{
		{NewFieldRenderer(), render.PriorityBackground},
		{NewPlateRenderer(), render.PriorityPlate},
		{NewParticleRenderer(), render.PriorityParticle},
		{NewEnemyRenderer(), render.PriorityEntities},
		{NewHUDRenderer(), render.PriorityUI},
		{NewInputRenderer(), render.PriorityUI},
		{NewOverlayRenderer(), render.PriorityOverlay},
	} {
		o.Register(def.renderer, def.priority)
	}
}
