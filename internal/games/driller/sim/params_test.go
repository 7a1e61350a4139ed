package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.NoError(t, p.Validate())
	assert.Equal(t, 43, p.Height())
	assert.Equal(t, Position{4, 5}, p.Start())
	assert.Equal(t, 4, p.LifeMax/p.BrownDamage)
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"no sky", func(p *Params) { p.SkyRows = 0 }},
		{"no floor", func(p *Params) { p.FloorRows = 0 }},
		{"brown chance above one", func(p *Params) { p.BrownChance = 1.5 }},
		{"negative shake", func(p *Params) { p.ShakeFrames = -1 }},
		{"zero cascade", func(p *Params) { p.CascadeMin = 0 }},
		{"zero walk", func(p *Params) { p.WalkFrames = 0 }},
		{"zero air", func(p *Params) { p.AirMax = 0 }},
		{"jitter too large", func(p *Params) { p.AirPocketJitter = p.AirPocketInterval }},
		{"negative camera lead", func(p *Params) { p.CameraLead = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}
