package actor

import "github.com/vovakirdan/actor-arcade/internal/core"

// probe is a component that records its updates into a shared log.
type probe struct {
	Base
	name      string
	log       *[]string
	destroyed int
	onUpdate  func()
}

func newProbe(owner *Actor, order int, name string, log *[]string) *probe {
	return Attach(&probe{Base: NewBase(owner, order), name: name, log: log})
}

func (p *probe) Update(float64) {
	*p.log = append(*p.log, p.name)
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

func (p *probe) ProcessInput(core.InputFrame) {
	*p.log = append(*p.log, "input:"+p.name)
}

func (p *probe) Destroy() {
	p.destroyed++
}

// recorder is a behavior counting UpdateActor calls.
type recorder struct {
	*Actor
	updates  int
	inputs   int
	onUpdate func(r *recorder)
	onInput  func(r *recorder)
	destroys int
}

func newRecorder(w *World) *recorder {
	r := &recorder{}
	r.Actor = New(w, r)
	return r
}

func (r *recorder) UpdateActor(float64) {
	r.updates++
	if r.onUpdate != nil {
		r.onUpdate(r)
	}
}

func (r *recorder) ActorInput(core.InputFrame) {
	r.inputs++
	if r.onInput != nil {
		r.onInput(r)
	}
}

func (r *recorder) DestroyActor() {
	r.destroys++
}

func names(cs []Component) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.(*probe).name)
	}
	return out
}
