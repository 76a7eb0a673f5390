package guardcase

type Guard struct {
	value int
}

func (g *Guard) Set(v int)     { g.value = v }
func (g *Guard) Commit() error { return nil }
func (g *Guard) Discard()      {}

func Open() *Guard { return &Guard{} }

type Box struct{}

func (b *Box) Modify() *Guard { return &Guard{} }

func committed() error {
	g := Open()
	g.Set(1)
	return g.Commit()
}

func discardedLater() {
	g := Open()
	defer g.Discard()
	g.Set(2)
}

func forgotten() {
	g := Open() // want `CLP100: UnresolvedGuard: guard opened by guardcase\.Open is neither committed nor discarded`
	g.Set(3)
}

func declared(b *Box) {
	var g = b.Modify() // want `guard opened by guardcase\.Box\.Modify is neither committed nor discarded`
	g.Set(4)
}

func dropped(b *Box) {
	b.Modify() // want `CLP100: UnresolvedGuard: result of guardcase\.Box\.Modify is discarded`
}

func blank(b *Box) {
	_ = b.Modify() // want `result of guardcase\.Box\.Modify is discarded`
}

func returned(b *Box) *Guard {
	g := b.Modify()
	g.Set(5)
	return g
}

func returnedDirectly(b *Box) *Guard {
	return b.Modify()
}

func passedAlong(b *Box) {
	g := b.Modify()
	finish(g)
}

func finish(g *Guard) {
	_ = g.Commit()
}

type holder struct {
	g *Guard
}

func stored(b *Box, h *holder) {
	h.g = b.Modify()
}

func committedOnBranch(b *Box, ok bool) {
	g := b.Modify()
	if ok {
		_ = g.Commit()
	}
}

func perVariable() {
	a := Open()
	c := Open() // want `guard opened by guardcase\.Open is neither committed nor discarded`
	c.Set(6)
	_ = a.Commit()
}

func insideClosure() func() {
	return func() {
		g := Open() // want `guard opened by guardcase\.Open is neither committed nor discarded`
		g.Set(7)
	}
}
