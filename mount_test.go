package matchgeo

import "testing"

type countingComponent struct {
	text     string
	inits    int
	cleanups int
}

func (c *countingComponent) Init() func() {
	c.inits++
	return func() { c.cleanups++ }
}

func (c *countingComponent) Render(app *App) *Element {
	return New(WithText(c.text))
}

// parentComponent mounts one child per entry in children.
type parentComponent struct {
	children []string
	made     []*countingComponent
}

func (p *parentComponent) Render(app *App) *Element {
	root := New(WithDirection(Column))
	for i, text := range p.children {
		root.AddChild(app.Mount(p, i, func() Component {
			c := &countingComponent{text: text}
			p.made = append(p.made, c)
			return c
		}))
	}
	return root
}

func TestMount_CachesAcrossPasses(t *testing.T) {
	app, _ := newTestApp(t, 20, 5)
	parent := &parentComponent{children: []string{"a", "b"}}
	app.SetRootComponent(parent)

	for range 3 {
		app.Render()
	}

	if len(parent.made) != 2 {
		t.Fatalf("factory ran %d times, want 2", len(parent.made))
	}
	for i, c := range parent.made {
		if c.inits != 1 {
			t.Errorf("child %d Init ran %d times, want 1", i, c.inits)
		}
	}
	if got := app.Root().Children()[1].Component(); got != parent.made[1] {
		t.Errorf("mounted element's Component() = %v, want the cached instance", got)
	}
}

func TestMount_SweepsRemovedChildren(t *testing.T) {
	app, _ := newTestApp(t, 20, 5)
	parent := &parentComponent{children: []string{"a", "b"}}
	app.SetRootComponent(parent)
	app.Render()

	parent.children = parent.children[:1]
	app.Render()

	b := parent.made[1]
	if b.cleanups != 1 {
		t.Errorf("removed child cleanup ran %d times, want 1", b.cleanups)
	}
	if a := parent.made[0]; a.cleanups != 0 {
		t.Errorf("kept child cleanup ran %d times, want 0", a.cleanups)
	}

	// Coming back creates a new instance.
	parent.children = []string{"a", "b"}
	app.Render()
	if len(parent.made) != 3 {
		t.Errorf("factory ran %d times, want 3", len(parent.made))
	}
}

func TestMount_CloseRunsCleanups(t *testing.T) {
	term := NewMockTerminal(20, 5)
	app, err := NewApp(WithTerminal(term))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	parent := &parentComponent{children: []string{"a"}}
	app.SetRootComponent(parent)
	app.Render()

	if err := app.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if parent.made[0].cleanups != 1 {
		t.Errorf("cleanup ran %d times, want 1", parent.made[0].cleanups)
	}
}
