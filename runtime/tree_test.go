package runtime

import "testing"

type orderWidget struct {
	textWidget
	name string
	log  *[]string
}

func (w *orderWidget) Mount()   { *w.log = append(*w.log, "mount "+w.name) }
func (w *orderWidget) Unmount() { *w.log = append(*w.log, "unmount "+w.name) }

func TestAttachDetachOrder(t *testing.T) {
	var log []string
	child := &orderWidget{name: "child", log: &log}
	root := &orderWidget{name: "root", log: &log}
	root.children = []Widget{child}

	Attach(root, Services{})
	Detach(root)

	want := []string{"mount root", "mount child", "unmount child", "unmount root"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestAttachSkipsBindWithoutApp(t *testing.T) {
	w := &textWidget{}
	Attach(w, Services{})
	if w.bound != 0 || w.mounted != 1 {
		t.Fatalf("bound = %d mounted = %d, want 0 and 1", w.bound, w.mounted)
	}

	app := NewApp(AppConfig{})
	Attach(w, app.Services())
	if w.bound != 1 {
		t.Fatalf("bound = %d, want 1", w.bound)
	}
	Detach(w)
	if w.unbound != 1 || w.unmounted != 1 {
		t.Fatalf("unbound = %d unmounted = %d, want 1 and 1", w.unbound, w.unmounted)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 4, Height: 3}
	if !r.Contains(2, 1) || r.Contains(6, 1) || r.Contains(2, 4) {
		t.Fatalf("Contains is not half-open for %+v", r)
	}
	got := r.Intersection(Rect{X: 4, Y: 0, Width: 10, Height: 2})
	if got != (Rect{X: 4, Y: 1, Width: 2, Height: 1}) {
		t.Fatalf("Intersection = %+v", got)
	}
	if got := r.Intersection(Rect{X: 20, Y: 20, Width: 1, Height: 1}); got.Width != 0 || got.Height != 0 {
		t.Fatalf("disjoint Intersection = %+v, want empty", got)
	}
	if got := r.Row(2); got != (Rect{X: 2, Y: 3, Width: 4, Height: 1}) {
		t.Fatalf("Row(2) = %+v", got)
	}
}
