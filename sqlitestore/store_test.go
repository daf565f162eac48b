package sqlitestore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xqrs/zscroll"
)

var _ zscroll.Store = (*Store)(nil)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scroll.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := openTestStore(t)

	v, ok, err := s.Load("zscroll-doc-y")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ok || v != 0 {
		t.Errorf("Load = (%v, %v), want (0, false)", v, ok)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s, _ := openTestStore(t)

	if err := s.Save("zscroll-doc-y", 120); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Save("zscroll-doc-y", 42.5); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	v, ok, err := s.Load("zscroll-doc-y")
	if err != nil || !ok {
		t.Fatalf("Load = (%v, %v, %v), want a value", v, ok, err)
	}
	if v != 42.5 {
		t.Errorf("Load = %v, want 42.5", v)
	}
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scroll.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := s.Save("zscroll-doc-x", 7); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Load("zscroll-doc-x")
	if err != nil || !ok || v != 7 {
		t.Errorf("Load = (%v, %v, %v), want (7, true, nil)", v, ok, err)
	}
}

func TestStore_DeleteAndPrune(t *testing.T) {
	s, _ := openTestStore(t)

	for _, key := range []string{"a", "b", "c"} {
		if err := s.Save(key, 1); err != nil {
			t.Fatalf("save %s failed: %v", key, err)
		}
	}
	if err := s.Delete("a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := s.Load("a"); ok {
		t.Error("deleted key still present")
	}

	n, err := s.Prune(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Prune removed %d rows, want 2", n)
	}
}

func TestStore_Closed(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := s.Save("k", 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Save after Close = %v, want ErrClosed", err)
	}
	if _, _, err := s.Load("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Load after Close = %v, want ErrClosed", err)
	}
}

func TestStore_RestoresControllerOffset(t *testing.T) {
	s, _ := openTestStore(t)
	if err := s.Save("zscroll-doc-y", 300); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	view := zscroll.NewScrollView(zscroll.NewTextContent().SetText(lines(1000)))
	view.SetRect(0, 0, 40, 200)
	cfg := zscroll.DefaultConfig()
	cfg.SmoothScrolling = false
	c, err := view.Attach(zscroll.NewRegistry(), zscroll.Binding{ID: "doc", Store: s}, cfg)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if got := c.Offset(zscroll.AxisY); got != 300 {
		t.Errorf("Offset(y) = %v, want 300", got)
	}
}

func lines(n int) string {
	b := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		b = append(b, 'x', '\n')
	}
	return string(b[:len(b)-1])
}
