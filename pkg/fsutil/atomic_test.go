package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/leandoc/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		content := []byte("= Title\n")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		if err := os.WriteFile(path, []byte("stale output"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content := []byte("fresh output")
		if err := fsutil.WriteAtomic(context.Background(), path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("applies requested mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := stat.Mode().Perm(); got != 0600 {
			t.Errorf("mode = %o, want %o", got, 0600)
		}
	})

	t.Run("zero mode falls back to default", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if got := stat.Mode().Perm(); got != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", got, fsutil.DefaultFileMode)
		}
	})

	t.Run("cancelled context writes nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("failed rename leaves no temp file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "missing", "out.typ")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0644); err == nil {
			t.Fatal("expected error for missing parent directory")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp.") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	t.Run("writes missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("doc"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !changed {
			t.Error("changed = false, want true for new file")
		}
	})

	t.Run("skips identical content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		content := []byte("doc")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		before, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}

		changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, content, 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if changed {
			t.Error("changed = true, want false for identical content")
		}

		after, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if !after.ModTime().Equal(before.ModTime()) {
			t.Error("modification time changed for identical content")
		}
	})

	t.Run("rewrites differing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.typ")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("new"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}
		if !changed {
			t.Error("changed = false, want true for differing content")
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.typ")
		if _, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("doc"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}
