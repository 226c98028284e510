package httputil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type record struct {
	CheckedAt time.Time `json:"checked_at"`
	Version   string    `json:"version"`
}

func TestCache_GetSet(t *testing.T) {
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}

	want := record{CheckedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), Version: "1.0-20250102.030405-7"}
	if err := c.Set("org/example/lib/1.0-SNAPSHOT", want); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var got record
	ok, err := c.Get("org/example/lib/1.0-SNAPSHOT", &got)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}
	if !got.CheckedAt.Equal(want.CheckedAt) || got.Version != want.Version {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var result string
	ok, err := c.Get("missing", &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	ok, err = c.Get("key", &res)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("got error %v, want ErrExpired", err)
	}
	if ok {
		t.Error("Get() returned true for expired key")
	}
}

func TestCache_KeyStability(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	p1 := c.keyPath("test")
	p2 := c.keyPath("test")
	if p1 != p2 {
		t.Error("path should be deterministic")
	}
	if p1 == c.keyPath("other") {
		t.Error("different keys should produce different paths")
	}
}

func TestNewCache(t *testing.T) {
	if _, err := NewCache("", time.Hour); err == nil {
		t.Error("NewCache(\"\") should fail")
	}

	dir := filepath.Join(t.TempDir(), "nested", "updates")
	c, err := NewCache(dir, time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("cache directory %s not created: %v", dir, err)
	}
	if err := c.Set("k", 1); err != nil {
		t.Errorf("Set() in new cache failed: %v", err)
	}
}

func TestCache_Namespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	t.Run("isolation", func(t *testing.T) {
		central := c.Namespace("central:")
		mirror := c.Namespace("mirror:")

		if err := central.Set("g/a/1-SNAPSHOT", "central-data"); err != nil {
			t.Fatalf("central.Set() failed: %v", err)
		}
		if err := mirror.Set("g/a/1-SNAPSHOT", "mirror-data"); err != nil {
			t.Fatalf("mirror.Set() failed: %v", err)
		}

		var a, b string
		if ok, err := central.Get("g/a/1-SNAPSHOT", &a); !ok || err != nil {
			t.Fatalf("central.Get() = %v, %v", ok, err)
		}
		if ok, err := mirror.Get("g/a/1-SNAPSHOT", &b); !ok || err != nil {
			t.Fatalf("mirror.Get() = %v, %v", ok, err)
		}
		if a != "central-data" || b != "mirror-data" {
			t.Errorf("got %q/%q, want central-data/mirror-data", a, b)
		}
	})

	t.Run("chained", func(t *testing.T) {
		outer := c.Namespace("outer:")
		inner := outer.Namespace("inner:")

		if err := inner.Set("k", "v"); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
		var got string
		if found, _ := outer.Get("k", &got); found {
			t.Error("value accessible without full namespace chain")
		}
		if found, _ := c.Get("outer:inner:k", &got); !found || got != "v" {
			t.Errorf("root Get() = %v, %q; want true, v", found, got)
		}
	})

	t.Run("sharesTTL", func(t *testing.T) {
		short, _ := NewCache(t.TempDir(), 10*time.Millisecond)
		ns := short.Namespace("test:")
		if err := ns.Set("k", "v"); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
		var got string
		if _, err := ns.Get("k", &got); !errors.Is(err, ErrExpired) {
			t.Errorf("Get() error = %v, want ErrExpired", err)
		}
	})
}
