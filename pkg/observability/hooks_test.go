package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopResolveHooks{}
	r.OnResolveStart(ctx, "g:a:jar:1", "remote-repo")
	r.OnResolveComplete(ctx, "g:a:jar:1", "remote-repo", true, time.Second, nil)
	r.OnChecksumMismatch(ctx, "g/a/1/a-1.jar", "sha1", "abc", "def")
	r.OnMaterialize(ctx, "out/a.jar", 1024, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "local-repo/g/a/1/a-1.jar")
	c.OnCacheMiss(ctx, "local-repo/g/a/1/a-1.jar")
	c.OnCacheStore(ctx, "local-repo/g/a/1/a-1.jar", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "repo.example.com", "/maven2/g/a/1/a-1.jar")
	h.OnResponse(ctx, "GET", "repo.example.com", "/maven2/g/a/1/a-1.jar", 200, time.Second)
	h.OnError(ctx, "GET", "repo.example.com", "/maven2/g/a/1/a-1.jar", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Resolve() should return NoopResolveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customResolve := &testResolveHooks{}
	SetResolveHooks(customResolve)
	if Resolve() != customResolve {
		t.Error("SetResolveHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Resolve().(NoopResolveHooks); !ok {
		t.Error("Reset() should restore NoopResolveHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testResolveHooks{}
	SetResolveHooks(custom)
	SetResolveHooks(nil)

	if Resolve() != custom {
		t.Error("SetResolveHooks(nil) should be ignored")
	}

	Reset()
}

type testResolveHooks struct{ NoopResolveHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
