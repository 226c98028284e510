package httputil_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/funtime/mvnfetch/pkg/httputil"
)

func ExampleCache() {
	dir := filepath.Join(os.TempDir(), "mvnfetch-example")
	defer os.RemoveAll(dir)

	cache, err := httputil.NewCache(dir, 24*time.Hour)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	updates := cache.Namespace("remote-repo:")

	if err := updates.Set("org/example/lib/1.0-SNAPSHOT", map[string]string{"version": "1.0-20250101.000000-1"}); err != nil {
		fmt.Println("Error:", err)
		return
	}

	var rec map[string]string
	if ok, err := updates.Get("org/example/lib/1.0-SNAPSHOT", &rec); ok && err == nil {
		fmt.Println("Version:", rec["version"])
	}
	// Output:
	// Version: 1.0-20250101.000000-1
}
