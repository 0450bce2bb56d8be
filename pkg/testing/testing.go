package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the module root before any test runs, so relative paths (logs/, farm.db) land there
	//
	//   in some_test.go,
	//   import (
	//     _ "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}
