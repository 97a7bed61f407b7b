package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chrismichaelps/solis/internal/modules"
)

func TestResolverLoadsAndCachesModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Util.solis")
	if err := os.WriteFile(path, []byte("let id x = x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}

	r := modules.NewResolver(dir)
	mod, err := r.Resolve([]string{"Util"})
	if err != nil {
		t.Fatalf("resolve error: %s", err)
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(mod.Decls))
	}

	mod2, err := r.Resolve([]string{"Util"})
	if err != nil {
		t.Fatalf("second resolve error: %s", err)
	}
	if mod2 != mod {
		t.Fatalf("expected cached module on second resolve")
	}
}

func TestResolverMissingFileErrors(t *testing.T) {
	r := modules.NewResolver(t.TempDir())
	if _, err := r.Resolve([]string{"Missing"}); err == nil {
		t.Fatalf("expected an error for a missing module file")
	}
}

func TestNamespaceQualifiedAndUnqualifiedLookup(t *testing.T) {
	ns := modules.NewNamespace()
	sym := modules.Symbol{ModulePath: []string{"Util"}}
	ns.AddQualified("Util", "id", sym)
	ns.AddUnqualified("id", sym)

	if _, ok := ns.Qualified("Util", "id"); !ok {
		t.Fatalf("expected qualified lookup to succeed")
	}
	if _, ok := ns.Qualified("Util", "missing"); ok {
		t.Fatalf("expected qualified lookup of unknown name to fail")
	}
	candidates, ok := ns.Unqualified("id")
	if !ok || len(candidates) != 1 {
		t.Fatalf("got %v, %v", candidates, ok)
	}
}
