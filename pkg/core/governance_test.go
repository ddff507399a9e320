//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/saju"

// =============================================================================
// LAYERING TEST - Library packages stay free of CLI concerns
// =============================================================================

// cliOnlyImports are import path prefixes reserved for internal/ and cmd/.
var cliOnlyImports = []string{
	modulePath + "/internal/",
	"github.com/spf13/cobra",
	"github.com/knadh/koanf",
	"github.com/charmbracelet/lipgloss",
	"github.com/jedib0t/go-pretty",
	"github.com/chzyer/readline",
}

// TestGovernance_PkgLayering verifies that packages under pkg/ never import
// internal packages or terminal/CLI libraries, so the engine can be embedded
// without them.
func TestGovernance_PkgLayering(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	for _, p := range pkgs {
		for path := range p.Imports {
			for _, prefix := range cliOnlyImports {
				if strings.HasPrefix(path, prefix) {
					t.Errorf("LAYERING VIOLATION: '%s' imports '%s'.\n"+
						"   Fix: keep CLI and internal concerns out of pkg/.",
						strings.TrimPrefix(p.PkgPath, modulePath+"/"), path)
				}
			}
		}
	}
}

// =============================================================================
// PURITY TEST - No type alias re-exports of core types
// =============================================================================

// TestGovernance_NoCoreAliasReexports ensures packages don't re-export core
// types as aliases. Consumers should name core.Date, core.BirthMoment and the
// error kinds directly.
func TestGovernance_NoCoreAliasReexports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	corePath := modulePath + "/pkg/core"
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 || pkg.PkgPath == corePath {
			continue
		}

		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			typeName, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !typeName.Exported() || !typeName.IsAlias() {
				continue
			}
			named, ok := types.Unalias(typeName.Type()).(*types.Named)
			if !ok || named.Obj().Pkg() == nil {
				continue
			}
			if named.Obj().Pkg().Path() == corePath {
				t.Errorf("PURITY VIOLATION: Package '%s' re-exports core type '%s' as '%s'.\n"+
					"   Fix: Remove the alias. Consumers should use core.%s directly.",
					strings.TrimPrefix(pkg.PkgPath, modulePath+"/"), named.Obj().Name(), name, named.Obj().Name())
			}
		}
	}
}
