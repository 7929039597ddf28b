package schema

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/devcheck/internal/i18n"
	"github.com/nao1215/devcheck/internal/model"
)

// expectedFrench is the report body every run must produce.
var expectedFrench = []model.SchemaCheck{
	{Name: "Relations", Status: "Vérification des relations 1:n (User -> Expenses)... OK"},
	{Name: "Enums", Status: "Validation des états (DRAFT, SUBMITTED, APPROVED)... OK"},
	{Name: "Constraints", Status: "Vérification des contraintes de prix (Decimal)... OK"},
}

func TestCheckIntegrity(t *testing.T) {
	t.Parallel()

	t.Run("returns the fixed checks", func(t *testing.T) {
		t.Parallel()

		report := CheckIntegrity("server/prisma/schema.prisma")
		if diff := cmp.Diff(expectedFrench, report.Checks); diff != "" {
			t.Errorf("checks mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("result does not depend on the path", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "does-not-exist.prisma")
		paths := []string{"a.prisma", missing, "/etc/passwd", "relative/dir/"}
		for _, p := range paths {
			report := CheckIntegrity(p)
			if report.SchemaPath != p {
				t.Errorf("expected schema path %q, got %q", p, report.SchemaPath)
			}
			if diff := cmp.Diff(expectedFrench, report.Checks); diff != "" {
				t.Errorf("checks for %q mismatch (-want +got):\n%s", p, diff)
			}
		}
	})

	t.Run("empty path uses default", func(t *testing.T) {
		t.Parallel()

		report := CheckIntegrity("")
		if report.SchemaPath != DefaultSchemaPath {
			t.Errorf("expected %q, got %q", DefaultSchemaPath, report.SchemaPath)
		}
	})
}

func TestCheckerWithPrinter(t *testing.T) {
	t.Parallel()

	p, err := i18n.NewPrinter("en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := NewChecker(WithPrinter(p)).Checks()
	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	if checks[0].Name != "Relations" {
		t.Errorf("expected labels to stay untranslated, got %q", checks[0].Name)
	}
	if checks[2].Status != "Checking price constraints (Decimal)... OK" {
		t.Errorf("unexpected english status: %q", checks[2].Status)
	}
}
