package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/devcheck/internal/config"
	"github.com/nao1215/devcheck/internal/model"
)

const (
	msgImg     = "Erreur : Balise <img> détectée sans attribut 'alt'."
	msgButton  = "Avertissement : Bouton iconographique détecté sans 'aria-label'."
	msgTooltip = "Conseil : Pensez à ajouter un Tooltip pour les actions au survol."
)

// expenseListPage triggers every rule.
const expenseListPage = `export function ExpenseListPage() {
  return (
    <ul className="divide-y">
      <li className="hover:bg-muted">
        <img src={expense.receiptUrl} className="h-8 w-8" />
        <Button variant="ghost" size="icon" onClick={onDelete}>
          <Trash2 className="h-4 w-4" />
        </Button>
      </li>
    </ul>
  )
}
`

// accessiblePage triggers no rule.
const accessiblePage = `export function ExpenseListPage() {
  return (
    <ul className="divide-y">
      <li>
        <img src={expense.receiptUrl} alt="Receipt" />
        <Button aria-label="Delete expense" size="icon"><Trash2 /></Button>
      </li>
    </ul>
  )
}
`

// TestNewA11yCmd tests the a11y command creation.
func TestNewA11yCmd(t *testing.T) {
	t.Parallel()

	cmd := NewA11yCmd()

	t.Run("has disable flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("disable")
		if flag == nil {
			t.Fatal("expected disable flag")
		}
		if flag.Shorthand != "d" {
			t.Errorf("expected shorthand 'd', got %q", flag.Shorthand)
		}
	})

	t.Run("has report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"config", "lang", "json", "markdown", "output"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestRunA11yCmd tests the a11y command execution.
func TestRunA11yCmd(t *testing.T) {
	t.Parallel()

	t.Run("reports every rule in order", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ExpenseListPage.tsx", expenseListPage)

		output, err := runCheck(t, "a11y", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "--- Checking Accessibility: " + path + " ---\n" +
			msgImg + "\n" + msgButton + "\n" + msgTooltip + "\n"
		if diff := cmp.Diff(want, output); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("clean file prints only the header", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ExpenseListPage.tsx", accessiblePage)

		output, err := runCheck(t, "a11y", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output != "--- Checking Accessibility: "+path+" ---\n" {
			t.Errorf("unexpected output: %q", output)
		}
	})

	t.Run("files are checked in argument order", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "First.tsx", accessiblePage)
		second := writeFile(t, "Second.tsx", `<img src="a.png">`)

		output, err := runCheck(t, "a11y", second, first)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "--- Checking Accessibility: " + second + " ---\n" +
			msgImg + "\n" +
			"--- Checking Accessibility: " + first + " ---\n"
		if diff := cmp.Diff(want, output); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("disabled rules are skipped", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ExpenseListPage.tsx", expenseListPage)

		output, err := runCheck(t, "a11y", "-d", "hover_without_tooltip", "-d", "img_missing_alt", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(output, msgTooltip) || strings.Contains(output, msgImg) {
			t.Errorf("expected disabled rules to be skipped, got %q", output)
		}
		if !strings.Contains(output, msgButton) {
			t.Errorf("expected button warning, got %q", output)
		}
	})

	t.Run("config file disables rules", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ExpenseListPage.tsx", expenseListPage)
		cfgPath := writeFile(t, ".devcheck", "a11y:\n  disabledRules:\n    - hover_without_tooltip\n")

		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"a11y", "-c", cfgPath, path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out.String(), msgTooltip) {
			t.Errorf("expected tooltip tip to be disabled, got %q", out.String())
		}
	})

	t.Run("verbose output includes line numbers", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ExpenseListPage.tsx", expenseListPage)

		output, err := runCheck(t, "-v", "a11y", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{
			"[ERROR] img_missing_alt (line 5)",
			"[WARNING] icon_button_missing_label (line 6)",
			"[TIP] hover_without_tooltip (line 4)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got %q", want, output)
			}
		}
	})

	t.Run("english messages", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "Page.tsx", `<img src="a.png">`)

		output, err := runCheck(t, "a11y", "--lang", "en", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "Error: <img> tag found without an 'alt' attribute.") {
			t.Errorf("expected English message, got %q", output)
		}
	})

	t.Run("json output is a stream of reports", func(t *testing.T) {
		t.Parallel()

		first := writeFile(t, "First.tsx", expenseListPage)
		second := writeFile(t, "Second.tsx", accessiblePage)

		output, err := runCheck(t, "a11y", "--json", first, second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dec := json.NewDecoder(strings.NewReader(output))
		var reports []model.A11yReport
		for {
			var r model.A11yReport
			if err := dec.Decode(&r); errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				t.Fatalf("invalid JSON output: %v", err)
			}
			reports = append(reports, r)
		}

		if len(reports) != 2 {
			t.Fatalf("expected 2 reports, got %d", len(reports))
		}
		if reports[0].ErrorCount != 1 || reports[0].WarningCount != 1 || reports[0].TipCount != 1 {
			t.Errorf("unexpected counts for first report: %+v", reports[0])
		}
		if reports[1].TotalIssues() != 0 {
			t.Errorf("expected clean second report, got %+v", reports[1].Issues)
		}
		if reports[0].Digest == "" {
			t.Error("expected digest in JSON report")
		}
	})

	t.Run("markdown report to file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "ExpenseListPage.tsx", expenseListPage)
		reportPath := filepath.Join(t.TempDir(), "out", "a11y.md")

		if _, err := runCheck(t, "a11y", "-m", "-o", reportPath, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), "[!CAUTION]") {
			t.Errorf("expected CAUTION alert in report, got %q", content)
		}
	})

	t.Run("missing file surfaces not-exist error", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "Missing.tsx")

		_, err := runCheck(t, "a11y", missing)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	errorTests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "no files",
			args:    []string{"a11y"},
			wantErr: config.ErrNoTarget,
		},
		{
			name:    "unknown rule",
			args:    []string{"a11y", "-d", "no_such_rule", "App.tsx"},
			wantErr: config.ErrUnknownRule,
		},
		{
			name:    "json and markdown conflict",
			args:    []string{"a11y", "-j", "-m", "App.tsx"},
			wantErr: config.ErrConflictingReportFormats,
		},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := runCheck(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
