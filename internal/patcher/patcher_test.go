package patcher

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/authsmith/authsmith/internal/catalog"
	"github.com/authsmith/authsmith/internal/config"
)

// staticConfirmer always answers the same way.
type staticConfirmer struct {
	answer bool
	asked  int
}

func (c *staticConfirmer) Confirm(string) (bool, error) {
	c.asked++
	return c.answer, nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPatchMissingTarget(t *testing.T) {
	t.Parallel()

	p := New(nil, nil)
	target := filepath.Join(t.TempDir(), "config.yaml")

	_, err := p.Patch("auth:\n", target)
	if !errors.Is(err, ErrTargetMissing) {
		t.Fatalf("err = %v, want ErrTargetMissing", err)
	}
	if _, err := os.Stat(target); !errors.Is(err, os.ErrNotExist) {
		t.Error("patcher must not create the target file")
	}
}

func TestPatchAppend(t *testing.T) {
	t.Parallel()

	p := New(nil, nil)
	target := writeConfig(t, "server:\n  port: 8080\n")

	res, err := p.Patch("auth:\n  user_schema: User\n", target)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !res.Applied {
		t.Fatal("first patch must apply")
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "server:\n") {
		t.Error("existing content must be preserved")
	}
	start := strings.Index(got, StartMarker)
	end := strings.Index(got, EndMarker)
	if start < 0 || end < 0 || end < start {
		t.Fatalf("markers missing or out of order:\n%s", got)
	}
	if !strings.Contains(got[start:end], "user_schema: User") {
		t.Errorf("block missing between markers:\n%s", got)
	}
}

// Appends to a file without a trailing newline must not glue lines together.
func TestPatchNoTrailingNewline(t *testing.T) {
	t.Parallel()

	p := New(nil, nil)
	target := writeConfig(t, "server:\n  port: 8080")

	if _, err := p.Patch("auth: {}\n", target); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	data, _ := os.ReadFile(target)
	if strings.Contains(string(data), "8080"+StartMarker) {
		t.Errorf("marker glued to last line:\n%s", data)
	}
}

func TestPatchDeclinedLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	before := "a: 1\n\n" + StartMarker + "\nauth: {}\n" + EndMarker + "\n"
	confirm := &staticConfirmer{answer: false}
	p := New(confirm, nil)
	target := writeConfig(t, before)

	res, err := p.Patch("auth: {}\n", target)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if res.Applied {
		t.Error("declined patch must report Applied=false")
	}
	if confirm.asked != 1 {
		t.Errorf("confirmer asked %d times, want 1", confirm.asked)
	}

	data, _ := os.ReadFile(target)
	if string(data) != before {
		t.Errorf("declined patch must leave the file byte-for-byte unchanged:\n%s", data)
	}
}

func TestPatchConfirmedAppendsSecondBlock(t *testing.T) {
	t.Parallel()

	before := StartMarker + "\nauth: {}\n" + EndMarker + "\n"
	p := New(&staticConfirmer{answer: true}, nil)
	target := writeConfig(t, before)

	res, err := p.Patch("auth: {}\n", target)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !res.Applied {
		t.Fatal("confirmed patch must apply")
	}
	data, _ := os.ReadFile(target)
	if got := strings.Count(string(data), StartMarker); got != 2 {
		t.Errorf("start marker count = %d, want 2", got)
	}
}

// A nil confirmer behaves like a standing decline.
func TestPatchNilConfirmerDeclines(t *testing.T) {
	t.Parallel()

	before := StartMarker + "\nauth: {}\n" + EndMarker + "\n"
	p := New(nil, nil)
	target := writeConfig(t, before)

	res, err := p.Patch("auth: {}\n", target)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if res.Applied {
		t.Error("nil confirmer must decline the duplicate block")
	}
}

func TestBlock(t *testing.T) {
	t.Parallel()

	run := config.Run{
		Capabilities: catalog.NewSet(catalog.Recoverable, catalog.Authenticatable),
		RequireEmail: true,
		Module:       "github.com/acme/shop",
		ModelName:    "User",
		RepoPkg:      "github.com/acme/shop/internal/store",
		LoggedOutURL: "/",
	}

	block := Block(run)
	want := []string{
		"auth:\n",
		"  user_schema: User\n",
		"  repo: github.com/acme/shop/internal/store\n",
		"  module: github.com/acme/shop\n",
		"  logged_out_url: /\n",
		"  mailer:\n",
		"    from: no-reply@shop.example.com\n",
	}
	for _, w := range want {
		if !strings.Contains(block, w) {
			t.Errorf("Block missing %q in:\n%s", w, block)
		}
	}

	// opts follow catalog canonical order regardless of insertion order.
	auth := strings.Index(block, "- authenticatable")
	rec := strings.Index(block, "- recoverable")
	if auth < 0 || rec < 0 || rec < auth {
		t.Errorf("opts out of canonical order:\n%s", block)
	}
}

func TestBlockNoMailerWithoutEmail(t *testing.T) {
	t.Parallel()

	run := config.Run{
		Capabilities: catalog.NewSet(catalog.Authenticatable),
		Module:       "github.com/acme/shop",
		ModelName:    "User",
	}
	if strings.Contains(Block(run), "mailer:") {
		t.Error("mailer block must be absent without an email capability")
	}
}

func TestRenderPreview(t *testing.T) {
	t.Parallel()

	before := "a: 1\nb: 2\n"
	after := before + "\n" + StartMarker + "\nauth: {}\n" + EndMarker + "\n"

	preview := RenderPreview(before, after)
	if strings.Contains(preview, "a: 1") {
		t.Errorf("unchanged lines must be omitted:\n%s", preview)
	}
	if !strings.Contains(preview, "+ "+StartMarker) || !strings.Contains(preview, "+ auth: {}") {
		t.Errorf("inserted lines missing:\n%s", preview)
	}
}
