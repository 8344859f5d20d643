package template

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/authsmith/authsmith/internal/catalog"
	"github.com/authsmith/authsmith/internal/defs"
)

//go:embed templates
var embeddedFS embed.FS

// Category identifies one artifact family selected by a pipeline stage.
type Category string

const (
	CategoryModel       Category = "model"
	CategoryWeb         Category = "web"
	CategoryViews       Category = "views"
	CategoryMailer      Category = "mailer"
	CategoryControllers Category = "controllers"
)

// artifact binds an embedded template to its destination. Artifacts with a
// non-empty requires tag are deployed only when that capability is enabled.
type artifact struct {
	src      string
	dst      func(c *Context) string
	requires catalog.Capability
}

// fixed destination helper for artifacts whose path does not depend on the
// context.
func at(path string) func(*Context) string {
	return func(*Context) string { return path }
}

var artifacts = map[Category][]artifact{
	CategoryModel: {
		{src: "templates/model/model.go.tmpl", dst: func(c *Context) string {
			return filepath.Join("internal", "models", c.ModelFile+".go")
		}},
	},
	CategoryWeb: {
		{src: "templates/web/routes.go.tmpl", dst: at("internal/web/auth_routes.go")},
	},
	CategoryControllers: {
		{src: "templates/controllers/session.go.tmpl", dst: at("internal/web/session_controller.go")},
		{src: "templates/controllers/registration.go.tmpl", dst: at("internal/web/registration_controller.go"), requires: catalog.Registerable},
		{src: "templates/controllers/password.go.tmpl", dst: at("internal/web/password_controller.go"), requires: catalog.Recoverable},
		{src: "templates/controllers/unlock.go.tmpl", dst: at("internal/web/unlock_controller.go"), requires: catalog.UnlockableWithToken},
		{src: "templates/controllers/confirmation.go.tmpl", dst: at("internal/web/confirmation_controller.go"), requires: catalog.Confirmable},
		{src: "templates/controllers/invitation.go.tmpl", dst: at("internal/web/invitation_controller.go"), requires: catalog.Invitable},
	},
	CategoryViews: {
		{src: "templates/views/login.html.tmpl", dst: at("web/templates/auth/login.html")},
		{src: "templates/views/register.html.tmpl", dst: at("web/templates/auth/register.html"), requires: catalog.Registerable},
		{src: "templates/views/forgot_password.html.tmpl", dst: at("web/templates/auth/forgot_password.html"), requires: catalog.Recoverable},
		{src: "templates/views/invitation.html.tmpl", dst: at("web/templates/auth/invitation.html"), requires: catalog.Invitable},
	},
	CategoryMailer: {
		{src: "templates/mailer/mailer.go.tmpl", dst: at("internal/mailer/auth_mailer.go")},
		{src: "templates/mailer/password_reset.html.tmpl", dst: at("web/templates/email/password_reset.html"), requires: catalog.Recoverable},
		{src: "templates/mailer/unlock.html.tmpl", dst: at("web/templates/email/unlock.html"), requires: catalog.UnlockableWithToken},
		{src: "templates/mailer/confirmation.html.tmpl", dst: at("web/templates/email/confirmation.html"), requires: catalog.Confirmable},
		{src: "templates/mailer/invitation.html.tmpl", dst: at("web/templates/email/invitation.html"), requires: catalog.Invitable},
	},
}

// Scaffolder deploys the artifact categories selected by the pipeline.
type Scaffolder interface {
	// Deploy renders and writes every artifact of the given categories
	// whose capability requirement is met. Existing destination files are
	// never overwritten; they are skipped and reported in the returned
	// skipped list. The written list holds project-relative paths.
	Deploy(ctx context.Context, projectRoot string, cats []Category, enabled catalog.Set, tctx *Context) (written, skipped []string, err error)
}

// scaffolder is the concrete implementation of Scaffolder.
type scaffolder struct {
	renderer Renderer
	logger   *slog.Logger
}

// NewScaffolder creates a Scaffolder over the embedded template tree.
func NewScaffolder(logger *slog.Logger) Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{renderer: NewRenderer(embeddedFS), logger: logger}
}

// NewScaffolderWithRenderer creates a Scaffolder with a custom renderer,
// used by tests to substitute an fstest.MapFS-backed renderer.
func NewScaffolderWithRenderer(r Renderer, logger *slog.Logger) Scaffolder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &scaffolder{renderer: r, logger: logger}
}

// Deploy renders and writes the selected categories in declaration order.
func (s *scaffolder) Deploy(ctx context.Context, projectRoot string, cats []Category, enabled catalog.Set, tctx *Context) ([]string, []string, error) {
	projectRoot = filepath.Clean(projectRoot)

	var written, skipped []string
	for _, cat := range cats {
		for _, a := range artifacts[cat] {
			if err := ctx.Err(); err != nil {
				return written, skipped, err
			}
			if a.requires != "" && !enabled.Has(a.requires) {
				continue
			}

			destRel := a.dst(tctx)
			if err := validateDestPath(projectRoot, destRel); err != nil {
				return written, skipped, err
			}
			destPath := filepath.Join(projectRoot, filepath.FromSlash(destRel))

			// Never overwrite user files.
			if _, err := os.Stat(destPath); err == nil {
				s.logger.Info("destination exists, skipping", "path", destRel)
				skipped = append(skipped, destRel)
				continue
			}

			content, err := s.renderer.Render(a.src, tctx)
			if err != nil {
				return written, skipped, fmt.Errorf("scaffold %s: %w", a.src, err)
			}

			if err := os.MkdirAll(filepath.Dir(destPath), defs.DirPerm); err != nil {
				return written, skipped, fmt.Errorf("scaffold mkdir %q: %w", filepath.Dir(destPath), err)
			}
			if err := os.WriteFile(destPath, content, defs.FilePerm); err != nil {
				return written, skipped, fmt.Errorf("scaffold write %q: %w", destPath, err)
			}
			written = append(written, destRel)
		}
	}
	return written, skipped, nil
}

// validateDestPath ensures a destination does not escape projectRoot.
func validateDestPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}
	return nil
}
