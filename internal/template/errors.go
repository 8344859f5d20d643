// Package template renders the boilerplate artifacts (model scaffold, web
// entry, views, mailer, controllers) from the embedded template tree. The
// pipeline decides which destinations to populate; rendering mechanics
// live here.
package template

import "errors"

// Sentinel errors for template rendering and deployment.
var (
	// ErrTemplateNotFound indicates the named template is not embedded.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the context lacks a key the
	// template references (strict mode).
	ErrMissingTemplateKey = errors.New("template: missing context key")

	// ErrUnexpandedToken indicates a dynamic token survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a destination escaping the project root.
	ErrPathTraversal = errors.New("template: destination escapes project root")
)
