// Package changelog models a Keep a Changelog markdown document.
//
// This package implements:
//   - Release titles that are either free-form text or semantic versions,
//     with a total order that ranks free-form titles above every version
//   - Release and Changelog values assembled through consuming builders
//   - A lightweight extractor that finds the Unreleased body and the most
//     recent release (title and link) without building a markdown AST
//   - Markdown rendering of an assembled Changelog
//   - Promotion of the Unreleased section into a new dated release
//   - Terminal formatting of the parsed summary
//
// String fields may borrow from the source document or own a private copy;
// see Text. Values that must outlive or be detached from their source text
// should be converted with Detach.
package changelog
