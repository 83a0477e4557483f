// Package assets embeds the fixed stylesheets used by the renderer. The
// print stylesheet is not configurable per call: the exported document has
// exactly one canonical form.
package assets

import "embed"

//go:embed styles/*
var stylesFS embed.FS

// PrintStylesheet returns the CSS embedded into exported documents.
func PrintStylesheet() string {
	return mustRead("styles/print.css")
}

// WebStylesheet returns the CSS for the server-rendered browser page.
func WebStylesheet() string {
	return mustRead("styles/web.css")
}

// mustRead panics on a missing embedded file; that is a build defect, not a
// runtime condition.
func mustRead(name string) string {
	content, err := stylesFS.ReadFile(name)
	if err != nil {
		panic("assets: missing embedded file " + name + ": " + err.Error())
	}
	return string(content)
}
