package ui

import (
	"fmt"
	"strings"
)

// RenderControls renders the boxed key reference.
func RenderControls(keys []KeyHint) string {
	lines := []string{StyleControlsTitle.Render("CONTROLS")}
	for _, k := range keys {
		lines = append(lines, StyleHelp.Render(fmt.Sprintf("%s - %s", k.Action, k.Key)))
	}
	return StyleControlsBorder.Render(strings.Join(lines, "\n"))
}
