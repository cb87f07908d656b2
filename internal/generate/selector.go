// Package generate turns a free-text prompt into a game definition.
// The "generation" is a deterministic keyword-to-template selector:
// an ordered rule list where the first matching keyword wins and a
// fixed fallback guarantees a valid result for any input.
package generate

import (
	"strings"

	"github.com/playform/playform/internal/registry"
	"github.com/playform/playform/internal/runtime"
)

// Fallback is the template selected when no keyword matches.
const Fallback = "bouncer"

// rule maps a keyword set to a template name. Rules are checked in
// order; the first rule with any keyword contained in the prompt wins.
type rule struct {
	keywords []string
	template string
}

var rules = []rule{
	{keywords: []string{"snake"}, template: "snake"},
	{keywords: []string{"pong"}, template: "pong"},
	{keywords: []string{"breakout", "bricks"}, template: "breakout"},
	{keywords: []string{"flappy"}, template: "flappy"},
	{keywords: []string{"runner"}, template: "runner"},
	{keywords: []string{"space", "shooter"}, template: "shooter"},
}

// Select maps a prompt to a template name. Pure and deterministic:
// the same prompt always yields the same template, and the fallback
// means there is no failure mode.
func Select(prompt string) string {
	p := strings.ToLower(prompt)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(p, kw) {
				return r.template
			}
		}
	}
	return Fallback
}

// Definition selects a template for the prompt and instantiates it.
// Always returns a valid definition: every rule target and the
// fallback are built-in registered templates.
func Definition(prompt string) runtime.Definition {
	def, err := registry.Create(Select(prompt))
	if err != nil {
		// Only reachable if a built-in template failed to register,
		// which is a programming error.
		panic(err)
	}
	return def
}
