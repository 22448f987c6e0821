package addon

// externalAddons are skill packs installed through the external skills
// installer rather than copied from the bundle.
var externalAddons = []Addon{
	{
		Name:        "vercel-agent-skills",
		Description: "React and Next.js performance and composition guidelines from Vercel.",
		Source:      SourceExternal,
		Package:     "vercel-labs/agent-skills",
	},
	{
		Name:        "anthropic-skills",
		Description: "Document, design and testing skills published by Anthropic.",
		Source:      SourceExternal,
		Package:     "anthropics/skills",
	},
}

// External returns a copy of the external add-ons in display order.
func External() []Addon {
	out := make([]Addon, len(externalAddons))
	copy(out, externalAddons)
	return out
}
