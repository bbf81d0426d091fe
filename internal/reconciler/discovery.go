package reconciler

import (
	"context"
	"regexp"
	"strings"

	"freshd/pkg/logging"
)

// maxFeatures caps the discovered capability list.
const maxFeatures = 30

// capabilityKeywords are probed as case-insensitive substrings of the full
// help text, in addition to the command tokens scraped line by line.
var capabilityKeywords = []string{
	"swarm", "neural", "agent", "sparc", "github", "memory", "hive-mind",
}

// fallbackFeatures is returned when the tool cannot be interrogated at all.
// Discovery is cosmetic and must never surface an error or an empty list.
var fallbackFeatures = []string{
	"swarm", "agent", "neural", "sparc", "github", "memory",
}

// commandTokenPattern scrapes command names from indented help lines, e.g.
// "  swarm-init   Initialize a new swarm".
var commandTokenPattern = regexp.MustCompile(`(?m)^\s{2,}([a-z][a-z0-9-]{2,})\b`)

// Discovery performs best-effort introspection of the managed tool's
// capability surface from its help output.
type Discovery struct {
	client ToolClient
}

// NewDiscovery creates a Discovery backed by the given client.
func NewDiscovery(client ToolClient) *Discovery {
	return &Discovery{client: client}
}

// DiscoverFeatures returns capability labels scraped from the tool's help
// output: command tokens first, then matched capability keywords, duplicates
// excluded, capped at maxFeatures. On any invocation failure it returns a
// copy of the fixed fallback list.
func (d *Discovery) DiscoverFeatures(ctx context.Context) []string {
	help, err := d.client.HelpText(ctx)
	if err != nil {
		logging.Warn("Discovery", "Help invocation failed, using fallback features: %v", err)
		return append([]string(nil), fallbackFeatures...)
	}

	seen := make(map[string]bool)
	var features []string
	add := func(f string) {
		if len(features) >= maxFeatures || seen[f] {
			return
		}
		seen[f] = true
		features = append(features, f)
	}

	for _, m := range commandTokenPattern.FindAllStringSubmatch(help, -1) {
		add(m[1])
	}

	lower := strings.ToLower(help)
	for _, kw := range capabilityKeywords {
		if strings.Contains(lower, kw) {
			add(kw)
		}
	}

	logging.Debug("Discovery", "Discovered %d features", len(features))
	return features
}
