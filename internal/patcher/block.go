package patcher

import (
	"fmt"
	"strings"

	"github.com/authsmith/authsmith/internal/config"
)

// Block renders the auth configuration section appended to the host config
// file. The opts list carries the enabled capabilities in catalog canonical
// order; the mailer sub-block is present iff an enabled capability sends
// email.
func Block(run config.Run) string {
	var b strings.Builder
	b.WriteString("auth:\n")
	fmt.Fprintf(&b, "  user_schema: %s\n", run.ModelName)
	fmt.Fprintf(&b, "  repo: %s\n", run.RepoPkg)
	fmt.Fprintf(&b, "  module: %s\n", run.Module)
	fmt.Fprintf(&b, "  logged_out_url: %s\n", run.LoggedOutURL)
	if run.RequireEmail {
		b.WriteString("  mailer:\n")
		b.WriteString("    adapter: smtp\n")
		fmt.Fprintf(&b, "    from: no-reply@%s\n", mailDomain(run.Module))
	}
	b.WriteString("  opts:\n")
	for _, name := range run.Capabilities.Names() {
		fmt.Fprintf(&b, "    - %s\n", name)
	}
	return b.String()
}

// mailDomain derives a plausible sender domain from the module path, e.g.
// "github.com/acme/shop" yields "shop.example.com" until configured.
func mailDomain(module string) string {
	parts := strings.Split(module, "/")
	name := parts[len(parts)-1]
	if name == "" {
		name = "app"
	}
	return name + ".example.com"
}
