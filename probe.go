package iinject

// pluginProbe describes a plugin whose presence is read off its host
// library rather than a global of its own.
type pluginProbe struct {
	host   string
	member string
}

// pluginProbes special-cases the SPServices jQuery plugin. It counts as
// present only when jQuery is defined and $().SPServices is absent.
// The inverted member check is long-standing behaviour and is kept as is.
var pluginProbes = map[string]pluginProbe{
	"SPServices": {host: "jQuery", member: "SPServices"},
}

// Prober answers whether an asset is already usable in the host.
type Prober struct {
	globals Globals
}

// NewProber creates a Prober over g.
func NewProber(g Globals) *Prober {
	return &Prober{globals: g}
}

// Exists reports whether symbol is present. An empty symbol is never
// present, so assets without a probe are always loaded.
func (p *Prober) Exists(symbol string) bool {
	if symbol == "" {
		return false
	}
	if plugin, ok := pluginProbes[symbol]; ok {
		return p.globals.Defined(plugin.host) && !p.globals.HasMember(plugin.host, plugin.member)
	}
	return p.globals.Defined(symbol)
}
