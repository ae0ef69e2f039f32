package iinject

import "testing"

func TestProber_Exists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		defined []string
		members []string
		symbol  string
		want    bool
	}{
		{name: "empty symbol", defined: []string{""}, symbol: "", want: false},
		{name: "defined global", defined: []string{"jQuery"}, symbol: "jQuery", want: true},
		{name: "undefined global", symbol: "jQuery", want: false},
		{name: "plugin without host", symbol: "SPServices", want: false},
		{name: "plugin with host and no flag", defined: []string{"jQuery"}, symbol: "SPServices", want: true},
		{name: "plugin with host and flag", defined: []string{"jQuery"}, members: []string{"jQuery.SPServices"}, symbol: "SPServices", want: false},
		{name: "plugin global alone is ignored", defined: []string{"SPServices"}, symbol: "SPServices", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newFakeHost(tt.defined...)
			for _, m := range tt.members {
				h.members[m] = true
			}
			if got := NewProber(h).Exists(tt.symbol); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestProber_EmptySymbolDoesNotProbe(t *testing.T) {
	t.Parallel()

	h := newFakeHost()
	NewProber(h).Exists("")
	if len(h.calls) != 0 {
		t.Errorf("calls = %v, want none", h.calls)
	}
}
