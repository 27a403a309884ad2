// Package bot wires the mathematical core to Discord: command dispatch,
// session lifecycle, and presence. Command behavior lives in a pure
// Dispatcher so it stays testable without a live session.
package bot

import (
	"strings"

	"github.com/cochainlab/cochain/betti"
	"github.com/cochainlab/cochain/edgetext"
	"github.com/cochainlab/cochain/flavor"
	"github.com/cochainlab/cochain/render"
	"github.com/cochainlab/cochain/simplex"
)

// Command names, matched after the prefix.
const (
	cmdHello      = "hello"
	cmdSimplicial = "simplicial"
	cmdVibes      = "cohomology_vibes"
)

// Dispatcher resolves chat messages to replies. It holds no session state;
// one Dispatcher serves every incoming message.
type Dispatcher struct {
	prefix string
	picker *flavor.Picker
}

// NewDispatcher builds a Dispatcher with the given command prefix and
// mood picker.
func NewDispatcher(prefix string, picker *flavor.Picker) *Dispatcher {
	return &Dispatcher{prefix: prefix, picker: picker}
}

// Dispatch maps one message to its reply. mention is the author's
// chat-platform mention string, used by the greeting. ok is false when the
// message is not a known command and deserves no reply at all.
func (d *Dispatcher) Dispatch(content, mention string) (reply string, ok bool) {
	if !strings.HasPrefix(content, d.prefix) {
		return "", false
	}
	name, arg, _ := strings.Cut(strings.TrimPrefix(content, d.prefix), " ")
	switch name {
	case cmdHello:
		return render.Greeting(mention), true
	case cmdSimplicial:
		return d.simplicial(arg), true
	case cmdVibes:
		return d.picker.Pick(), true
	}

	return "", false
}

// simplicial runs the full pipeline: parse → build → invariants → render.
func (d *Dispatcher) simplicial(arg string) string {
	pairs := edgetext.Parse(arg)
	if len(pairs) == 0 {
		return render.NoEdges()
	}

	c := simplex.Build(pairs)
	// Compute only fails on a nil complex, which Build never returns.
	res, err := betti.Compute(c)
	if err != nil {
		return render.NoEdges()
	}

	return render.Summary(c, res)
}
