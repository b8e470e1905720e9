package pipeline

import (
	"errors"
	"os"
	"strings"

	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/roadmap"
	"github.com/matzehuels/roadmap/pkg/roadmap/builtin"
)

// Load builds the roadmap named by opts: inline Document content when set,
// otherwise Source as a builtin reference or a file path.
func Load(opts Options) (*roadmap.Graph, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	if opts.Document != "" {
		return roadmap.Read(strings.NewReader(opts.Document), opts.DocumentFormat)
	}

	if name, ok := strings.CutPrefix(opts.Source, builtin.Prefix); ok {
		return builtin.Lookup(name)
	}

	g, err := roadmap.ReadFile(opts.Source)
	if errors.Is(err, os.ErrNotExist) {
		return nil, rerrors.Wrap(rerrors.ErrCodeFileNotFound, err, "roadmap document %s not found", opts.Source)
	}
	return g, err
}
