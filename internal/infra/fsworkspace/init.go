package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/solidlab/internal/domain"
	"github.com/aalvaropc/solidlab/internal/ports"
)

const configFile = "solidlab.yaml"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init lays out a workspace: solidlab.yaml, data/ and .solidlab/logs/.
// An existing solidlab.yaml is kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, "data"),
		filepath.Join(root, ".solidlab", "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, configFile)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return nil
		}
	}

	b, err := defaultConfigYAML(spec.Backend)
	if err != nil {
		return &domain.OpError{Op: "fsworkspace.marshal", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return &domain.OpError{Op: "fsworkspace.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}
	return nil
}

type workspaceFile struct {
	Solidlab struct {
		Library struct {
			Backend string `yaml:"backend"`
			Path    string `yaml:"path"`
		} `yaml:"library"`
		Vehicles struct {
			Region string `yaml:"region"`
		} `yaml:"vehicles"`
		Logging struct {
			Debug bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"solidlab"`
}

func defaultConfigYAML(backend domain.StoreBackend) ([]byte, error) {
	def := domain.DefaultConfig()
	if backend == "" {
		backend = domain.BackendYAML
	}

	var f workspaceFile
	f.Solidlab.Library.Backend = string(backend)
	f.Solidlab.Library.Path = domain.DefaultLibraryPath(backend)
	f.Solidlab.Vehicles.Region = def.Vehicles.Region
	f.Solidlab.Logging.Debug = def.Logging.Debug

	return yaml.Marshal(f)
}

func ensureGitignore(root string) error {
	const header = "# solidlab"
	entries := []string{
		".solidlab/",
		"data/*.tmp",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
