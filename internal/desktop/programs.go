package desktop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/chronois/avrora/internal/domain"
	"github.com/chronois/avrora/internal/log"
)

// ApplicationDirs returns the XDG directories holding .desktop entries.
func ApplicationDirs() []string {
	var dirs []string

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range filepath.SplitList(dataDirs) {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}
	return dirs
}

// ProgramIndex caches the installed programs found in desktop entry
// directories. The first call scans, later calls reuse the result until
// Invalidate.
type ProgramIndex struct {
	dirs []string
	log  domain.Logger

	mu       sync.Mutex
	programs []domain.Program
	scanned  bool
}

// NewProgramIndex returns an index over dirs.
func NewProgramIndex(logger domain.Logger, dirs ...string) *ProgramIndex {
	return &ProgramIndex{dirs: dirs, log: log.Named(logger, "programs")}
}

// Programs implements domain.ProgramIndex.
func (p *ProgramIndex) Programs(ctx context.Context) ([]domain.Program, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.scanned {
		return p.programs, nil
	}

	programs, err := p.scan(ctx)
	if err != nil {
		return nil, err
	}
	p.programs, p.scanned = programs, true
	p.log.Info("indexed %d programs", len(programs))
	return programs, nil
}

// Invalidate implements domain.ProgramIndex.
func (p *ProgramIndex) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.programs, p.scanned = nil, false
}

// scan walks every directory concurrently. Missing directories are skipped.
func (p *ProgramIndex) scan(ctx context.Context) ([]domain.Program, error) {
	found := make([][]domain.Program, len(p.dirs))

	g, ctx := errgroup.WithContext(ctx)
	for i, dir := range p.dirs {
		i, dir := i, dir
		g.Go(func() error {
			programs, err := scanDir(ctx, dir)
			if err != nil {
				return err
			}
			found[i] = programs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan programs: %w", err)
	}

	// earlier directories shadow later ones
	seen := make(map[string]bool)
	var programs []domain.Program
	for _, list := range found {
		for _, prog := range list {
			if seen[prog.Name] {
				continue
			}
			seen[prog.Name] = true
			programs = append(programs, prog)
		}
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].Name < programs[j].Name })
	return programs, nil
}

func scanDir(ctx context.Context, dir string) ([]domain.Program, error) {
	var programs []domain.Program
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || filepath.Ext(path) != ".desktop" {
			return nil
		}
		if name, ok := readDesktopEntry(path); ok {
			programs = append(programs, domain.Program{Name: name, Path: path})
		}
		return nil
	})
	return programs, err
}

// readDesktopEntry returns the lower-cased Name of a visible application
// entry.
func readDesktopEntry(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer func() { _ = f.Close() }()

	var (
		name      string
		inEntry   bool
		isApp     bool
		noDisplay bool
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Name":
			name = strings.TrimSpace(value)
		case "Type":
			isApp = strings.TrimSpace(value) == "Application"
		case "NoDisplay", "Hidden":
			noDisplay = noDisplay || strings.TrimSpace(value) == "true"
		}
	}

	if name == "" || !isApp || noDisplay {
		return "", false
	}
	return strings.ToLower(name), true
}

var _ domain.ProgramIndex = (*ProgramIndex)(nil)
