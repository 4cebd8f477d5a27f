package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/progress"
)

// Generator writes the site as static files: the landing page, one
// pre-rendered page per entry, the search index and the assets.
type Generator struct {
	Store     *content.Store
	Views     *Views
	OutputDir string
	Reporter  progress.Reporter
	Logger    *zap.Logger

	create func(name string) (io.WriteCloser, error)
}

func createFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(store *content.Store, views *Views, outputDir string) *Generator {
	return &Generator{
		Store:     store,
		Views:     views,
		OutputDir: outputDir,
		Reporter:  progress.Nop{},
		Logger:    zap.NewNop(),
		create:    createFile,
	}
}

type pageJob struct {
	path     string
	fragment string
	base     string
}

// Generate builds the site. Returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := g.writeAssets(); err != nil {
		return 0, fmt.Errorf("writing assets: %w", err)
	}

	index := BuildSearchIndex(g.Store)
	if err := WriteSearchIndex(index, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	jobs := []pageJob{{path: "index.html"}}
	for _, e := range index {
		jobs = append(jobs, pageJob{
			path:     e.Path,
			fragment: browser.Fragment(e.Section, e.ID),
			base:     "../",
		})
	}

	g.Reporter.Start(len(jobs))
	defer g.Reporter.Finish()
	for i, job := range jobs {
		if err := g.renderPage(job); err != nil {
			return i, fmt.Errorf("rendering %s: %w", job.path, err)
		}
		g.Reporter.Update(i+1, job.path)
		g.Logger.Debug("page written", zap.String("path", job.path))
	}

	return len(jobs), nil
}

func (g *Generator) renderPage(job pageJob) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(job.path))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	create := g.create
	if create == nil {
		create = createFile
	}
	f, err := create(outPath)
	if err != nil {
		return err
	}
	if err := g.Views.RenderPage(f, g.Store, job.fragment, job.base, true); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeAssets copies the embedded assets to <out>/assets.
func (g *Generator) writeAssets() error {
	assets := Assets()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dst := filepath.Join(g.OutputDir, "assets", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0o644)
	})
}
