package inkpress

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/evanko/inkpress/markup"
)

// BuildReport summarizes one pipeline run. Per-document failures are
// collected here instead of aborting the batch: a broken article never
// blocks the rest, and the caller decides whether any failure is fatal.
type BuildReport struct {
	Loaded int      // articles loaded, rendered, and admitted
	Drafts int      // drafts skipped (IncludeDrafts disabled)
	Errors []error  // one *DocumentError (or duplicate-slug error) per failed document
	Output []string // files written by Build, relative to the output dir
}

// Err returns all per-document failures joined, or nil when the run was clean.
func (r *BuildReport) Err() error {
	return errors.Join(r.Errors...)
}

type loadResult struct {
	article Article
	html    string
	err     error
}

// Load walks the configured content directory, loading and rendering every
// document into the App's collection.
func (a *App) Load() (*BuildReport, error) {
	return a.LoadFS(os.DirFS(a.Config.ContentDir))
}

// LoadFS is Load over an arbitrary fs.FS. Documents are processed
// independently by a fixed worker pool; there is no ordering requirement
// between articles, so results are admitted as they arrive. Slug uniqueness
// is enforced at admission, on a single goroutine.
func (a *App) LoadFS(fsys fs.FS) (*BuildReport, error) {
	paths, err := contentPaths(fsys)
	if err != nil {
		return nil, fmt.Errorf("inkpress: walk content: %w", err)
	}

	jobs := make(chan string)
	results := make(chan loadResult)

	var wg sync.WaitGroup
	for i := 0; i < a.Config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- a.process(fsys, p)
			}
		}()
	}
	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	report := &BuildReport{}
	for res := range results {
		if res.err != nil {
			report.Errors = append(report.Errors, res.err)
			continue
		}
		if res.article.Draft && !a.Config.IncludeDrafts {
			report.Drafts++
			continue
		}
		if err := a.Collection.Add(res.article, res.html); err != nil {
			report.Errors = append(report.Errors, err)
			continue
		}
		report.Loaded++
	}
	return report, nil
}

// process reads, loads, and renders one document. Pure per-document work;
// safe to run from any worker.
func (a *App) process(fsys fs.FS, path string) loadResult {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return loadResult{err: docErr(path, err)}
	}
	article, err := LoadArticle(path, src)
	if err != nil {
		return loadResult{err: err}
	}
	renderer := markup.New(markup.Options{
		Format:     article.Format,
		Strict:     a.Config.StrictDirectives,
		ImageSizer: a.sizer,
	})
	html, err := renderer.Render(article.Body)
	if err != nil {
		return loadResult{err: docErr(path, err)}
	}
	return loadResult{article: article, html: html}
}

// Build runs Load and writes the site to the output directory: one
// index.html fragment per article under blog/<slug>/, plus feed.xml,
// sitemap.xml, robots.txt, and a copy of the static assets.
func (a *App) Build() (*BuildReport, error) {
	report, err := a.Load()
	if err != nil {
		return nil, err
	}

	out := a.Config.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("inkpress: create output dir: %w", err)
	}

	entries := a.Collection.Articles("")
	for _, e := range entries {
		rel := filepath.Join("blog", e.Article.Slug, "index.html")
		if err := writeFile(out, rel, []byte(e.HTML)); err != nil {
			return nil, err
		}
		report.Output = append(report.Output, rel)
	}

	if err := a.writeXML(out, "feed.xml", report, func(f *os.File) error {
		return WriteFeed(f, a.Config, entries, a.Config.FeedLimit)
	}); err != nil {
		return nil, err
	}
	if err := a.writeXML(out, "sitemap.xml", report, func(f *os.File) error {
		return WriteSitemap(f, a.Config, entries)
	}); err != nil {
		return nil, err
	}

	robots := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	if err := writeFile(out, "robots.txt", []byte(robots)); err != nil {
		return nil, err
	}
	report.Output = append(report.Output, "robots.txt")

	if err := copyStatic(a.Config.StaticDir, filepath.Join(out, "public")); err != nil {
		return nil, err
	}
	return report, nil
}

func (a *App) writeXML(out, name string, report *BuildReport, write func(*os.File) error) error {
	f, err := os.Create(filepath.Join(out, name))
	if err != nil {
		return fmt.Errorf("inkpress: create %s: %w", name, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("inkpress: write %s: %w", name, err)
	}
	report.Output = append(report.Output, name)
	return nil
}

// contentPaths returns every source document below root, in walk order.
func contentPaths(fsys fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown", ".html":
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func writeFile(out, rel string, data []byte) error {
	target := filepath.Join(out, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("inkpress: create %s: %w", filepath.Dir(rel), err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("inkpress: write %s: %w", rel, err)
	}
	return nil
}

// copyStatic mirrors the static assets directory into the output tree.
// A missing static dir is fine; not every site has assets.
func copyStatic(src, dst string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}
	fsys := os.DirFS(src)
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(filepath.Join(dst, filepath.FromSlash(path)), 0o755)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dst, filepath.FromSlash(path)), data, 0o644)
	})
}
