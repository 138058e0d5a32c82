package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Cache directory layout. The archive cache holds the extracted bulk
// documentation tree; the components cache holds one markdown file per
// harvested component, grouped by category.
const (
	ExtractedDirName  = "extracted"
	ComponentsDirName = "collector_docs"

	referenceSubdir       = "reference/edot-collector"
	upstreamSubdir        = "reference/opentelemetry"
	troubleshootingSubdir = "troubleshoot/ingest/opentelemetry"
	generalReferenceFile  = "edot-collector.md"
)

// Ensure Corpus implements explainconfig.Corpus at compile time.
var _ explainconfig.Corpus = (*Corpus)(nil)

// Corpus exposes the documentation files materialized under the two cache
// directories. Every call re-scans the filesystem; there is no in-memory
// index. Unreadable files are skipped and missing directories yield empty
// results.
type Corpus struct {
	archiveDir    string
	componentsDir string
}

// NewCorpus creates a Corpus over the archive cache directory and the
// per-component cache directory.
func NewCorpus(archiveDir, componentsDir string) *Corpus {
	return &Corpus{archiveDir: archiveDir, componentsDir: componentsDir}
}

func (c *Corpus) extractedDir() string {
	return filepath.Join(c.archiveDir, ExtractedDirName)
}

func (c *Corpus) referenceDir() string {
	return filepath.Join(c.extractedDir(), filepath.FromSlash(referenceSubdir))
}

// ReferenceDocs returns every reference document across both sources:
// the collector reference area of the bulk archive, the upstream
// reference files that concern the collector, and all harvested
// per-component pages.
func (c *Corpus) ReferenceDocs(ctx context.Context) ([]explainconfig.Doc, error) {
	var docs []explainconfig.Doc

	refDir := c.referenceDir()
	if doc, ok := readDoc(filepath.Join(refDir, generalReferenceFile)); ok {
		docs = append(docs, doc)
	}
	docs = append(docs, collectDocs(filepath.Join(refDir, "config"))...)
	docs = append(docs, collectDocs(filepath.Join(refDir, "components"))...)

	for _, doc := range collectDocs(filepath.Join(c.extractedDir(), filepath.FromSlash(upstreamSubdir))) {
		lower := strings.ToLower(doc.Path)
		if strings.Contains(lower, "edot") || strings.Contains(lower, "collector") {
			docs = append(docs, doc)
		}
	}

	docs = append(docs, collectDocs(filepath.Join(c.componentsDir, ComponentsDirName))...)

	return docs, nil
}

// ConfigDocs returns the configuration-reference subset of the bulk
// archive.
func (c *Corpus) ConfigDocs(ctx context.Context) ([]explainconfig.Doc, error) {
	return collectDocs(filepath.Join(c.referenceDir(), "config")), nil
}

// TroubleshootingDocs returns the troubleshooting subset of the bulk
// archive.
func (c *Corpus) TroubleshootingDocs(ctx context.Context) ([]explainconfig.Doc, error) {
	return collectDocs(filepath.Join(c.extractedDir(), filepath.FromSlash(troubleshootingSubdir))), nil
}

// GeneralReference returns the top-level collector reference document, or
// nil if it does not exist.
func (c *Corpus) GeneralReference(ctx context.Context) (*explainconfig.Doc, error) {
	if doc, ok := readDoc(filepath.Join(c.referenceDir(), generalReferenceFile)); ok {
		return &doc, nil
	}
	return nil, nil
}

// collectDocs walks root and reads every markdown file under it. Walk and
// read errors are swallowed; the affected files are simply excluded.
func collectDocs(root string) []explainconfig.Doc {
	var docs []explainconfig.Doc
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if doc, ok := readDoc(path); ok {
			docs = append(docs, doc)
		}
		return nil
	})
	return docs
}

func readDoc(path string) (explainconfig.Doc, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return explainconfig.Doc{}, false
	}
	return explainconfig.Doc{
		Name:    filepath.Base(path),
		Path:    path,
		Content: string(data),
	}, true
}
