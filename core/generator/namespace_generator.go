package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nsgen/core/config"
	"nsgen/core/logger"
	"nsgen/core/models"
	"nsgen/core/template_engine"
	"nsgen/core/walker"
)

type NamespaceGenerator struct {
	wd     string
	cfg    *config.Config
	Walker *walker.NamespaceWalkerImpl
}

func NewNamespaceGenerator(wd string, cfg *config.Config) *NamespaceGenerator {
	walker := walker.NewNamespaceWalker(filepath.Base(cfg.Codegen.Namespaces.Output))
	return &NamespaceGenerator{wd: wd, cfg: cfg, Walker: walker}
}

// Generate rewrites the aggregator file from the current contents of the
// namespace root. The output is a pure function of the directory listing: no
// timestamps, no state carried between runs.
func (ng *NamespaceGenerator) Generate() error {
	root := ng.rootPath()
	namespaces, err := ng.Walker.Walk(root)
	if err != nil {
		return fmt.Errorf("failed to discover namespaces: %w", err)
	}

	moduleName := ng.getModuleName()
	importBase := ng.importBase(moduleName, root)
	for i := range namespaces {
		namespaces[i].ImportPath = importBase + "/" + namespaces[i].Name
	}

	templateData := struct {
		Namespaces  []models.Namespace
		PackageName string
		ModuleName  string
	}{
		Namespaces:  namespaces,
		PackageName: filepath.Base(root),
		ModuleName:  moduleName,
	}

	engine := template_engine.NewTemplateEngine()
	outputPath := ng.outputPath()
	if err := engine.GenerateFile(template_engine.TEMPLATES.NAMESPACES_GO, outputPath, templateData); err != nil {
		return &models.IOError{Op: "write", Path: outputPath, Err: err}
	}

	logger.Info("Generated %s with %d namespaces", outputPath, len(namespaces))
	return nil
}

func (ng *NamespaceGenerator) rootPath() string {
	root := ng.cfg.Codegen.Namespaces.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(ng.wd, root)
	}
	return root
}

func (ng *NamespaceGenerator) outputPath() string {
	output := ng.cfg.Codegen.Namespaces.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(ng.wd, output)
	}
	return output
}

func (ng *NamespaceGenerator) importBase(moduleName, root string) string {
	relRoot, err := filepath.Rel(ng.wd, root)
	if err != nil || strings.HasPrefix(relRoot, "..") {
		return moduleName + "/" + filepath.Base(root)
	}
	if relRoot == "." {
		return moduleName
	}
	return moduleName + "/" + filepath.ToSlash(relRoot)
}

func (ng *NamespaceGenerator) getModuleName() string {
	goModPath := filepath.Join(ng.wd, "go.mod")
	content, err := os.ReadFile(goModPath)
	if err != nil {
		logger.Debug("Could not read go.mod, using default module name: %v", err)
		return "app"
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module"))
		}
	}

	logger.Debug("No module declaration found in go.mod, using default")
	return "app" // fallback
}
