// File: pkg/bundle/config.go
package bundle

// Config holds the inputs and artifact destinations for one bundling run.
// Callers pass a Config explicitly instead of reading package globals.
type Config struct {
	RootDir      string   // Directory recursively scanned for files.
	Supplemental []string // Fixed extra file paths always considered, independent of RootDir.
	Output       string   // Destination for the bundle, rewritten on every run.
	Tree         string   // Destination for the companion tree artifact; empty disables it.
	Manifest     string   // Destination for the companion run manifest; empty disables it.
}

// DefaultConfig returns the built-in configuration. The root directory
// and the supplemental list are fixed inputs, not flags.
func DefaultConfig() Config {
	return Config{
		RootDir: "./src",
		Supplemental: []string{
			"index.html",
			"readme.md",
			"plan.md",
			"LLM.md",
		},
		Output:   "./src.txt",
		Tree:     "./src.tree.txt",
		Manifest: "./src.manifest.yaml",
	}
}
