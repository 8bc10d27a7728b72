package config

// File represents the structure of the vitetags.yaml configuration file.
type File struct {
	Root            string `yaml:"root"`
	BaseURL         string `yaml:"base_url"`
	BuildDirectory  string `yaml:"build_directory"`
	Manifest        string `yaml:"manifest"`
	HotFile         string `yaml:"hot_file"`
	LenientManifest bool   `yaml:"lenient_manifest"`
	LogFormat       string `yaml:"log_format"`
}
