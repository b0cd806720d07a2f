// Package settings holds the tool's own knobs: where the project lives,
// which commands to run and which database to probe. Every value has a
// built-in default; an optional devsetup.yaml in the working directory
// overrides them.
package settings

import (
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// FileName is the optional override file looked up in the working directory.
const FileName = "devsetup"

// Settings configures the prober, the connectivity check and the wizard.
type Settings struct {
	ProjectRoot    string        `mapstructure:"project_root"`
	EnvFile        string        `mapstructure:"env_file"`
	MongoURI       string        `mapstructure:"mongo_uri"`
	MongoTimeout   time.Duration `mapstructure:"mongo_timeout"`
	InstallCommand string        `mapstructure:"install_command"`
	ImportCommand  string        `mapstructure:"import_command"`
	StartCommand   string        `mapstructure:"start_command"`
	BackendURL     string        `mapstructure:"backend_url"`
	FrontendURL    string        `mapstructure:"frontend_url"`
	ModuleDirs     []string      `mapstructure:"module_dirs"`
}

// EnvPath returns the config file location inside the project.
func (s Settings) EnvPath() string {
	return filepath.Join(s.ProjectRoot, s.EnvFile)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("project_root", ".")
	v.SetDefault("env_file", filepath.Join("backend", ".env"))
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_timeout", 5000*time.Millisecond)
	v.SetDefault("install_command", "npm run install-all")
	v.SetDefault("import_command", "npm run data:import")
	v.SetDefault("start_command", "npm start")
	v.SetDefault("backend_url", "http://localhost:5000")
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("module_dirs", []string{
		"node_modules",
		filepath.Join("backend", "node_modules"),
		filepath.Join("frontend", "node_modules"),
	})
}

// Default returns the built-in settings.
func Default() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	// Defaults always decode.
	_ = v.Unmarshal(&s)
	return s
}

// Load returns the defaults overlaid with devsetup.yaml from dir, if present.
// Environment variables are never consulted.
func Load(dir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, errors.Wrap(err, "read devsetup.yaml")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings")
	}
	if !filepath.IsAbs(s.ProjectRoot) {
		s.ProjectRoot = filepath.Join(dir, s.ProjectRoot)
	}
	return s, nil
}
