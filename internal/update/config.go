package update

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	StartModeMonths = "months"
	StartModeToday  = "today"

	SummaryStylePlain    = "plain"
	SummaryStyleMarkdown = "markdown"

	DefaultConfigPath = "~/.agenda/config.toml"
	DefaultTaskFile   = "~/.agenda/tasks.json"
)

type RuntimeConfig struct {
	TaskFile     string `toml:"task_file"`
	Backend      string `toml:"backend"`
	StartMode    string `toml:"start_mode"`
	SummaryStyle string `toml:"summary_style"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TaskFile:     DefaultTaskFile,
		Backend:      BackendJSON,
		StartMode:    StartModeMonths,
		SummaryStyle: SummaryStylePlain,
		LogFile:      "",
		LogLevel:     "info",
	}
}

// LoadRuntimeConfig layers the config file and then the environment over the
// defaults.
func LoadRuntimeConfig() (RuntimeConfig, error) {
	path := strings.TrimSpace(os.Getenv("AGENDA_CONFIG"))
	if path == "" {
		path = DefaultConfigPath
	}
	cfg, err := RuntimeConfigFromFile(DefaultRuntimeConfig(), path)
	if err != nil {
		return RuntimeConfig{}, err
	}
	cfg = RuntimeConfigFromEnv(cfg)
	cfg.TaskFile = ExpandHome(cfg.TaskFile)
	cfg.LogFile = ExpandHome(cfg.LogFile)
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

// RuntimeConfigFromFile decodes path over base. A missing file leaves base as is.
func RuntimeConfigFromFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	resolved := ExpandHome(strings.TrimSpace(path))
	if resolved == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(resolved, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return RuntimeConfig{}, fmt.Errorf("read config %s: %w", resolved, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return RuntimeConfig{}, fmt.Errorf("config %s: unknown keys: %s", resolved, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("AGENDA_TASK_FILE"); ok {
		cfg.TaskFile = v
	}
	if v, ok := getEnvString("AGENDA_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("AGENDA_START_MODE"); ok {
		cfg.StartMode = strings.ToLower(v)
	}
	if v, ok := getEnvString("AGENDA_SUMMARY_STYLE"); ok {
		cfg.SummaryStyle = strings.ToLower(v)
	}
	if v, ok := getEnvString("AGENDA_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("AGENDA_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	if strings.TrimSpace(c.TaskFile) == "" {
		return errors.New("config: task_file is required")
	}
	switch c.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("config: unsupported backend %q", c.Backend)
	}
	switch c.StartMode {
	case StartModeMonths, StartModeToday:
	default:
		return fmt.Errorf("config: unsupported start_mode %q", c.StartMode)
	}
	switch c.SummaryStyle {
	case SummaryStylePlain, SummaryStyleMarkdown:
	default:
		return fmt.Errorf("config: unsupported summary_style %q", c.SummaryStyle)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
