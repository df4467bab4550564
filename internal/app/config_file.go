package app

import (
    "fmt"
    "os"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file YAML configuration. Nested sections
// mirror the flag namespaces.
type FileConfig struct {
    Input  string `yaml:"input"`
    Output string `yaml:"output"`
    Style  string `yaml:"style"`

    Server struct {
        Addr        string `yaml:"addr"`
        UploadDir   string `yaml:"uploadDir"`
        OutputDir   string `yaml:"outputDir"`
        MaxUploadMB int64  `yaml:"maxUploadMB"`
    } `yaml:"server"`

    LLM struct {
        BaseURL string `yaml:"base"`
        Model   string `yaml:"model"`
        APIKey  string `yaml:"key"`
    } `yaml:"llm"`

    Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
    b, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read config %s: %w", path, err)
    }
    var fc FileConfig
    if err := yaml.Unmarshal(b, &fc); err != nil {
        return nil, fmt.Errorf("parse config %s: %w", path, err)
    }
    return &fc, nil
}

// Apply fills the unset fields of cfg from the file. Flag and env values win;
// the file only supplies what they left empty.
func (fc *FileConfig) Apply(cfg *Config) {
    if fc == nil {
        return
    }
    if cfg.InputPath == "" {
        cfg.InputPath = fc.Input
    }
    if cfg.OutputPath == "" {
        cfg.OutputPath = fc.Output
    }
    if cfg.StyleLabel == "" {
        cfg.StyleLabel = fc.Style
    }
    if cfg.Addr == "" {
        cfg.Addr = fc.Server.Addr
    }
    if cfg.UploadDir == "" {
        cfg.UploadDir = fc.Server.UploadDir
    }
    if cfg.OutputDir == "" {
        cfg.OutputDir = fc.Server.OutputDir
    }
    if cfg.MaxUploadBytes == 0 && fc.Server.MaxUploadMB > 0 {
        cfg.MaxUploadBytes = fc.Server.MaxUploadMB << 20
    }
    if cfg.LLMBaseURL == "" {
        cfg.LLMBaseURL = fc.LLM.BaseURL
    }
    if cfg.LLMModel == "" {
        cfg.LLMModel = fc.LLM.Model
    }
    if cfg.LLMAPIKey == "" {
        cfg.LLMAPIKey = fc.LLM.APIKey
    }
    if fc.Verbose {
        cfg.Verbose = true
    }
}
