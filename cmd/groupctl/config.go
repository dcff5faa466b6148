package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Name    string   `yaml:"name"`
	Level   *int     `yaml:"level"`
	Addr    string   `yaml:"addr"`
	Groups  []string `yaml:"groups"`
	AutoAck *bool    `yaml:"auto_ack"`
	Strict  *bool    `yaml:"strict"`
	HTTP    struct {
		BindAddr string `yaml:"bind_addr"`
	} `yaml:"http"`
	LogFile string `yaml:"log_file"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	conf := &fileConfig{}

	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return conf, nil
}

// applyConfig copies values from the file into opts unless they were given
// explicitly on the command line. Groups from both are joined.
func applyConfig(parser *flags.Parser, conf *fileConfig) {
	explicit := func(name string) bool {
		opt := parser.FindOptionByLongName(name)
		return opt != nil && opt.IsSet() && !opt.IsSetDefault()
	}

	if conf.Name != "" && !explicit("name") {
		opts.Name = conf.Name
	}

	if conf.Level != nil && !explicit("level") {
		opts.Level = *conf.Level
	}

	if conf.Addr != "" && !explicit("addr") {
		opts.Addr = conf.Addr
	}

	if conf.AutoAck != nil && !explicit("auto-ack") {
		opts.AutoAck = *conf.AutoAck
	}

	if conf.Strict != nil && !explicit("strict") {
		opts.Strict = *conf.Strict
	}

	if conf.HTTP.BindAddr != "" && !explicit("http.bind-addr") {
		opts.HTTP.BindAddr = conf.HTTP.BindAddr
	}

	if conf.LogFile != "" && !explicit("log-file") {
		opts.LogFile = conf.LogFile
	}

	seen := make(map[string]bool, len(opts.Groups))
	for _, g := range opts.Groups {
		seen[g] = true
	}

	for _, g := range conf.Groups {
		if !seen[g] {
			opts.Groups = append(opts.Groups, g)
			seen[g] = true
		}
	}
}
