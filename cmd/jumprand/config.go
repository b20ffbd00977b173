package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jumprand/jumprand/xoshiro"
)

// Config represents a custom generator parameterization.
type Config struct {
	Family   string `yaml:"family"`
	WordBits uint   `yaml:"word_bits"`
	Words    uint   `yaml:"words"`
	A        uint   `yaml:"a"`
	B        uint   `yaml:"b"`
	C        uint   `yaml:"c"`
}

// Params converts the configuration into a parameterization.
func (cfg Config) Params() (xoshiro.Params, error) {
	family, err := xoshiro.NewFamily(cfg.Family)
	if err != nil {
		return xoshiro.Params{}, err
	}
	if cfg.WordBits != 32 && cfg.WordBits != 64 {
		return xoshiro.Params{}, errors.New("word_bits must be 32 or 64")
	}

	return xoshiro.Params{
		Family:   family,
		WordBits: cfg.WordBits,
		Words:    cfg.Words,
		A:        cfg.A,
		B:        cfg.B,
		C:        cfg.C,
	}, nil
}

// ConfigFile represents a namespaced YAML configuration file.
type ConfigFile struct {
	Jumprand Config `yaml:"jumprand"`
}

// ParseConfigFile returns a new ConfigFile given the path to a YAML
// configuration file.
//
// It supports relative and absolute paths and environment variables.
func ParseConfigFile(path string) (*ConfigFile, error) {
	if path == "" {
		return nil, errors.New("no config path specified")
	}

	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	contents, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var cfgFile ConfigFile
	err = yaml.Unmarshal(contents, &cfgFile)
	if err != nil {
		return nil, err
	}

	return &cfgFile, nil
}

// resolveParams picks the parameterization from either a named generator or
// a config file. Exactly one of the two must be provided.
func resolveParams(generator, configPath string) (xoshiro.Params, error) {
	switch {
	case generator != "" && configPath != "":
		return xoshiro.Params{}, errors.New("--generator and --config are mutually exclusive")
	case generator != "":
		p, ok := xoshiro.LookupParams(generator)
		if !ok {
			return xoshiro.Params{}, errors.Wrap(xoshiro.ErrUnknownGenerator, generator)
		}
		return p, nil
	case configPath != "":
		cfgFile, err := ParseConfigFile(configPath)
		if err != nil {
			return xoshiro.Params{}, errors.Wrap(err, "failed to read config")
		}
		return cfgFile.Jumprand.Params()
	default:
		return xoshiro.Params{}, errors.New("either --generator or --config is required")
	}
}
