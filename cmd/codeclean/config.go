package main

import (
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"

	"github.com/runvnc/codeclean"
	"github.com/runvnc/codeclean/rewrite"
)

// CleanConfig mirrors the yaml/json config file. Command-line arguments are
// consolidated into it after parsing and take priority.
type CleanConfig struct {
	Verbose bool   `json:"verbose"`
	Json    bool   `json:"json"`
	Clean   Clean  `json:"clean"`
	Backup  Backup `json:"backup"`
}

type Clean struct {
	Functions        []string `json:"functions"`
	RemoveComments   bool     `json:"remove_comments"`
	StripDocComments bool     `json:"strip_doc_comments"`
	Recursive        bool     `json:"recursive"`
	DryRun           bool     `json:"dry_run"`
	EmptyBlocks      string   `json:"empty_blocks"`
	FilesToInclude   []string `json:"files_to_include"`
	FilesToExclude   []string `json:"files_to_exclude"`
}

type Backup struct {
	Disable bool   `json:"disable"`
	Folder  string `json:"folder"`
}

// println and fmt.Println are the reflexive debug prints in Go code.
var defaultFunctions = []string{"println", "fmt.Println"}

const defaultEmptyBlocks = "pass"

func defaultConfig() *CleanConfig {
	config := &CleanConfig{}
	applyDefaults(config)

	return config
}

func getConfig(configFilePath string) (*CleanConfig, error) {
	if configFilePath == "" {
		return defaultConfig(), nil
	}

	data, err := codeclean.LoadFile(configFilePath)
	if err != nil {
		return nil, err
	}

	if !isJson(data) {
		data, err = convertFromYaml(data)
		if err != nil {
			return nil, err
		}
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (*CleanConfig, error) {
	var config CleanConfig
	err := json.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func (config *CleanConfig) UnmarshalJSON(data []byte) error {
	type unfurlConfig CleanConfig

	err := json.Unmarshal(data, (*unfurlConfig)(config))
	if err != nil {
		return err
	}

	applyDefaults(config)

	if err := validateConfig(config); err != nil {
		return err
	}

	configString, err := config.toString()
	if err != nil {
		return err
	}

	log.WithField("config", configString).Debug("Finished parsing config.")

	return nil
}

func (config *CleanConfig) toString() (string, error) {
	configString, err := json.Marshal(config)
	if err != nil {
		return "", err
	}

	return string(configString), nil
}

func applyDefaults(config *CleanConfig) {
	if len(config.Clean.Functions) == 0 {
		config.Clean.Functions = defaultFunctions
	}
	if config.Clean.EmptyBlocks == "" {
		config.Clean.EmptyBlocks = defaultEmptyBlocks
	}
}

func validateConfig(config *CleanConfig) error {
	_, err := rewrite.ParsePolicy(config.Clean.EmptyBlocks)
	if err != nil {
		return err
	}

	if len(rewrite.NewTargetSet(config.Clean.Functions...)) == 0 {
		log.Info("Function list is empty. Is your config correct?")
	}

	return nil
}

// transformOptions converts the file-facing config into engine options.
func (config *CleanConfig) transformOptions() (codeclean.Options, error) {
	policy, err := rewrite.ParsePolicy(config.Clean.EmptyBlocks)
	if err != nil {
		return codeclean.Options{}, err
	}

	return codeclean.Options{
		Targets:          rewrite.NewTargetSet(config.Clean.Functions...),
		EmptyBlocks:      policy,
		RemoveComments:   config.Clean.RemoveComments,
		StripDocComments: config.Clean.StripDocComments,
	}, nil
}

// includes applies the include and exclude glob lists to a file found under
// root. Patterns match the slash-separated relative path or the base name.
func (config *CleanConfig) includes(root string, file string) bool {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		rel = file
	}
	rel = filepath.ToSlash(rel)

	if len(config.Clean.FilesToInclude) > 0 && !matchesAny(config.Clean.FilesToInclude, rel) {
		return false
	}

	return !matchesAny(config.Clean.FilesToExclude, rel)
}

func matchesAny(patterns []string, rel string) bool {
	base := filepath.Base(rel)

	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
		if rel == pattern || strings.HasPrefix(rel, pattern+"/") {
			return true
		}
	}

	return false
}

// Support YAML configuration files
func convertFromYaml(yamlData []byte) ([]byte, error) {
	return yaml.YAMLToJSON(yamlData)
}

func isJson(data []byte) bool {
	jsonPattern := regexp.MustCompile(`[\s]*{.*`)
	return jsonPattern.Match(data)
}
