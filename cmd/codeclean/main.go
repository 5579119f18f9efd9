package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	returnOk = iota
	returnHelp
	returnBashCompletion
	returnError
)

var FS = afero.NewOsFs()

type Args struct {
	General struct {
		Debug   bool   `long:"debug" description:"Debug log output"`
		Help    bool   `long:"help" short:"h" description:"Show this help message"`
		Verbose bool   `long:"verbose" short:"v" description:"Verbose log output"`
		Config  string `long:"config" description:"Path to a yaml or json config file"`
		Json    bool   `long:"json" description:"Log events in json format"`
	} `group:"General Args"`

	Clean struct {
		Functions        string `long:"functions" short:"f" description:"Comma-separated call paths to remove (default: println,fmt.Println)"`
		RemoveComments   bool   `long:"remove-comments" short:"c" description:"Also remove comments from the code"`
		StripDocComments bool   `long:"strip-doc-comments" description:"Remove doc comments and machine directives as well"`
		Recursive        bool   `long:"recursive" short:"r" description:"Process directories recursively"`
		DryRun           bool   `long:"dry-run" short:"d" description:"Show what would change without modifying files"`
		NoBackup         bool   `long:"no-backup" short:"n" description:"Don't create backups before modifying files"`
		EmptyBlocks      string `long:"empty-blocks" short:"e" choice:"pass" choice:"remove" choice:"keep" description:"How to resolve blocks emptied by removal (default: pass)"`
	} `group:"Clean Args"`

	Positional struct {
		Path string `positional-arg-name:"path" description:"Go file or directory to clean"`
	} `positional-args:"true"`
}

func exitError(format string, args ...interface{}) (exitCode int) {
	errorMessage := fmt.Sprintf(format+"\n", args...)
	log.Error(errorMessage)

	return returnError
}

func checkArguments(args []string, opts *Args) (bool, int) {
	p := flags.NewNamedParser("codeclean", flags.None)

	p.ShortDescription = "Remove debug call statements and comments from Go source"

	if _, err := p.AddGroup("codeclean", "codeclean arguments", opts); err != nil {
		return true, exitError(err.Error())
	}

	completion := len(os.Getenv("GO_FLAGS_COMPLETION")) > 0

	_, err := p.ParseArgs(args)
	if (opts.General.Help || len(args) == 0) && !completion {
		p.WriteHelp(os.Stdout)

		return true, returnHelp
	}

	if err != nil {
		return true, exitError(err.Error())
	}

	if completion {
		return true, returnBashCompletion
	}

	if opts.Positional.Path == "" {
		return true, exitError("a file or directory path is required")
	}

	if opts.General.Debug {
		opts.General.Verbose = true
	}

	return false, 0
}

func setUpLogging(config *CleanConfig) {
	if config.Json {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{})
	}

	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	log.SetOutput(os.Stdout)
}

// Command-line arguments are higher-priority than config file options
func consolidateArgsIntoConfig(opts *Args, config *CleanConfig) {
	if strings.TrimSpace(opts.Clean.Functions) != "" {
		config.Clean.Functions = strings.Split(opts.Clean.Functions, ",")
	}

	if opts.Clean.EmptyBlocks != "" {
		config.Clean.EmptyBlocks = opts.Clean.EmptyBlocks
	}

	if opts.Clean.RemoveComments {
		config.Clean.RemoveComments = true
	}

	if opts.Clean.StripDocComments {
		config.Clean.StripDocComments = true
	}

	if opts.Clean.Recursive {
		config.Clean.Recursive = true
	}

	if opts.Clean.DryRun {
		config.Clean.DryRun = true
	}

	if opts.Clean.NoBackup {
		config.Backup.Disable = true
	}

	if opts.General.Verbose {
		config.Verbose = true
	}

	if opts.General.Json {
		config.Json = true
	}
}

func mainCmd(args []string) (exitCode int) {
	var opts = &Args{}
	if exit, exitCode := checkArguments(args, opts); exit {
		return exitCode
	}

	config, err := getConfig(opts.General.Config)
	if err != nil {
		return exitError(err.Error())
	}

	consolidateArgsIntoConfig(opts, config)
	setUpLogging(config)

	return cleanPath(config, opts.Positional.Path)
}

func main() {
	os.Exit(mainCmd(os.Args[1:]))
}
