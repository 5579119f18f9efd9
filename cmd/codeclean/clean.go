package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/runvnc/codeclean"
	"github.com/runvnc/codeclean/osutil"
)

type cleanStats struct {
	processed    int
	modified     int
	failed       int
	callsRemoved int
	commentFiles int
}

// cleanPath cleans one file, or every Go file under a directory. Failures
// are file-scoped: a file that cannot be transformed is logged and counted,
// and the batch moves on with the original file untouched.
func cleanPath(config *CleanConfig, path string) (exitCode int) {
	info, err := FS.Stat(path)
	if err != nil {
		return exitError(err.Error())
	}

	stats := &cleanStats{}

	if info.IsDir() {
		log.WithField("dir", path).Info("Processing directory.")

		files, err := collectFiles(config, path)
		if err != nil {
			return exitError(err.Error())
		}

		for _, file := range files {
			cleanFile(config, file, stats)
		}
	} else {
		cleanFile(config, path, stats)
	}

	logSummary(config, stats)

	if stats.failed > 0 {
		return returnError
	}

	return returnOk
}

// collectFiles gathers the Go files under dir, honoring the recursive flag
// and the config's include/exclude globs. vendor trees, hidden directories
// and the backup folder are never entered.
func collectFiles(config *CleanConfig, dir string) ([]string, error) {
	var files []string

	consider := func(path string) {
		if strings.HasSuffix(path, ".go") && config.includes(dir, path) {
			files = append(files, path)
		}
	}

	if config.Clean.Recursive {
		backupFolder := filepath.Clean(config.Backup.Folder)

		err := afero.Walk(FS, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				name := info.Name()
				if path != dir && (name == "vendor" || strings.HasPrefix(name, ".") || filepath.Clean(path) == backupFolder) {
					return filepath.SkipDir
				}
				return nil
			}

			consider(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := afero.ReadDir(FS, dir)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				consider(filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(files)

	return files, nil
}

func cleanFile(config *CleanConfig, path string, stats *cleanStats) {
	stats.processed++
	log.WithField("file", path).Debug("Cleaning file.")

	data, err := afero.ReadFile(FS, path)
	if err != nil {
		log.WithFields(log.Fields{"file": path, "error": err}).Error("Could not read file.")
		stats.failed++
		return
	}

	opts, err := config.transformOptions()
	if err != nil {
		log.WithFields(log.Fields{"file": path, "error": err}).Error("Invalid configuration.")
		stats.failed++
		return
	}

	result, err := codeclean.Transform(data, opts)
	if err != nil {
		log.WithFields(log.Fields{"file": path, "error": err}).Error("Skipping file.")
		stats.failed++
		return
	}

	if result.Output == string(data) {
		log.WithField("file", path).Debug("No changes.")
		return
	}

	stats.modified++
	stats.callsRemoved += result.CallsRemoved
	if result.CommentsRemoved {
		stats.commentFiles++
	}

	if config.Clean.DryRun {
		printDiff(path, string(data), result.Output)
		log.WithFields(log.Fields{
			"file":          path,
			"calls_removed": result.CallsRemoved,
			"bytes_removed": len(data) - len(result.Output),
		}).Info("Would clean file.")
		return
	}

	if !config.Backup.Disable {
		backupPath, err := osutil.Backup(FS, path, config.Backup.Folder)
		if err != nil {
			log.WithFields(log.Fields{"file": path, "error": err}).Error("Could not create backup, leaving file untouched.")
			stats.failed++
			stats.modified--
			return
		}
		log.WithField("backup", backupPath).Debug("Backup created.")
	}

	mode := os.FileMode(0644)
	if info, err := FS.Stat(path); err == nil {
		mode = info.Mode()
	}

	if err := afero.WriteFile(FS, path, []byte(result.Output), mode); err != nil {
		log.WithFields(log.Fields{"file": path, "error": err}).Error("Could not write file.")
		stats.failed++
		stats.modified--
		return
	}

	log.WithFields(log.Fields{
		"file":          path,
		"calls_removed": result.CallsRemoved,
		"bytes_removed": len(data) - len(result.Output),
	}).Info("Cleaned file.")
}

func printDiff(path string, before string, after string) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (cleaned)",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		log.WithFields(log.Fields{"file": path, "error": err}).Error("Could not build diff.")
		return
	}

	fmt.Print(text)
}

func logSummary(config *CleanConfig, stats *cleanStats) {
	fields := log.Fields{
		"files_processed": stats.processed,
		"files_modified":  stats.modified,
		"files_failed":    stats.failed,
		"calls_removed":   stats.callsRemoved,
	}
	if config.Clean.RemoveComments {
		fields["files_with_comments_removed"] = stats.commentFiles
	}

	if config.Clean.DryRun {
		log.WithFields(fields).Info("Dry run finished. No files were modified.")
		return
	}

	log.WithFields(fields).Info("Cleaning finished.")
}
