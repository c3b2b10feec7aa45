package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/astriva/astroday/internal/domain/fortune"
)

const (
	adviceFile  = "life_advices.txt"
	suggestFile = "suggest_to_do.txt"
	avoidFile   = "avoid_to_do.txt"
	foodsFile   = "foods.txt"
	tasksFile   = "daily_tasks.txt"
)

// FileProvider serves content lists from a directory of text files, one item
// per line. Lists are cached in memory and reloaded only when the newest
// file modification time advances.
type FileProvider struct {
	dir string

	mu          sync.Mutex
	cached      fortune.Lists
	cachedMtime int64
	loaded      bool
}

// NewFileProvider constructs a provider reading from dir.
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

// Lists implements fortune.ListProvider with reload-if-changed semantics.
func (p *FileProvider) Lists(_ context.Context) (fortune.Lists, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newest, err := p.newestMtime()
	if err != nil {
		return fortune.Lists{}, err
	}
	if p.loaded && p.cachedMtime == newest {
		return p.cached, nil
	}

	lists, err := p.readAll()
	if err != nil {
		return fortune.Lists{}, err
	}
	p.cached = lists
	p.cachedMtime = newest
	p.loaded = true
	return lists, nil
}

func (p *FileProvider) newestMtime() (int64, error) {
	var newest int64
	for _, name := range [...]string{adviceFile, suggestFile, avoidFile, foodsFile, tasksFile} {
		info, err := os.Stat(filepath.Join(p.dir, name))
		if err != nil {
			return 0, fmt.Errorf("stat content list %s: %w", name, err)
		}
		if m := info.ModTime().UnixNano(); m > newest {
			newest = m
		}
	}
	return newest, nil
}

func (p *FileProvider) readAll() (fortune.Lists, error) {
	var (
		lists fortune.Lists
		err   error
	)
	if lists.LifeAdvices, err = p.readLines(adviceFile); err != nil {
		return fortune.Lists{}, err
	}
	if lists.SuggestToDo, err = p.readLines(suggestFile); err != nil {
		return fortune.Lists{}, err
	}
	if lists.AvoidToDo, err = p.readLines(avoidFile); err != nil {
		return fortune.Lists{}, err
	}
	if lists.Foods, err = p.readLines(foodsFile); err != nil {
		return fortune.Lists{}, err
	}
	if lists.DailyTasks, err = p.readLines(tasksFile); err != nil {
		return fortune.Lists{}, err
	}
	return lists, nil
}

// readLines loads a list file, skipping blank lines.
func (p *FileProvider) readLines(name string) ([]string, error) {
	raw, err := os.ReadFile(filepath.Join(p.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read content list %s: %w", name, err)
	}
	var out []string
	for _, line := range strings.Split(string(raw), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}

var _ fortune.ListProvider = (*FileProvider)(nil)
