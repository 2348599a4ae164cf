// Package tracker observes git activity and turns it into pet activity
// events. It polls the mtimes of a few .git metadata files (a commit
// touches COMMIT_EDITMSG, a fetch touches FETCH_HEAD, a push updates
// refs/remotes) and, separately, offers a git-log freshness check used as
// a lower-frequency backstop when file events are missed.
package tracker

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gitpet/gitpet/internal/pet"
	"github.com/gitpet/gitpet/internal/util"
)

// debounceWindow suppresses duplicate events from rapid-fire file updates
// (git touches its metadata several times per operation).
const debounceWindow = 2 * time.Second

// Classify maps a .git metadata path to the activity it signals.
func Classify(path string) (pet.Kind, bool) {
	switch filepath.Base(path) {
	case "COMMIT_EDITMSG":
		return pet.KindCommit, true
	case "FETCH_HEAD":
		return pet.KindPull, true
	}
	if strings.Contains(filepath.ToSlash(path), "refs/remotes") {
		return pet.KindPush, true
	}
	return "", false
}

// DefaultRoots returns the directories scanned for git repositories when
// the user has not configured watch roots.
func DefaultRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	roots := []string{}
	for _, name := range []string{"projects", "code", "dev", "work", "repos", "src"} {
		roots = append(roots, filepath.Join(home, name))
	}
	roots = append(roots,
		filepath.Join(home, "Documents", "projects"),
		filepath.Join(home, "Documents", "code"),
	)
	return roots
}

// FindRepos discovers git repositories: the current directory if it is
// one, then immediate children of each root. The result is capped at max
// to bound the polling cost.
func FindRepos(roots []string, max int) []string {
	var repos []string

	if cwd, err := os.Getwd(); err == nil {
		if isRepo(cwd) {
			repos = append(repos, cwd)
		}
	}

	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			if isRepo(dir) {
				repos = append(repos, dir)
			}
			if len(repos) >= max {
				return repos[:max]
			}
		}
	}

	if len(repos) > max {
		repos = repos[:max]
	}
	return repos
}

func isRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// Tracker polls repositories for git metadata changes and reports them
// through a callback. The callback runs on the tracker goroutine and is
// expected to take the pet's lock itself.
type Tracker struct {
	repos    []string
	interval time.Duration
	callback func(pet.Kind)

	mu        sync.Mutex
	seen      map[string]time.Time // watched file -> last observed mtime
	lastEvent time.Time

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a tracker over the given repositories.
func New(repos []string, interval time.Duration, callback func(pet.Kind)) *Tracker {
	return &Tracker{
		repos:    repos,
		interval: interval,
		callback: callback,
		seen:     make(map[string]time.Time),
		done:     make(chan struct{}),
	}
}

// Start begins polling in a background goroutine. The first scan primes
// the mtime table without emitting events, so pre-existing history does
// not feed the pet.
func (t *Tracker) Start() {
	t.scan(false)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.scan(true)
			case <-t.done:
				return
			}
		}
	}()
}

// Stop halts polling and waits for the goroutine to exit.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.done) })
	t.wg.Wait()
}

// scan stats every watched metadata file once. When emit is set, changed
// mtimes produce debounced activity events.
func (t *Tracker) scan(emit bool) {
	for _, repo := range t.repos {
		gitDir := filepath.Join(repo, ".git")

		for _, name := range []string{"COMMIT_EDITMSG", "FETCH_HEAD"} {
			t.check(filepath.Join(gitDir, name), emit)
		}

		remotes := filepath.Join(gitDir, "refs", "remotes")
		_ = filepath.WalkDir(remotes, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			t.check(path, emit)
			return nil
		})
	}
}

func (t *Tracker) check(path string, emit bool) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	mtime := info.ModTime()

	t.mu.Lock()
	prev, known := t.seen[path]
	t.seen[path] = mtime

	changed := known && mtime.After(prev)
	now := time.Now()
	debounced := now.Sub(t.lastEvent) < debounceWindow
	if changed && !debounced {
		t.lastEvent = now
	}
	t.mu.Unlock()

	if !emit || !changed || debounced {
		return
	}
	if kind, ok := Classify(path); ok {
		t.callback(kind)
	}
}

// LatestCommitTime returns the author time of the most recent commit in a
// repository, for the poll backstop.
func LatestCommitTime(repo string) (time.Time, error) {
	out, err := util.ExecWithOutput(repo, "git", "log", "-1", "--format=%ct")
	if err != nil {
		return time.Time{}, err
	}
	unix, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0), nil
}

// HasNewCommits reports whether any tracked repository has a commit newer
// than the given instant. Repositories that fail to answer are skipped;
// the backstop is best-effort.
func HasNewCommits(repos []string, since time.Time) bool {
	for _, repo := range repos {
		latest, err := LatestCommitTime(repo)
		if err != nil {
			continue
		}
		if latest.After(since) {
			return true
		}
	}
	return false
}
