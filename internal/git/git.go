// Package git discovers repository details for chog, chiefly the web URL of
// the origin remote used to build release compare links. It uses the go-git
// library so no git CLI installation is needed.
package git

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// DefaultRemote is the remote whose URL is used for release links.
const DefaultRemote = "origin"

var (
	// ErrNoRemote is returned when the repository has no such remote or the
	// remote has no URL.
	ErrNoRemote = errors.New("remote not configured")
	// ErrNotWebURL is returned for remotes that do not map to a web URL,
	// such as local paths.
	ErrNotWebURL = errors.New("remote is not hosted on a web server")
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[git] repository opened successfully")
	return repo, nil
}

// RepositoryRoot returns the root of the working tree containing path.
func RepositoryRoot(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logDebug("[git] RepositoryRoot: %s", root)
	return root, nil
}

// IsGitRepository checks if path is within a git repository.
func IsGitRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsGitRepository: %v", result)
	return result
}

// OriginURL returns the web URL of the origin remote of the repository
// containing path, e.g. https://github.com/user/repo.
func OriginURL(path string) (string, error) {
	return RemoteWebURL(path, DefaultRemote)
}

// RemoteWebURL returns the web URL of the named remote.
func RemoteWebURL(path, name string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", fmt.Errorf("%s: %w", name, ErrNoRemote)
		}
		return "", fmt.Errorf("reading remote %s: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%s: %w", name, ErrNoRemote)
	}

	web, err := WebURL(urls[0])
	if err != nil {
		return "", err
	}
	logDebug("[git] remote %s: %s -> %s", name, urls[0], web)
	return web, nil
}

// WebURL converts a git remote URL to the https URL of the repository page.
// SCP-style (git@host:user/repo.git), ssh:// and git:// remotes are mapped to
// https on the same host; a trailing ".git" and any credentials are dropped.
func WebURL(remote string) (string, error) {
	ep, err := transport.NewEndpoint(strings.TrimPrefix(remote, "git+"))
	if err != nil {
		return "", fmt.Errorf("parsing remote URL %q: %w", remote, err)
	}

	scheme := "https"
	host := ep.Host
	switch ep.Protocol {
	case "http", "https":
		scheme = ep.Protocol
		if ep.Port != 0 && !isDefaultPort(ep.Protocol, ep.Port) {
			host += ":" + strconv.Itoa(ep.Port)
		}
	case "ssh", "git":
	default:
		return "", fmt.Errorf("%q: %w", remote, ErrNotWebURL)
	}
	if host == "" {
		return "", fmt.Errorf("%q: %w", remote, ErrNotWebURL)
	}

	path := strings.Trim(ep.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return "", fmt.Errorf("%q: %w", remote, ErrNotWebURL)
	}

	return scheme + "://" + host + "/" + path, nil
}

func isDefaultPort(protocol string, port int) bool {
	return (protocol == "https" && port == 443) || (protocol == "http" && port == 80)
}
