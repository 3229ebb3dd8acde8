package bazaar

import (
	"bufio"
	"regexp"
	"strings"

	"go.trai.ch/vcsmake/internal/core/domain"
	"go.trai.ch/vcsmake/internal/core/ports"
)

var (
	boundLocationRx = regexp.MustCompile(`bound_location\s*=\s*(.+)$`)
	boundRx         = regexp.MustCompile(`bound\s*=\s*(.+)$`)
)

// ReadBranchInfo reports whether the working copy at repositoryRoot is bound
// to another branch. A missing or unreadable branch.conf means unbound.
func ReadBranchInfo(fsys ports.FileSystem, repositoryRoot string) domain.BranchInfo {
	f, err := fsys.Open(domain.BranchConfPath(repositoryRoot))
	if err != nil {
		return domain.BranchInfo{}
	}
	defer func() { _ = f.Close() }()

	var location, bound string
	var haveLocation, haveBound bool

	scanner := bufio.NewScanner(f)
	for (!haveLocation || !haveBound) && scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if m := boundLocationRx.FindStringSubmatch(line); m != nil {
			if !haveLocation {
				location, haveLocation = m[1], true
			}
		} else if m := boundRx.FindStringSubmatch(line); m != nil {
			if !haveBound {
				bound, haveBound = m[1], true
			}
		}
	}

	if strings.EqualFold(strings.TrimSpace(bound), "true") {
		return domain.BranchInfo{Location: location, IsBound: true}
	}
	return domain.BranchInfo{Location: repositoryRoot, IsBound: false}
}
