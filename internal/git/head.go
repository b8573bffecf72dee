package git

import (
	stderrors "errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"git.home.luguber.info/inful/ppt/internal/foundation/errors"
)

const shortHashLen = 7

// Head describes the commit checked out in a working tree.
type Head struct {
	Hash      string
	ShortHash string
	// Branch is empty when HEAD is detached.
	Branch string
}

// ReadHead opens the repository containing path, searching parent directories, and
// returns its HEAD.
func ReadHead(path string) (Head, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Head{}, classify(err, "open", path)
	}

	ref, err := repo.Head()
	if err != nil {
		return Head{}, classify(err, "head", path)
	}

	h := Head{Hash: ref.Hash().String()}
	h.ShortHash = h.Hash
	if len(h.ShortHash) > shortHashLen {
		h.ShortHash = h.ShortHash[:shortHashLen]
	}
	if ref.Name().IsBranch() {
		h.Branch = ref.Name().Short()
	}
	return h, nil
}

func classify(err error, op, path string) error {
	category := errors.CategoryInternal
	switch {
	case stderrors.Is(err, git.ErrRepositoryNotExists):
		category = errors.CategoryNotFound
	case stderrors.Is(err, plumbing.ErrReferenceNotFound):
		// Fresh repository without commits.
		category = errors.CategoryNotFound
	}
	return errors.WrapError(err, category, "read git head").
		WithContext("op", op).
		WithContext("path", path).
		Build()
}
