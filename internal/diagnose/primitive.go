package diagnose

import (
	"context"
	"os"

	"github.com/rowanmc/mccore/internal/fsutil"
)

// diagnoseFile is the file diagnose primitive (§4.H): missing file yields
// Missing; a present file with a non-empty expected checksum that doesn't
// match yields Corrupted; otherwise no issue (nil). It honors cancellation
// between the stat and the digest by checking ctx between I/O steps and
// bailing out silently (no issue) rather than reporting a false positive.
func diagnoseFile(ctx context.Context, path, expectedChecksum string, role IssueRole, hint string) *Issue {
	if ctx.Err() != nil {
		return nil
	}

	if !fsutil.Exists(path) {
		return &Issue{Type: Missing, Role: role, File: path, ExpectedChecksum: expectedChecksum, Hint: hint}
	}

	if expectedChecksum == "" {
		return nil
	}

	if ctx.Err() != nil {
		return nil
	}

	got, err := fsutil.SHA1(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Issue{Type: Missing, Role: role, File: path, ExpectedChecksum: expectedChecksum, Hint: hint}
		}
		return nil
	}

	if got != expectedChecksum {
		return &Issue{Type: Corrupted, Role: role, File: path, ExpectedChecksum: expectedChecksum, ReceivedChecksum: got, Hint: hint}
	}
	return nil
}

// statOnlyCheck implements the size-gated fast path shared by strict
// libraries and non-strict assets: stat the file, report Missing if
// absent, and only fall through to a full diagnoseFile when a declared
// size is known and disagrees with what's on disk.
func statOnlyCheck(ctx context.Context, path string, declaredSize int64, expectedChecksum string, role IssueRole, hint string) *Issue {
	if ctx.Err() != nil {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return &Issue{Type: Missing, Role: role, File: path, ExpectedChecksum: expectedChecksum, Hint: hint}
	}

	if declaredSize >= 0 && info.Size() != declaredSize {
		return diagnoseFile(ctx, path, expectedChecksum, role, hint)
	}
	return nil
}
