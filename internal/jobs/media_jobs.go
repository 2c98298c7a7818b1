package jobs

import (
	"context"
	"strconv"
	"strings"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/logger"
	"spacebook-backend/internal/media"
)

// SweepOrphanMedia removes stored images whose entity no longer exists.
// File names are lowercased entity keys, so the live key sets are
// lowercased before comparison.
func (jr *JobRunner) SweepOrphanMedia() {
	jr.runWithRecovery("SweepOrphanMedia", func() {
		ctx := context.Background()

		branches, err := jr.store.BranchRepository.List(ctx, "")
		if err != nil {
			logger.Error("Failed to list branches for media sweep", "error", err)
			return
		}
		live := map[string]bool{}
		for _, b := range branches {
			live[strings.ToLower(b.Code)] = true
		}
		jr.sweepKind(media.KindBranch, live)

		libraries, err := jr.store.LibraryRepository.List(ctx, "")
		if err != nil {
			logger.Error("Failed to list libraries for media sweep", "error", err)
			return
		}
		live = map[string]bool{}
		for _, l := range libraries {
			live[strings.ToLower(l.LibraryCode)] = true
		}
		jr.sweepKind(media.KindLibrary, live)

		spaces, err := jr.store.SpaceRepository.List(ctx, domain.SpaceFilter{})
		if err != nil {
			logger.Error("Failed to list spaces for media sweep", "error", err)
			return
		}
		live = map[string]bool{}
		for _, sp := range spaces {
			live[strconv.Itoa(int(sp.SpaceID))] = true
		}
		jr.sweepKind(media.KindSpace, live)
	})
}

func (jr *JobRunner) sweepKind(kind media.Kind, live map[string]bool) {
	keys, err := jr.mediaStore.Keys(kind)
	if err != nil {
		logger.Error("Failed to list media files", "kind", kind, "error", err)
		return
	}
	removed := 0
	for _, key := range keys {
		if !live[key] {
			jr.mediaStore.Remove(key, kind)
			removed++
		}
	}
	if removed > 0 {
		logger.Info("Removed orphan media files", "kind", kind, "count", removed)
	}
}
