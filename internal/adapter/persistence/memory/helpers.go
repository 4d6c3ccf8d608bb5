package memory

import (
	"sort"

	"mbg_outreach/internal/domain/entities"
)

func sortMessagesNewestFirst(msgs []entities.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].SentAt.After(msgs[j].SentAt)
	})
}
