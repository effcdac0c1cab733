package tracker

import (
	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
)

// NewDraft is the mission builder's starting point for the given crew.
func NewDraft(kids []models.Kid) models.Draft {
	draft := models.Draft{
		Category:  models.CategoryMorning,
		Reward:    config.DefaultReward,
		DueLabel:  config.DefaultDueLabel,
		TimeOfDay: config.DefaultTimeOfDay,
	}
	if len(kids) > 0 {
		draft.AssignedKidID = kids[0].ID
	}
	return draft
}

// reconcileDraft keeps the draft's kid pointing at someone on the crew: an
// empty crew clears it, a missing kid falls back to the first one.
func reconcileDraft(draft models.Draft, kids []models.Kid) models.Draft {
	if len(kids) == 0 {
		draft.AssignedKidID = ""
		return draft
	}
	for _, kid := range kids {
		if kid.ID == draft.AssignedKidID {
			return draft
		}
	}
	draft.AssignedKidID = kids[0].ID
	return draft
}
