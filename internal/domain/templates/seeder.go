package templates

import "github.com/filearchitect/desktop/backend/internal/shared/types"

// planSeeding decides which defaults to write. With the sentinel present
// nothing is written; otherwise every default whose name is not already
// taken (exact, case-sensitive match) is.
func planSeeding(sentinelPresent bool, existing map[string]bool, defaults []types.Template) []types.Template {
	if sentinelPresent {
		return nil
	}

	var plan []types.Template
	for _, t := range defaults {
		if existing[t.Name] {
			continue
		}
		plan = append(plan, t)
	}
	return plan
}
