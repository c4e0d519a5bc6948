package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
	"github.com/sells-group/scout-cli/pkg/llm"
)

// Vetter asks the oracle to profile a person against the configured
// networking preferences. Unlike the relevance filter, vetting fails closed:
// a person the oracle cannot profile is not forwarded to scoring.
type Vetter struct {
	llm      llm.Client
	prefs    config.Preferences
	throttle *fetch.Throttle
}

// NewVetter creates a Vetter for the given preferences.
func NewVetter(client llm.Client, prefs config.Preferences, throttle *fetch.Throttle) *Vetter {
	return &Vetter{llm: client, prefs: prefs, throttle: throttle}
}

// Vet returns the oracle's profile of the person, or an error when the
// oracle call fails. Callers count errors as failed vetting.
func (v *Vetter) Vet(ctx context.Context, person model.PersonExtraction) (*model.PersonVetting, error) {
	if err := v.throttle.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "vetting: throttle wait")
	}

	prompt := fmt.Sprintf(vettingPrompt,
		person.FullName,
		orNotSpecified(person.Title, "Not specified"),
		orNotSpecified(person.Bio, "Not specified"),
		orNotSpecified(person.LinkedInURL, "Not specified"),
		orAny(v.prefs.Schools),
		orAny(v.prefs.Roles),
		orAny(v.prefs.Industries),
		orAny(v.prefs.SeniorityLevels),
		orAny(v.prefs.Locations),
	)

	var vetting model.PersonVetting
	if err := v.llm.GenerateStructured(ctx, prompt, &vetting); err != nil {
		return nil, eris.Wrapf(err, "vetting: profile %s", person.FullName)
	}

	vetting.School = strings.TrimSpace(vetting.School)
	vetting.RoleCategory = strings.TrimSpace(vetting.RoleCategory)
	vetting.SeniorityLevel = strings.TrimSpace(vetting.SeniorityLevel)
	vetting.Location = strings.TrimSpace(vetting.Location)
	return &vetting, nil
}
