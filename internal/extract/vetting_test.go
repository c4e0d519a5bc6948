package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scout-cli/internal/config"
	"github.com/sells-group/scout-cli/internal/fetch"
	"github.com/sells-group/scout-cli/internal/model"
)

func TestVet(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*model.PersonVetting)
			out.School = " MIT "
			out.RoleCategory = "engineering"
			out.SeniorityLevel = "senior"
			out.MatchesCriteria = true
			out.Reasoning = "Strong match"
		}).
		Return(nil)

	v := NewVetter(m, config.Preferences{Schools: []string{"MIT"}}, fetch.NewThrottle(0))
	got, err := v.Vet(context.Background(), model.PersonExtraction{FullName: "Jane Doe", Title: "Senior Engineer"})
	require.NoError(t, err)

	assert.Equal(t, "MIT", got.School) // trimmed
	assert.Equal(t, "engineering", got.RoleCategory)
	assert.True(t, got.MatchesCriteria)
}

// Vetting fails closed: an unprofileable person is an error, not a pass.
func TestVetOracleFailure(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.Anything, mock.Anything).
		Return(eris.New("oracle down"))

	v := NewVetter(m, config.Preferences{}, fetch.NewThrottle(0))
	got, err := v.Vet(context.Background(), model.PersonExtraction{FullName: "Jane Doe"})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestVetPromptDefaults(t *testing.T) {
	m := &mockLLM{}
	m.On("GenerateStructured", mock.Anything, mock.MatchedBy(func(p string) bool {
		// Empty person fields and preferences render as placeholders.
		return strings.Contains(p, "Title: Not specified") &&
			strings.Contains(p, "Preferred Schools: Any") &&
			strings.Contains(p, "Preferred Roles: engineering, product")
	}), mock.Anything).Return(nil)

	prefs := config.Preferences{Roles: []string{"engineering", "product"}}
	v := NewVetter(m, prefs, fetch.NewThrottle(0))
	_, err := v.Vet(context.Background(), model.PersonExtraction{FullName: "Jane Doe"})
	require.NoError(t, err)
	m.AssertExpectations(t)
}
