package version_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llxisdsh/atomwait/internal/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.Revision)
	require.Equal(t, version.Version+"+"+version.Revision, version.String())
}
