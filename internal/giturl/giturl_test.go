package giturl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kumar2007/RepoBook/internal/giturl"
)

func TestOwnerRepo(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		owner   string
		repo    string
		wantErr bool
	}{
		{"https", "https://github.com/golang/go", "golang", "go", false},
		{"trailing slash", "https://github.com/golang/go/", "golang", "go", false},
		{"dot git suffix", "https://github.com/golang/go.git", "golang", "go", false},
		{"deep link", "https://github.com/golang/go/blob/master/README.md", "golang", "go", false},
		{"scp-like ssh", "git@github.com:golang/go.git", "golang", "go", false},
		{"missing repo", "https://github.com/golang", "", "", true},
		{"bare host", "https://github.com/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := giturl.OwnerRepo(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}
