package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M-MorreddygariTharun/Github-Data-Extraction/internal/domain"
)

// clearEnv blanks every variable Load reads, so tests are independent of the
// surrounding environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GITHUB_TOKEN", "REPO_OWNER", "REPO_NAME", "GITHUB_REPOSITORY",
		"OUT_DIR", "PER_PAGE", "START_DATE", "END_DATE", "DEBUG_DUMP",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults with only a token set", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_TOKEN", "any-token")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "any-token", cfg.Token)
		assert.Equal(t, defaultOwner, cfg.Owner)
		assert.Equal(t, defaultRepo, cfg.Repo)
		assert.Equal(t, defaultOutDir, cfg.OutDir)
		assert.Equal(t, defaultPerPage, cfg.PerPage)
		assert.Empty(t, cfg.StartDate)
		assert.Empty(t, cfg.EndDate)
		assert.False(t, cfg.DebugDump)
	})

	t.Run("owner and repo environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_TOKEN", "any-token")
		t.Setenv("REPO_OWNER", "some-owner")
		t.Setenv("REPO_NAME", "some-repo")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "some-owner", cfg.Owner)
		assert.Equal(t, "some-repo", cfg.Repo)
	})

	t.Run("combined GITHUB_REPOSITORY wins over the split variables", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_TOKEN", "any-token")
		t.Setenv("REPO_OWNER", "ignored-owner")
		t.Setenv("REPO_NAME", "ignored-repo")
		t.Setenv("GITHUB_REPOSITORY", "combined-owner/combined-repo")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "combined-owner", cfg.Owner)
		assert.Equal(t, "combined-repo", cfg.Repo)
	})

	t.Run("malformed GITHUB_REPOSITORY is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_TOKEN", "any-token")
		t.Setenv("GITHUB_REPOSITORY", "no-slash-here")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, defaultOwner, cfg.Owner)
		assert.Equal(t, defaultRepo, cfg.Repo)
	})

	t.Run("page size override", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_TOKEN", "any-token")
		t.Setenv("PER_PAGE", "30")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.PerPage)
	})

	t.Run("invalid page size fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_TOKEN", "any-token")
		t.Setenv("PER_PAGE", "lots")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing token fails with CredentialMissingError", func(t *testing.T) {
		clearEnv(t)

		_, err := Load()
		require.Error(t, err)
		var credErr *domain.CredentialMissingError
		require.ErrorAs(t, err, &credErr)
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	})

	t.Run("debug dump flag accepts common truthy spellings", func(t *testing.T) {
		for _, v := range []string{"1", "true", "TRUE", "yes"} {
			clearEnv(t)
			t.Setenv("GITHUB_TOKEN", "any-token")
			t.Setenv("DEBUG_DUMP", v)

			cfg, err := Load()
			require.NoError(t, err)
			assert.True(t, cfg.DebugDump, "value %q", v)
		}
	})
}
