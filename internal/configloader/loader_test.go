package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/internal/configloader"
	"github.com/yaklabco/golst/pkg/config"
)

// project creates an isolated project root. The .git directory stops the
// upward config search from leaving the temp dir.
func project(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func load(t *testing.T, opts configloader.LoadOptions) *configloader.LoadResult {
	t.Helper()

	opts.IgnoreUserConfig = true
	if opts.LookupEnv == nil {
		opts.LookupEnv = env(nil)
	}
	result, err := configloader.Load(context.Background(), opts)
	require.NoError(t, err)
	return result
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	result := load(t, configloader.LoadOptions{WorkingDir: project(t, nil)})
	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
	assert.Nil(t, result.Style)
}

func TestLoadProjectConfig(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		".golst.yml": "include:\n  - src/**/*.java\nexclude:\n  - '**/gen/**'\njobs: 3\nbackups:\n  enabled: true\n",
	})

	result := load(t, configloader.LoadOptions{WorkingDir: dir})
	assert.Equal(t, []string{"src/**/*.java"}, result.Config.Include)
	assert.Equal(t, []string{"**/gen/**"}, result.Config.Exclude)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.True(t, result.Config.Backups.Enabled)
	assert.Equal(t, "info", result.Config.LogLevel, "unset keys keep defaults")
	assert.Equal(t, []string{filepath.Join(dir, ".golst.yml")}, result.LoadedFrom)
}

func TestLoadProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		".golst.toml":     "jobs = 2\n",
		"src/main/A.java": "class A {}\n",
	})

	result := load(t, configloader.LoadOptions{WorkingDir: filepath.Join(dir, "src", "main")})
	assert.Equal(t, 2, result.Config.Jobs)
	assert.Equal(t, filepath.Join(dir, ".golst.toml"), result.Paths.Project)
}

func TestLoadStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := project(t, map[string]string{".golst.yml": "jobs: 9\n"})
	inner := filepath.Join(outer, "module")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0o755))

	result := load(t, configloader.LoadOptions{WorkingDir: inner})
	assert.Empty(t, result.Paths.Project)
	assert.Equal(t, 0, result.Config.Jobs)
}

func TestLoadPrecedence(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		".golst.yml":    "jobs: 1\nlog_level: warn\n",
		"explicit.toml": "jobs = 2\nlog_level = \"error\"\n",
		".env":          "GOLST_JOBS=3\nGOLST_COLOR=never\n",
	})

	tests := []struct {
		name     string
		opts     configloader.LoadOptions
		jobs     int
		logLevel string
		color    string
	}{
		{
			name:     "project only",
			opts:     configloader.LoadOptions{IgnoreEnv: true},
			jobs:     1,
			logLevel: "warn",
			color:    config.ColorAuto,
		},
		{
			name:     "explicit over project",
			opts:     configloader.LoadOptions{IgnoreEnv: true, ExplicitPath: filepath.Join(dir, "explicit.toml")},
			jobs:     2,
			logLevel: "error",
			color:    config.ColorAuto,
		},
		{
			name:     "dotenv over files",
			opts:     configloader.LoadOptions{ExplicitPath: filepath.Join(dir, "explicit.toml")},
			jobs:     3,
			logLevel: "error",
			color:    config.ColorNever,
		},
		{
			name: "environment over dotenv",
			opts: configloader.LoadOptions{
				LookupEnv: env(map[string]string{"GOLST_JOBS": "4", "GOLST_LOG_LEVEL": "debug"}),
			},
			jobs:     4,
			logLevel: "debug",
			color:    config.ColorNever,
		},
		{
			name: "flags over everything",
			opts: configloader.LoadOptions{
				LookupEnv: env(map[string]string{"GOLST_JOBS": "4"}),
				CLIConfig: &config.Config{Jobs: 5, Color: config.ColorAlways},
			},
			jobs:     5,
			logLevel: "warn",
			color:    config.ColorAlways,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			opts.WorkingDir = dir
			result := load(t, opts)
			assert.Equal(t, tt.jobs, result.Config.Jobs)
			assert.Equal(t, tt.logLevel, result.Config.LogLevel)
			assert.Equal(t, tt.color, result.Config.Color)
		})
	}
}

func TestLoadEnvironmentLists(t *testing.T) {
	t.Parallel()

	result := load(t, configloader.LoadOptions{
		WorkingDir: project(t, nil),
		LookupEnv: env(map[string]string{
			"GOLST_INCLUDE": "a/**/*.java, b/*.java",
			"GOLST_DRY_RUN": "true",
			"GOLST_DIFF":    "1",
		}),
	})
	assert.Equal(t, []string{"a/**/*.java", "b/*.java"}, result.Config.Include)
	assert.True(t, result.Config.DryRun)
	assert.True(t, result.Config.Diff)
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		".golst.yml": "style: team.yml\n",
		"team.yml":   "name: team\ntabs_and_indents:\n  use_tab_character: true\n",
	})

	result := load(t, configloader.LoadOptions{WorkingDir: dir})
	require.NotNil(t, result.Style)
	assert.Equal(t, "team", result.Style.Name)
	require.NotNil(t, result.Style.TabsAndIndents)
	assert.True(t, result.Style.TabsAndIndents.UseTabCharacter)
	assert.Nil(t, result.Style.Spaces)
	assert.NotEmpty(t, result.Warnings, "missing sections are reported")
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			files:   map[string]string{".golst.yml": "jobs: [\n"},
			wantErr: "load project config",
		},
		{
			name:    "negative jobs",
			files:   map[string]string{".golst.yml": "jobs: -1\n"},
			wantErr: "jobs must be >= 0",
		},
		{
			name:    "bad glob",
			files:   map[string]string{".golst.yml": "exclude:\n  - 'src/[a'\n"},
			wantErr: "exclude[0]",
		},
		{
			name:    "bad env integer",
			env:     map[string]string{"GOLST_JOBS": "many"},
			wantErr: "GOLST_JOBS",
		},
		{
			name:    "bad color",
			env:     map[string]string{"GOLST_COLOR": "sometimes"},
			wantErr: "invalid color mode",
		},
		{
			name:    "missing style",
			files:   map[string]string{".golst.yml": "style: nope.yml\n"},
			wantErr: "load style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := configloader.Load(context.Background(), configloader.LoadOptions{
				WorkingDir:       project(t, tt.files),
				IgnoreUserConfig: true,
				LookupEnv:        env(tt.env),
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	merged := configloader.MergeAll(
		config.NewConfig(),
		&config.Config{Exclude: []string{"a"}, DryRun: true},
		&config.Config{Exclude: []string{"b"}, Jobs: 2},
		nil,
	)
	assert.Equal(t, []string{config.DefaultInclude}, merged.Include)
	assert.Equal(t, []string{"b"}, merged.Exclude, "slices are replaced, not appended")
	assert.True(t, merged.DryRun)
	assert.Equal(t, 2, merged.Jobs)
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := configloader.ListEnvVars()
	assert.Contains(t, vars, "GOLST_JOBS")
	assert.Contains(t, vars, "GOLST_STYLE")
	assert.Len(t, vars, 9)
}

func TestProjectConfigFiles(t *testing.T) {
	t.Parallel()

	names := configloader.ProjectConfigFiles()
	assert.Equal(t, []string{".golst.yml", ".golst.yaml", ".golst.toml"}, names)

	names[0] = "changed"
	assert.Equal(t, ".golst.yml", configloader.ProjectConfigFiles()[0], "callers get a copy")
}
