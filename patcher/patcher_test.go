package patcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/codemerge/graph"
	"github.com/viant/codemerge/logging"
	"github.com/viant/codemerge/patcher"
	"github.com/viant/codemerge/repository"
)

func baseModel() *graph.File {
	return &graph.File{
		Path:    "greeter.ts",
		Imports: []*graph.Import{graph.NewImport("./a", "A")},
		Classes: []*graph.Class{{
			Name:      "Greeter",
			Modifiers: graph.Modifiers{"public"},
			Methods: []*graph.Function{
				{Name: "foo", Body: "{ foo(); }"},
				{Name: "bar", Body: "{ base(); }"},
			},
		}},
	}
}

func patchModel() *graph.File {
	return &graph.File{
		Path:    "greeter.ts",
		Imports: []*graph.Import{graph.NewImport("./a", "A"), graph.NewImport("./b", "B")},
		Classes: []*graph.Class{{
			Name:      "Greeter",
			Modifiers: graph.Modifiers{"public", "static"},
			Methods: []*graph.Function{
				{Name: "bar", Body: "{ patch(); }"},
				{Name: "baz", Body: "{ baz(); }"},
			},
		}},
		Functions: []*graph.Function{{Name: "helper", Body: "{}"}},
	}
}

func save(t *testing.T, store *repository.Store, location string, file *graph.File) {
	require.NoError(t, store.Save(context.Background(), location, file))
}

func TestPatcher_MergeFile(t *testing.T) {
	tests := []struct {
		description     string
		config          *patcher.Config
		dest            string
		expectWritten   bool
		expectModifiers graph.Modifiers
		expectBarBody   string
	}{
		{
			description:     "in place without override",
			config:          &patcher.Config{},
			expectWritten:   true,
			expectModifiers: graph.Modifiers{"public"},
			expectBarBody:   "{ base(); }",
		},
		{
			description:     "separate destination with override",
			config:          &patcher.Config{Override: true},
			dest:            "out.yaml",
			expectWritten:   true,
			expectModifiers: graph.Modifiers{"public", "static"},
			expectBarBody:   "{ patch(); }",
		},
		{
			description: "dry run",
			config:      &patcher.Config{DryRun: true},
			dest:        "out.yaml",
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			ctx := context.Background()
			root := t.TempDir()
			store := repository.NewStore(nil)
			baseURL := filepath.Join(root, "base.yaml")
			patchURL := filepath.Join(root, "patch.yaml")
			save(t, store, baseURL, baseModel())
			save(t, store, patchURL, patchModel())
			destURL := ""
			if tc.dest != "" {
				destURL = filepath.Join(root, tc.dest)
			}

			srv := patcher.New(store, tc.config, patcher.WithLogger(logging.Nop()))
			result, err := srv.MergeFile(ctx, baseURL, patchURL, destURL)
			require.NoError(t, err)
			assert.Equal(t, tc.expectWritten, result.Written)
			assert.Equal(t, patcher.ActionMerged, result.Action)
			assert.Equal(t, patcher.Count{Base: 1, Patch: 2, Merged: 2}, result.Stats.Imports)
			assert.Equal(t, 1, result.Stats.Functions.Appended())
			assert.Equal(t, 2, result.Stats.Appended())

			if !tc.expectWritten {
				_, err = os.Stat(filepath.Join(root, tc.dest))
				assert.True(t, os.IsNotExist(err))
				return
			}
			location := baseURL
			if destURL != "" {
				location = destURL
			}
			merged, err := store.Load(ctx, location)
			require.NoError(t, err)
			fingerprint, err := merged.Fingerprint()
			require.NoError(t, err)
			assert.Equal(t, result.Fingerprint, fingerprint)
			greeter := merged.LookupClass("Greeter")
			require.NotNil(t, greeter)
			assert.Equal(t, tc.expectModifiers, greeter.Modifiers)
			assert.Equal(t, tc.expectBarBody, greeter.LookupMethod("bar").Body)
			assert.Len(t, greeter.Methods, 3)
			assert.Len(t, merged.Imports, 2)
		})
	}
}

func TestPatcher_MergeFile_InPlace(t *testing.T) {
	tests := []struct {
		description    string
		base           *graph.File
		patch          *graph.File
		override       bool
		expectAction   patcher.Action
		expectWritten  bool
		expectLocation *graph.Location
	}{
		{
			description:  "nothing new in patch",
			base:         baseModel(),
			patch:        &graph.File{Imports: []*graph.Import{graph.NewImport("./a", "A")}},
			expectAction: patcher.ActionUnchanged,
		},
		{
			description:    "only body location changes",
			base:           &graph.File{Functions: []*graph.Function{{Name: "f", Body: "{}"}}},
			patch:          &graph.File{Functions: []*graph.Function{{Name: "f", Body: "{}", Location: &graph.Location{Start: 4, End: 9}}}},
			override:       true,
			expectAction:   patcher.ActionMerged,
			expectWritten:  true,
			expectLocation: &graph.Location{Start: 4, End: 9},
		},
		{
			description:  "location kept without override",
			base:         &graph.File{Functions: []*graph.Function{{Name: "f", Body: "{}"}}},
			patch:        &graph.File{Functions: []*graph.Function{{Name: "f", Body: "{}", Location: &graph.Location{Start: 4, End: 9}}}},
			expectAction: patcher.ActionUnchanged,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			ctx := context.Background()
			root := t.TempDir()
			store := repository.NewStore(nil)
			baseURL := filepath.Join(root, "base.yaml")
			patchURL := filepath.Join(root, "patch.yaml")
			save(t, store, baseURL, tc.base)
			save(t, store, patchURL, tc.patch)

			srv := patcher.New(store, &patcher.Config{Override: tc.override}, patcher.WithLogger(logging.Nop()))
			result, err := srv.MergeFile(ctx, baseURL, patchURL, "")
			require.NoError(t, err)
			assert.Equal(t, tc.expectAction, result.Action)
			assert.Equal(t, tc.expectWritten, result.Written)

			if tc.expectLocation != nil {
				merged, err := store.Load(ctx, baseURL)
				require.NoError(t, err)
				assert.Equal(t, tc.expectLocation, merged.LookupFunction("f").Location)
			}
		})
	}
}

func TestPatcher_MergeFile_InvalidDocument(t *testing.T) {
	root := t.TempDir()
	baseURL := filepath.Join(root, "base.yaml")
	require.NoError(t, os.WriteFile(baseURL, []byte("version: v3.0.0\nfile:\n  path: a.ts\n"), 0o644))
	_, err := patcher.New(nil, nil, patcher.WithLogger(logging.Nop())).MergeFile(context.Background(), baseURL, baseURL, "")
	assert.ErrorIs(t, err, repository.ErrUnsupportedVersion)
}

func TestPatcher_MergeTree(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(nil)
	baseRoot, patchRoot, destRoot := t.TempDir(), t.TempDir(), t.TempDir()

	save(t, store, filepath.Join(baseRoot, "app", "greeter.yaml"), baseModel())
	save(t, store, filepath.Join(patchRoot, "app", "greeter.yaml"), patchModel())
	save(t, store, filepath.Join(baseRoot, "app", "legacy.yaml"), &graph.File{Path: "legacy.ts"})
	save(t, store, filepath.Join(patchRoot, "app", "added.yaml"), &graph.File{Path: "added.ts"})
	save(t, store, filepath.Join(patchRoot, "vendor", "lib.yaml"), &graph.File{Path: "lib.ts"})

	srv := patcher.New(store, &patcher.Config{Exclude: []string{"vendor/**"}}, patcher.WithLogger(logging.Nop()))
	report, err := srv.MergeTree(ctx, baseRoot, patchRoot, destRoot)
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	actions := map[string]patcher.Action{}
	for _, result := range report.Results {
		actions[result.Path] = result.Action
	}
	assert.Equal(t, map[string]patcher.Action{
		"app/added.yaml":   patcher.ActionPatch,
		"app/greeter.yaml": patcher.ActionMerged,
		"app/legacy.yaml":  patcher.ActionBase,
	}, actions)
	assert.Equal(t, 3, report.Written())
	assert.Equal(t, 2, report.Totals().Appended())

	paths, err := store.List(ctx, destRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"app/added.yaml", "app/greeter.yaml", "app/legacy.yaml"}, paths)
}

func TestPatcher_MergeTree_InPlace(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(nil)
	baseRoot, patchRoot := t.TempDir(), t.TempDir()
	save(t, store, filepath.Join(baseRoot, "legacy.yaml"), &graph.File{Path: "legacy.ts"})
	save(t, store, filepath.Join(patchRoot, "added.yaml"), &graph.File{Path: "added.ts"})

	report, err := patcher.New(store, nil, patcher.WithLogger(logging.Nop())).MergeTree(ctx, baseRoot, patchRoot, "")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Written())
	assert.Equal(t, 1, report.Count(patcher.ActionBase))

	paths, err := store.List(ctx, baseRoot)
	require.NoError(t, err)
	assert.Equal(t, []string{"added.yaml", "legacy.yaml"}, paths)
}

func TestPatcher_MergeTree_Errors(t *testing.T) {
	ctx := context.Background()
	srv := patcher.New(nil, nil, patcher.WithLogger(logging.Nop()))
	_, err := srv.MergeTree(ctx, t.TempDir(), t.TempDir(), "")
	assert.ErrorIs(t, err, patcher.ErrNoPairs)

	srv = patcher.New(nil, &patcher.Config{Include: []string{"[a-"}}, patcher.WithLogger(logging.Nop()))
	_, err = srv.MergeTree(ctx, t.TempDir(), t.TempDir(), "")
	assert.Error(t, err)
}

func TestConfig_Match(t *testing.T) {
	tests := []struct {
		description string
		config      *patcher.Config
		path        string
		expected    bool
	}{
		{description: "no filters", config: patcher.DefaultConfig(), path: "a/b.yaml", expected: true},
		{description: "included", config: &patcher.Config{Include: []string{"src/**/*.yaml"}}, path: "src/app/main.yaml", expected: true},
		{description: "not included", config: &patcher.Config{Include: []string{"src/**"}}, path: "test/main.yaml"},
		{description: "excluded", config: &patcher.Config{Exclude: []string{"**/*.spec.yaml"}}, path: "src/app.spec.yaml"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.config.Match(tc.path))
		})
	}
}
