package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adamluzsi/solid/animal"
	"github.com/adamluzsi/solid/fixtures"
	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
)

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Before(func(t *testcase.T) {
		logger.Testing(t)
	})

	cfg := testcase.Let(s, func(t *testcase.T) Config {
		return Config{
			Animals:     []string{"cat", "dog", "Cat"},
			FolderName:  fixtures.FolderName(),
			FolderPages: t.Random.IntBetween(0, 7),
		}
	})
	act := func(t *testcase.T) error {
		return Main(context.Background(), cfg.Get(t))
	}

	s.Then(`it runs without an error`, func(t *testcase.T) {
		t.Must.Nil(act(t))
	})

	s.When(`no animal is configured`, func(s *testcase.Spec) {
		cfg.Let(s, func(t *testcase.T) Config {
			c := cfg.Super(t)
			c.Animals = nil
			return c
		})

		s.Then(`it still runs`, func(t *testcase.T) {
			t.Must.Nil(act(t))
		})
	})

	s.When(`an unknown animal is configured`, func(s *testcase.Spec) {
		cfg.Let(s, func(t *testcase.T) Config {
			c := cfg.Super(t)
			c.Animals = append(c.Animals, "lion")
			return c
		})

		s.Then(`it fails`, func(t *testcase.T) {
			t.Must.ErrorIs(animal.ErrUnknownKind, act(t))
		})
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run(`defaults`, func(t *testing.T) {
		cfg, err := LoadConfig()
		require.Nil(t, err)
		require.Equal(t, []string{"cat", "dog"}, cfg.Animals)
		require.Equal(t, "s3://thumbnails/input", cfg.FolderName)
		require.Equal(t, 3, cfg.FolderPages)
	})

	t.Run(`from the environment`, func(t *testing.T) {
		t.Setenv("ZOO_ANIMALS", "dog,dog")
		t.Setenv("ZOO_FOLDER_PAGES", "5")

		cfg, err := LoadConfig()
		require.Nil(t, err)
		require.Equal(t, []string{"dog", "dog"}, cfg.Animals)
		require.Equal(t, 5, cfg.FolderPages)
	})

	t.Run(`from a config file`, func(t *testing.T) {
		path := writeConfigFile(t, "animals: [dog, cat, cat]\nfolder:\n  name: s3://thumbnails/scans\n  pages: 0\n")
		t.Setenv("ZOO_CONFIG_FILE", path)
		t.Setenv("ZOO_FOLDER_PAGES", "5")

		cfg, err := LoadConfig()
		require.Nil(t, err)
		require.Equal(t, []string{"dog", "cat", "cat"}, cfg.Animals)
		require.Equal(t, "s3://thumbnails/scans", cfg.FolderName)
		require.Equal(t, 0, cfg.FolderPages)
	})

	t.Run(`a partial config file keeps the environment values`, func(t *testing.T) {
		t.Setenv("ZOO_CONFIG_FILE", writeConfigFile(t, "animals: [cat]\n"))
		t.Setenv("ZOO_FOLDER_NAME", "s3://thumbnails/env")

		cfg, err := LoadConfig()
		require.Nil(t, err)
		require.Equal(t, []string{"cat"}, cfg.Animals)
		require.Equal(t, "s3://thumbnails/env", cfg.FolderName)
	})

	t.Run(`missing config file`, func(t *testing.T) {
		t.Setenv("ZOO_CONFIG_FILE", filepath.Join(t.TempDir(), "zoo.yaml"))

		_, err := LoadConfig()
		require.True(t, errors.Is(err, ErrConfigFile))
	})

	t.Run(`malformed config file`, func(t *testing.T) {
		t.Setenv("ZOO_CONFIG_FILE", writeConfigFile(t, "animals: {cat"))

		_, err := LoadConfig()
		require.True(t, errors.Is(err, ErrConfigFile))
	})

	t.Run(`negative page count in the config file`, func(t *testing.T) {
		t.Setenv("ZOO_CONFIG_FILE", writeConfigFile(t, "folder:\n  pages: -1\n"))

		_, err := LoadConfig()
		require.True(t, errors.Is(err, ErrConfigFile))
	})
}

func writeConfigFile(tb testing.TB, content string) string {
	path := filepath.Join(tb.TempDir(), "zoo.yaml")
	require.Nil(tb, os.WriteFile(path, []byte(content), 0o600))
	return path
}
