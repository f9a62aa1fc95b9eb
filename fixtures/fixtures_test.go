package fixtures_test

import (
	"strings"
	"testing"

	"github.com/adamluzsi/solid/animal"
	"github.com/adamluzsi/solid/fixtures"
	"github.com/stretchr/testify/require"
)

func TestNewCat(t *testing.T) {
	require.NotEmpty(t, fixtures.NewCat().Name)
}

func TestNewDog(t *testing.T) {
	dog := fixtures.NewDog()
	require.NotEmpty(t, dog.Name)
	require.NotEmpty(t, dog.Breed)
}

func TestNewAnimals(t *testing.T) {
	animals := fixtures.NewAnimals(42)
	require.Len(t, animals, 42)
	require.Nil(t, animal.Verify(animals...))
}

func TestRandomKind(t *testing.T) {
	require.Contains(t, animal.Kinds(), fixtures.RandomKind())
}

func TestFolderName(t *testing.T) {
	name := fixtures.FolderName()
	require.True(t, strings.HasPrefix(name, "s3://thumbnails/"))
	require.NotEqual(t, name, fixtures.FolderName())
}
