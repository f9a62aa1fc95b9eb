// Package fixtures creates populated values with random content.
// This is primary and only used for testing.
package fixtures

import (
	"sync"

	"github.com/Pallinder/go-randomdata"
	"github.com/adamluzsi/solid/animal"
	uuid "github.com/satori/go.uuid"
)

// randomdata shares a single random source between goroutines
var mutex sync.Mutex

var breeds = []string{"beagle", "collie", "dachshund", "husky", "poodle", "vizsla"}

func NewCat() *animal.Cat {
	mutex.Lock()
	defer mutex.Unlock()
	return &animal.Cat{
		Name:   randomdata.SillyName(),
		Indoor: randomdata.Boolean(),
	}
}

func NewDog() *animal.Dog {
	mutex.Lock()
	defer mutex.Unlock()
	return &animal.Dog{
		Name:  randomdata.SillyName(),
		Breed: randomdata.StringSample(breeds...),
	}
}

// NewAnimal returns an Animal with a random kind.
func NewAnimal() animal.Animal {
	switch RandomKind() {
	case animal.KindDog:
		return NewDog()
	default:
		return NewCat()
	}
}

func NewAnimals(n int) []animal.Animal {
	animals := make([]animal.Animal, 0, n)
	for i := 0; i < n; i++ {
		animals = append(animals, NewAnimal())
	}
	return animals
}

func RandomKind() animal.Kind {
	kinds := animal.Kinds()
	mutex.Lock()
	defer mutex.Unlock()
	return kinds[randomdata.Number(0, len(kinds))]
}

// FolderName returns a unique, S3 like folder name.
func FolderName() string {
	return "s3://thumbnails/" + uuid.NewV4().String()
}
