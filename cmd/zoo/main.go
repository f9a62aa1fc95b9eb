package main

import (
	"context"
	"fmt"
	"os"

	"github.com/adamluzsi/solid/animal"
	"github.com/adamluzsi/solid/thumbnail"
	"github.com/adamluzsi/solid/visitors"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "zoo"))
	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "failed to load the configuration", logging.ErrField(err))
		os.Exit(1)
	}
	if err := Main(ctx, cfg); err != nil {
		logger.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

func Main(ctx context.Context, cfg Config) error {
	var animals []animal.Animal
	for i, raw := range cfg.Animals {
		kind, err := animal.ParseKind(raw)
		if err != nil {
			return err
		}
		a, err := animal.New(kind, fmt.Sprintf("%s-%d", kind, i+1))
		if err != nil {
			return err
		}
		animals = append(animals, a)
	}

	zoo, err := animal.NewZoo(animals...)
	if err != nil {
		return err
	}

	census := &visitors.Census{}
	for _, a := range zoo.Animals() {
		a.Accept(census)
		logger.Info(ctx, "animal",
			logging.Field("kind", animal.KindOf(a).String()),
			logging.Field("description", visitors.DescriptionOf(a)),
			logging.Field("lifespan", visitors.LifespanOf(a)))
	}
	counts := make(map[string]int, len(census.Counts))
	for k, n := range census.Counts {
		counts[k.String()] = n
	}
	logger.Info(ctx, "census",
		logging.Field("total", census.Total()),
		logging.Field("counts", counts))

	folder, err := thumbnail.Bind(ctx, s3Folder{
		name:  cfg.FolderName,
		pages: int64(cfg.FolderPages),
	})
	if err != nil {
		return err
	}
	for _, th := range thumbnail.NewService(folder).Plan() {
		logger.Info(ctx, "thumbnail planned",
			logging.Field("page", th.Page),
			logging.Field("name", th.Name))
	}
	return nil
}

// s3Folder never declares that it is a thumbnail.Folder,
// and its page count is not even an int.
type s3Folder struct {
	name  string
	pages int64
}

func (f s3Folder) Name() string { return f.name }

func (f s3Folder) Pages() int64 { return f.pages }
