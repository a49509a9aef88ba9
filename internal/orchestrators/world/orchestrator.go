// Package world implements the world orchestrator: it turns a GitHub
// repository into a playable world with a main enemy, dungeon rooms, and
// quests, and persists the result.
package world

//go:generate mockgen -destination=mock/mock_service.go -package=worldorcmock github.com/repoquest/repoquest/internal/orchestrators/world Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/repoquest/repoquest/internal/analyzer"
	"github.com/repoquest/repoquest/internal/clients/github"
	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/errors"
	"github.com/repoquest/repoquest/internal/generator"
	"github.com/repoquest/repoquest/internal/pkg/idgen"
	"github.com/repoquest/repoquest/internal/pkg/rng"
	enemyrepo "github.com/repoquest/repoquest/internal/repositories/enemy"
	questrepo "github.com/repoquest/repoquest/internal/repositories/quest"
	roomrepo "github.com/repoquest/repoquest/internal/repositories/room"
	worldrepo "github.com/repoquest/repoquest/internal/repositories/world"
)

// Quest generation limits, matching what the client fetches.
const (
	maxIssueQuests = 20
	maxPRBosses    = 10
)

// ProgressFunc receives build progress as a percentage plus a short status
// line. Calls arrive on the building goroutine.
type ProgressFunc func(percent int, status string)

// Service defines the interface for world operations
type Service interface {
	// BuildWorld scrapes a repository and generates (or regenerates) its world
	BuildWorld(ctx context.Context, input *BuildWorldInput) (*BuildWorldOutput, error)

	// GetWorld loads a world with its main enemy, rooms, and quests
	GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error)

	// ListWorlds lists every discovered world
	ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error)
}

// BuildWorldInput defines the input for building a world
type BuildWorldInput struct {
	Owner    string
	Repo     string
	Progress ProgressFunc
}

// BuildWorldOutput defines the output for building a world
type BuildWorldOutput struct {
	World      *entities.RepoWorld
	MainEnemy  *entities.Enemy
	RoomCount  int
	QuestCount int
	Rebuilt    bool
}

// GetWorldInput defines the input for loading a world
type GetWorldInput struct {
	FullName string
}

// GetWorldOutput defines the output for loading a world
type GetWorldOutput struct {
	World           *entities.RepoWorld
	MainEnemy       *entities.Enemy
	Rooms           []*entities.DungeonRoom
	Quests          []*entities.Quest
	BaseLootQuality int
}

// ListWorldsInput defines the input for listing worlds
type ListWorldsInput struct {
	// Empty for now, can be extended with paging later
}

// ListWorldsOutput defines the output for listing worlds
type ListWorldsOutput struct {
	Worlds []*entities.RepoWorld
}

// Config holds the dependencies for the world orchestrator
type Config struct {
	GithubClient github.Client
	WorldRepo    worldrepo.Repository
	EnemyRepo    enemyrepo.Repository
	RoomRepo     roomrepo.Repository
	QuestRepo    questrepo.Repository
	IDGenerator  idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GithubClient == nil {
		vb.RequiredField("GithubClient")
	}
	if c.WorldRepo == nil {
		vb.RequiredField("WorldRepo")
	}
	if c.EnemyRepo == nil {
		vb.RequiredField("EnemyRepo")
	}
	if c.RoomRepo == nil {
		vb.RequiredField("RoomRepo")
	}
	if c.QuestRepo == nil {
		vb.RequiredField("QuestRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	githubClient github.Client
	worldRepo    worldrepo.Repository
	enemyRepo    enemyrepo.Repository
	roomRepo     roomrepo.Repository
	questRepo    questrepo.Repository
	idGen        idgen.Generator

	// buildLocks serializes builds per full name so concurrent requests for
	// the same repository never interleave their writes.
	mu         sync.Mutex
	buildLocks map[string]*sync.Mutex
}

// NewOrchestrator creates a new world orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		githubClient: cfg.GithubClient,
		worldRepo:    cfg.WorldRepo,
		enemyRepo:    cfg.EnemyRepo,
		roomRepo:     cfg.RoomRepo,
		questRepo:    cfg.QuestRepo,
		idGen:        cfg.IDGenerator,
		buildLocks:   make(map[string]*sync.Mutex),
	}, nil
}

func (o *orchestrator) lockFullName(fullName string) func() {
	o.mu.Lock()
	lock, ok := o.buildLocks[fullName]
	if !ok {
		lock = &sync.Mutex{}
		o.buildLocks[fullName] = lock
	}
	o.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (o *orchestrator) BuildWorld(ctx context.Context, input *BuildWorldInput) (*BuildWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Owner == "" || input.Repo == "" {
		return nil, errors.InvalidArgument("owner and repo are required")
	}

	fullName := input.Owner + "/" + input.Repo
	defer o.lockFullName(fullName)()

	progress := input.Progress
	if progress == nil {
		progress = func(int, string) {}
	}

	slog.InfoContext(ctx, "building world", "world", fullName)
	progress(5, "Initializing...")

	existing, err := o.worldRepo.GetByFullName(ctx, worldrepo.GetByFullNameInput{FullName: fullName})
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	// Every fetch happens before the first write so a fetch failure leaves
	// any prior world state untouched.
	progress(10, "Fetching repository information...")
	meta, err := o.githubClient.GetRepoMeta(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", fullName)
	}
	progress(20, "Parsing repository metadata...")

	progress(30, "Fetching README...")
	readme, err := o.githubClient.GetReadme(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch README for %s", fullName)
	}

	progress(40, "Analyzing README features...")
	readmeFeatures := analyzer.ComputeReadmeFeatures(readme)

	progress(50, "Fetching repository structure...")
	tree, err := o.githubClient.GetTree(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch tree for %s", fullName)
	}

	progress(55, "Parsing file structure...")
	structureFeatures := analyzer.ComputeStructureFeatures(tree)

	progress(60, "Fetching commit history...")
	commits, err := o.githubClient.ListCommits(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch commits for %s", fullName)
	}

	issues, err := o.githubClient.ListIssues(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch issues for %s", fullName)
	}

	pulls, err := o.githubClient.ListPullRequests(ctx, input.Owner, input.Repo)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch pull requests for %s", fullName)
	}

	activity := analyzer.ComputeActivityFeatures(commits, meta)

	progress(65, "Creating repository world...")
	world, err := o.upsertWorld(ctx, existing, input.Owner, input.Repo, meta,
		readmeFeatures, structureFeatures, activity)
	if err != nil {
		return nil, err
	}
	rebuilt := existing != nil && existing.World != nil

	// A rebuild replaces all generated content wholesale, enemies and
	// quests included, so nothing stale survives under the new world state.
	if rebuilt {
		if _, err := o.enemyRepo.DeleteByWorldID(ctx, enemyrepo.DeleteByWorldIDInput{WorldID: world.ID}); err != nil {
			return nil, err
		}
		if _, err := o.questRepo.DeleteByWorldID(ctx, questrepo.DeleteByWorldIDInput{WorldID: world.ID}); err != nil {
			return nil, err
		}
		if _, err := o.roomRepo.DeleteByWorldID(ctx, roomrepo.DeleteByWorldIDInput{WorldID: world.ID}); err != nil {
			return nil, err
		}
	}

	src := rng.NewRandom()

	progress(70, "Generating main enemy...")
	mainEnemy := generator.GenerateMainEnemy(generator.MainEnemyInput{
		Features:      readmeFeatures,
		WorldID:       world.ID,
		Stars:         world.Stars,
		Forks:         world.Forks,
		ActivityScore: world.ActivityScore,
		TotalFiles:    structureFeatures.TotalFiles,
		CommitCount:   len(commits),
	}, src)
	mainEnemy.ID = o.idGen.Generate()
	if _, err := o.enemyRepo.Create(ctx, enemyrepo.CreateInput{Enemy: mainEnemy}); err != nil {
		return nil, err
	}

	world.MainEnemyID = mainEnemy.ID
	if _, err := o.worldRepo.Update(ctx, worldrepo.UpdateInput{World: world}); err != nil {
		return nil, err
	}

	progress(75, "Generating dungeon rooms...")
	rooms := generator.GenerateRooms(tree, world.ID, src)
	for i, r := range rooms {
		r.ID = o.idGen.Generate()
		if i%10 == 0 && len(rooms) > 0 {
			progress(75+(i*5)/len(rooms), fmt.Sprintf("Creating room %d/%d...", i+1, len(rooms)))
		}
	}
	if _, err := o.roomRepo.CreateBatch(ctx, roomrepo.CreateBatchInput{Rooms: rooms}); err != nil {
		return nil, err
	}

	progress(85, "Fetching issues...")
	questCount := 0
	if len(issues) > 0 {
		progress(88, "Processing issues...")
		if len(issues) > maxIssueQuests {
			issues = issues[:maxIssueQuests]
		}
		for _, issue := range issues {
			quest := &entities.Quest{
				ID:           o.idGen.Generate(),
				WorldID:      world.ID,
				SourceType:   entities.QuestSourceIssue,
				SourceNumber: issue.IssueNumber,
				Title:        issue.Title,
				Difficulty:   analyzer.IssueDifficulty(issue),
				Status:       entities.QuestStatusNew,
			}
			if _, err := o.questRepo.Create(ctx, questrepo.CreateInput{Quest: quest}); err != nil {
				return nil, err
			}
			questCount++
		}
	}

	progress(92, "Fetching pull requests...")
	if len(pulls) > 0 {
		progress(95, "Processing pull requests...")
		if len(pulls) > maxPRBosses {
			pulls = pulls[:maxPRBosses]
		}
		for _, pr := range pulls {
			level := analyzer.PRBossLevel(pr, mainEnemy.Level)

			boss := generator.GeneratePRBoss(pr, level, world.ID)
			boss.ID = o.idGen.Generate()
			if _, err := o.enemyRepo.Create(ctx, enemyrepo.CreateInput{Enemy: boss}); err != nil {
				return nil, err
			}

			quest := &entities.Quest{
				ID:           o.idGen.Generate(),
				WorldID:      world.ID,
				SourceType:   entities.QuestSourcePR,
				SourceNumber: pr.PRNumber,
				Title:        pr.Title,
				Difficulty:   level,
				Status:       entities.QuestStatusNew,
			}
			if _, err := o.questRepo.Create(ctx, questrepo.CreateInput{Quest: quest}); err != nil {
				return nil, err
			}
			questCount++
		}
	}

	progress(100, "Complete!")
	slog.InfoContext(ctx, "world built",
		"world", fullName,
		"level", mainEnemy.Level,
		"rooms", len(rooms),
		"quests", questCount,
		"rebuilt", rebuilt)

	return &BuildWorldOutput{
		World:      world,
		MainEnemy:  mainEnemy,
		RoomCount:  len(rooms),
		QuestCount: questCount,
		Rebuilt:    rebuilt,
	}, nil
}

// upsertWorld refreshes an existing world's stats in place or creates a new
// record for a first discovery.
func (o *orchestrator) upsertWorld(
	ctx context.Context,
	existing *worldrepo.GetByFullNameOutput,
	owner, repo string,
	meta *entities.RepoMeta,
	readmeFeatures *entities.ReadmeFeatures,
	structureFeatures *entities.StructureFeatures,
	activity *analyzer.ActivityFeatures,
) (*entities.RepoWorld, error) {
	if existing != nil && existing.World != nil {
		world := existing.World
		world.PrimaryLanguage = meta.PrimaryLanguage
		world.Stars = meta.Stars
		world.Forks = meta.Forks
		world.Watchers = meta.Watchers
		world.ActivityScore = activity.ActivityScore
		world.HealthState = activity.HealthState
		world.ReadmeFeatures = readmeFeatures
		world.StructureFeatures = structureFeatures

		out, err := o.worldRepo.Update(ctx, worldrepo.UpdateInput{World: world})
		if err != nil {
			return nil, err
		}
		return out.World, nil
	}

	world := &entities.RepoWorld{
		ID:                o.idGen.Generate(),
		Owner:             owner,
		Repo:              repo,
		FullName:          owner + "/" + repo,
		PrimaryLanguage:   meta.PrimaryLanguage,
		Stars:             meta.Stars,
		Forks:             meta.Forks,
		Watchers:          meta.Watchers,
		ActivityScore:     activity.ActivityScore,
		HealthState:       activity.HealthState,
		ReadmeFeatures:    readmeFeatures,
		StructureFeatures: structureFeatures,
	}

	out, err := o.worldRepo.Create(ctx, worldrepo.CreateInput{World: world})
	if err != nil {
		return nil, err
	}
	return out.World, nil
}

func (o *orchestrator) GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error) {
	if input == nil || input.FullName == "" {
		return nil, errors.InvalidArgument("full name is required")
	}

	worldOut, err := o.worldRepo.GetByFullName(ctx, worldrepo.GetByFullNameInput{FullName: input.FullName})
	if err != nil {
		return nil, err
	}
	world := worldOut.World

	out := &GetWorldOutput{
		World:           world,
		BaseLootQuality: generator.BaseLootQuality(world.Stars, world.HealthState),
	}

	if world.MainEnemyID != "" {
		enemyOut, err := o.enemyRepo.Get(ctx, enemyrepo.GetInput{ID: world.MainEnemyID})
		if err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
		if err == nil {
			out.MainEnemy = enemyOut.Enemy
		}
	}

	roomsOut, err := o.roomRepo.ListByWorldID(ctx, roomrepo.ListByWorldIDInput{WorldID: world.ID})
	if err != nil {
		return nil, err
	}
	out.Rooms = roomsOut.Rooms

	questsOut, err := o.questRepo.ListByWorldID(ctx, questrepo.ListByWorldIDInput{WorldID: world.ID})
	if err != nil {
		return nil, err
	}
	out.Quests = questsOut.Quests

	return out, nil
}

func (o *orchestrator) ListWorlds(ctx context.Context, _ *ListWorldsInput) (*ListWorldsOutput, error) {
	out, err := o.worldRepo.List(ctx, worldrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListWorldsOutput{Worlds: out.Worlds}, nil
}
