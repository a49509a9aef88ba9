package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repoquest/repoquest/internal/orchestrators/world"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Build and inspect repository worlds",
}

var worldBuildCmd = &cobra.Command{
	Use:   "build <owner/repo>",
	Short: "Scrape a repository and generate its world",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorldBuild,
}

var worldShowCmd = &cobra.Command{
	Use:   "show <owner/repo>",
	Short: "Show a world's enemy, rooms, and quests",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorldShow,
}

var worldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all built worlds",
	Args:  cobra.NoArgs,
	RunE:  runWorldList,
}

func init() {
	worldCmd.AddCommand(worldBuildCmd)
	worldCmd.AddCommand(worldShowCmd)
	worldCmd.AddCommand(worldListCmd)
}

// splitFullName parses "owner/repo" CLI arguments.
func splitFullName(arg string) (owner, repo string, err error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected owner/repo, got %q", arg)
	}
	return parts[0], parts[1], nil
}

func runWorldBuild(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitFullName(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.worldSvc.BuildWorld(cmd.Context(), &world.BuildWorldInput{
		Owner: owner,
		Repo:  repo,
		Progress: func(percent int, status string) {
			fmt.Printf("[%3d%%] %s\n", percent, status)
		},
	})
	if err != nil {
		return err
	}

	verb := "built"
	if out.Rebuilt {
		verb = "rebuilt"
	}
	fmt.Printf("\nWorld %s %s: %d rooms, %d quests\n", out.World.FullName, verb, out.RoomCount, out.QuestCount)
	fmt.Printf("Main enemy: %s (level %d, %s)\n", out.MainEnemy.Name, out.MainEnemy.Level, out.World.HealthState)
	return nil
}

func runWorldShow(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitFullName(args[0])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.worldSvc.GetWorld(cmd.Context(), &world.GetWorldInput{
		FullName: owner + "/" + repo,
	})
	if err != nil {
		return err
	}

	w := out.World
	fmt.Printf("%s  [%s]\n", w.FullName, w.HealthState)
	fmt.Printf("  language=%s stars=%d forks=%d activity=%d loot-quality=%d\n",
		w.PrimaryLanguage, w.Stars, w.Forks, w.ActivityScore, out.BaseLootQuality)

	if out.MainEnemy != nil {
		e := out.MainEnemy
		fmt.Printf("\nMain enemy: %s (level %d, hp %d, atk %d, def %d)\n",
			e.Name, e.Level, e.HP, e.Attack, e.Defense)
	}

	fmt.Printf("\nRooms (%d):\n", len(out.Rooms))
	for _, room := range out.Rooms {
		visited := " "
		if room.Visited {
			visited = "x"
		}
		fmt.Printf("  [%s] %-40s zone=%s danger=%d loot=%d  (%s)\n",
			visited, room.FilePath, room.ZoneName, room.DangerLevel, room.LootQuality, room.ID)
	}

	fmt.Printf("\nQuests (%d):\n", len(out.Quests))
	for _, q := range out.Quests {
		fmt.Printf("  [%-11s] %s#%d difficulty=%d %s  (%s)\n",
			q.Status, q.SourceType, q.SourceNumber, q.Difficulty, q.Title, q.ID)
	}

	return nil
}

func runWorldList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.worldSvc.ListWorlds(cmd.Context(), &world.ListWorldsInput{})
	if err != nil {
		return err
	}

	if len(out.Worlds) == 0 {
		fmt.Println("No worlds built yet. Try: repoquest world build owner/repo")
		return nil
	}

	for _, w := range out.Worlds {
		fmt.Printf("%-40s %-8s stars=%d activity=%d scraped=%s\n",
			w.FullName, w.HealthState, w.Stars, w.ActivityScore,
			w.LastScrapedAt.Format("2006-01-02"))
	}
	return nil
}
