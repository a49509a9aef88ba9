package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repoquest/repoquest/internal/entities"
	"github.com/repoquest/repoquest/internal/generator"
	"github.com/repoquest/repoquest/internal/orchestrators/combat"
	"github.com/repoquest/repoquest/internal/orchestrators/world"
	"github.com/repoquest/repoquest/internal/pkg/rng"
	enemyrepo "github.com/repoquest/repoquest/internal/repositories/enemy"
)

var (
	fightRoomID  string
	fightQuestID string
)

var fightCmd = &cobra.Command{
	Use:   "fight <player-id> <owner/repo>",
	Short: "Fight in a repository world",
	Long: `Fight the world's main enemy, or pick a target:

  --room   fight the enemy guarding a dungeon room; victory clears the room
  --quest  fight for a quest; PR quests summon their boss, victory completes
           the quest`,
	Args: cobra.ExactArgs(2),
	RunE: runFight,
}

func init() {
	fightCmd.Flags().StringVar(&fightRoomID, "room", "", "dungeon room ID to fight in")
	fightCmd.Flags().StringVar(&fightQuestID, "quest", "", "quest ID to fight for")
}

func runFight(cmd *cobra.Command, args []string) error {
	playerID := args[0]
	owner, repo, err := splitFullName(args[1])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	worldOut, err := a.worldSvc.GetWorld(ctx, &world.GetWorldInput{
		FullName: owner + "/" + repo,
	})
	if err != nil {
		return err
	}

	enemy, lootQuality, err := a.pickOpponent(cmd, worldOut)
	if err != nil {
		return err
	}

	restored, err := a.combatSvc.RestorePlayerHP(ctx, &combat.RestorePlayerHPInput{PlayerID: playerID})
	if err != nil {
		return err
	}
	player := restored.Player

	fmt.Printf("\n%s stands before you! (level %d, hp %d)\n", enemy.Name, enemy.Level, enemy.HP)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Printf("\nYou: %d hp   %s: %d hp\n", player.HP, enemy.Name, enemy.HP)
		fmt.Print("(a)ttack, (d)efend, (f)lee > ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		var action combat.Action
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "a", "attack":
			action = combat.ActionAttack
		case "d", "defend":
			action = combat.ActionDefend
		case "f", "flee":
			action = combat.ActionFlee
		default:
			fmt.Println("Choose a, d, or f.")
			continue
		}

		out, err := a.combatSvc.ExecuteTurn(ctx, &combat.ExecuteTurnInput{
			PlayerID:    playerID,
			Enemy:       enemy,
			Action:      action,
			LootQuality: lootQuality,
			RoomID:      fightRoomID,
			QuestID:     fightQuestID,
		})
		if err != nil {
			return err
		}
		player = out.Player

		for _, msg := range out.Messages {
			fmt.Println(msg)
		}

		switch out.Outcome {
		case combat.OutcomeVictory:
			fmt.Printf("\nYou gained %d XP.\n", out.XPGained)
			if out.LeveledUp {
				fmt.Printf("You are now level %d.\n", player.Level)
			}
			return nil
		case combat.OutcomeDefeat:
			fmt.Printf("\nYou lost %d XP and limp away.\n", out.XPLost)
			return nil
		case combat.OutcomeFled:
			return nil
		}
	}
}

// pickOpponent resolves the fight target from the flags: a room guardian, a
// quest boss, or the world's main enemy. Combat mutates the returned enemy,
// never the stored one.
func (a *app) pickOpponent(cmd *cobra.Command, worldOut *world.GetWorldOutput) (*entities.Enemy, int, error) {
	if fightRoomID != "" {
		for _, room := range worldOut.Rooms {
			if room.ID != fightRoomID {
				continue
			}
			guardian := generator.GenerateRoomEnemy(room.DangerLevel, room.WorldID, worldOut.MainEnemy, rng.NewRandom())
			return guardian, room.LootQuality, nil
		}
		return nil, 0, fmt.Errorf("room %q not found in %s", fightRoomID, worldOut.World.FullName)
	}

	if fightQuestID != "" {
		for _, quest := range worldOut.Quests {
			if quest.ID != fightQuestID {
				continue
			}
			if quest.SourceType == entities.QuestSourcePR {
				boss, err := a.findPRBoss(cmd, worldOut.World.ID, quest.SourceNumber)
				if err != nil {
					return nil, 0, err
				}
				return boss, worldOut.BaseLootQuality, nil
			}
			// Issue quests pit the player against the main enemy.
			if worldOut.MainEnemy == nil {
				return nil, 0, fmt.Errorf("world %s has no main enemy; rebuild it", worldOut.World.FullName)
			}
			main := *worldOut.MainEnemy
			return &main, worldOut.BaseLootQuality, nil
		}
		return nil, 0, fmt.Errorf("quest %q not found in %s", fightQuestID, worldOut.World.FullName)
	}

	if worldOut.MainEnemy == nil {
		return nil, 0, fmt.Errorf("world %s has no main enemy; rebuild it", worldOut.World.FullName)
	}
	main := *worldOut.MainEnemy
	return &main, worldOut.BaseLootQuality, nil
}

// findPRBoss locates the persisted boss for a pull request by number.
func (a *app) findPRBoss(cmd *cobra.Command, worldID string, prNumber int) (*entities.Enemy, error) {
	out, err := a.enemyRepo.ListByWorldID(cmd.Context(), enemyrepo.ListByWorldIDInput{WorldID: worldID})
	if err != nil {
		return nil, err
	}

	marker := fmt.Sprintf("PR #%d", prNumber)
	for _, e := range out.Enemies {
		if e.IsBoss && strings.Contains(e.Name, marker) {
			boss := *e
			return &boss, nil
		}
	}
	return nil, fmt.Errorf("no boss found for %s", marker)
}
