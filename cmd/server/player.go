package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repoquest/repoquest/internal/entities"
	itemrepo "github.com/repoquest/repoquest/internal/repositories/item"
	playerrepo "github.com/repoquest/repoquest/internal/repositories/player"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Create and inspect players",
}

var playerCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerCreate,
}

var playerShowCmd = &cobra.Command{
	Use:   "show <player-id>",
	Short: "Show a player's stats, counters, and inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerShow,
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all players",
	Args:  cobra.NoArgs,
	RunE:  runPlayerList,
}

func init() {
	playerCmd.AddCommand(playerCreateCmd)
	playerCmd.AddCommand(playerShowCmd)
	playerCmd.AddCommand(playerListCmd)
}

func runPlayerCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	player := entities.NewPlayer(a.playerIDs.Generate(), args[0])
	out, err := a.playerRepo.Create(cmd.Context(), playerrepo.CreateInput{Player: player})
	if err != nil {
		return err
	}

	fmt.Printf("Created player %s (%s)\n", out.Player.Name, out.Player.ID)
	return nil
}

func runPlayerShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.playerRepo.Get(cmd.Context(), playerrepo.GetInput{ID: args[0]})
	if err != nil {
		return err
	}
	p := out.Player

	fmt.Printf("%s (%s)\n", p.Name, p.ID)
	fmt.Printf("  level=%d xp=%d hp=%d/%d atk=%d def=%d spd=%d luck=%d\n",
		p.Level, p.XP, p.HP, p.MaxHP(), p.Attack, p.Defense, p.Speed, p.Luck)

	countersOut, err := a.playerRepo.GetCounters(cmd.Context(), playerrepo.GetCountersInput{PlayerID: p.ID})
	if err != nil {
		return err
	}
	if len(countersOut.Counters) > 0 {
		fmt.Println("\nRecord:")
		for _, counter := range []string{
			playerrepo.CounterEnemiesDefeated,
			playerrepo.CounterBossesDefeated,
			playerrepo.CounterBattlesLost,
			playerrepo.CounterTotalXPEarned,
			playerrepo.CounterItemsCollected,
			playerrepo.CounterQuestsCompleted,
			playerrepo.CounterRoomsCleared,
		} {
			if value, ok := countersOut.Counters[counter]; ok {
				fmt.Printf("  %-18s %d\n", counter, value)
			}
		}
	}

	inv, err := a.itemRepo.ListInventory(cmd.Context(), itemrepo.ListInventoryInput{PlayerID: p.ID})
	if err != nil {
		return err
	}
	fmt.Printf("\nInventory (%d/%d slots):\n", len(inv.Items), p.InventoryCapacity())
	for _, owned := range inv.Items {
		equipped := ""
		if owned.Equipped {
			equipped = " [equipped]"
		}
		fmt.Printf("  %dx %s (%s)%s  (%s)\n",
			owned.Quantity, owned.Item.Name, owned.Item.Rarity, equipped, owned.Item.ID)
	}

	return nil
}

func runPlayerList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.playerRepo.List(cmd.Context(), playerrepo.ListInput{})
	if err != nil {
		return err
	}

	if len(out.Players) == 0 {
		fmt.Println("No players yet. Try: repoquest player create <name>")
		return nil
	}

	for _, p := range out.Players {
		fmt.Printf("%-36s %-20s level=%d xp=%d\n", p.ID, p.Name, p.Level, p.XP)
	}
	return nil
}
