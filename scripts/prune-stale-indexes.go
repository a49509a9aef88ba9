package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// staleEntry is an index member whose backing record is gone.
type staleEntry struct {
	indexKey string
	member   string
}

// recordKey maps an index member back to the record key it should point at.
func recordKey(indexKey, member string) string {
	switch {
	case indexKey == "players":
		return "player:" + member
	case indexKey == "worlds":
		return "world:" + member
	case strings.HasPrefix(indexKey, "enemy:world:"):
		return "enemy:" + member
	case strings.HasPrefix(indexKey, "room:world:"):
		return "room:" + member
	case strings.HasPrefix(indexKey, "quest:world:"):
		return "quest:" + member
	}
	return ""
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning indexes for entries pointing at deleted records...")

	// The repositories prune stale entries lazily on List; this sweeps
	// everything in one pass, including indexes that are rarely listed.
	indexPatterns := []string{
		"players",
		"worlds",
		"enemy:world:*",
		"room:world:*",
		"quest:world:*",
	}

	var stale []staleEntry
	var checkedCount int

	for _, pattern := range indexPatterns {
		iter := client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			indexKey := iter.Val()

			members, err := client.SMembers(ctx, indexKey).Result()
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", indexKey, err)
				continue
			}

			for _, member := range members {
				checkedCount++
				target := recordKey(indexKey, member)
				if target == "" {
					continue
				}

				exists, err := client.Exists(ctx, target).Result()
				if err != nil {
					fmt.Printf("Error checking %s: %v\n", target, err)
					continue
				}
				if exists == 0 {
					fmt.Printf("✗ %s references missing %s\n", indexKey, target)
					stale = append(stale, staleEntry{indexKey: indexKey, member: member})
				}
			}
		}
		if err := iter.Err(); err != nil {
			log.Fatal("Error during scan:", err)
		}
	}

	fmt.Printf("\nChecked %d index entries, found %d stale\n", checkedCount, len(stale))

	if len(stale) == 0 {
		fmt.Println("All indexes are consistent!")
		return
	}

	fmt.Print("\nDo you want to REMOVE these stale entries? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, entry := range stale {
		if err := client.SRem(ctx, entry.indexKey, entry.member).Err(); err != nil {
			fmt.Printf("Failed to remove %s from %s: %v\n", entry.member, entry.indexKey, err)
		} else {
			fmt.Printf("Removed %s from %s\n", entry.member, entry.indexKey)
		}
	}
	fmt.Println("\nCleanup complete!")
}
