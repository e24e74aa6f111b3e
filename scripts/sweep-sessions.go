package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	dungeonsession "github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeon_session"
)

func main() {
	addr := flag.String("redis-addr", os.Getenv("REDIS_ADDR"), "Redis address")
	yes := flag.Bool("yes", false, "Delete without asking")
	flag.Parse()

	if *addr == "" {
		*addr = "localhost:6379"
	}

	client, err := redis.NewClient(*addr, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", *addr)
	fmt.Println("Scanning for broken dungeon sessions...")

	iter := client.Scan(ctx, 0, dungeonsession.KeyPattern, 0).Iterator()

	var brokenKeys []string
	var checkedCount int
	now := time.Now()

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var session entities.DungeonSession
		if err := json.Unmarshal([]byte(data), &session); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		// Sessions are written with an expiry; -1 means it was lost
		ttl, err := client.TTL(ctx, key).Result()
		if err == nil && ttl < 0 {
			fmt.Printf("✗ No TTL on %s\n", key)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		if !session.ExpiresAt.IsZero() && !now.Before(session.ExpiresAt) {
			fmt.Printf("✗ Expired session %s (expired %s)\n", key, session.ExpiresAt.Format(time.RFC3339))
			brokenKeys = append(brokenKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d broken sessions\n", checkedCount, len(brokenKeys))

	if len(brokenKeys) == 0 {
		fmt.Println("Nothing to clean up!")
		return
	}

	fmt.Println("\nBroken keys:")
	for _, key := range brokenKeys {
		fmt.Printf("  - %s\n", key)
	}

	if !*yes {
		fmt.Print("\nDo you want to DELETE these sessions? (yes/no): ")
		var response string
		_, _ = fmt.Scanln(&response)
		if response != "yes" {
			fmt.Println("Aborted - no changes made")
			return
		}
	}

	for _, key := range brokenKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
