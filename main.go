package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/lifestyle/model"
)

const configEnv = "LIFESTYLE_CONFIG"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config := loadConfig(configPath())
	config.Bind(flag.CommandLine)
	flag.Parse()
	if err := config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	// Initialize game
	ctrl, seed, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, ctrl.Board(), seed)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	var (
		detector       = model.NewCycleDetector(model.DefaultCycleDepth)
		stagnantCount  = 0
		totalGens      = 0
		lastFrameTime  = time.Now()
		lastGenTime    = lastFrameTime
		lastRestartGen = 0
		status         = "Active"
	)
	draw(renderer, config, ctrl, stats, status, totalGens, lastRestartGen)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				totalGens, stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		case now := <-ticker.C:
			elapsed := now.Sub(lastFrameTime)
			lastFrameTime = now

			if !ctrl.Update(elapsed.Seconds()) {
				continue
			}
			totalGens++

			var stagnant bool
			status, stagnant = updateGameState(ctrl.Board(), detector, stats, totalGens, now.Sub(lastGenTime))
			lastGenTime = now
			if stagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}

			draw(renderer, config, ctrl, stats, status, totalGens, lastRestartGen)

			// Check for max generations limit
			if config.MaxGenerations > 0 && totalGens >= config.MaxGenerations {
				fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
				return
			}

			shouldRestart, restartReason := checkRestartConditions(ctrl.Board().Population(), stagnantCount, totalGens-lastRestartGen, config)
			if shouldRestart && config.AutoRestart {
				fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
				board, err := restartGame(config)
				if err != nil {
					log.Fatalf("%+v", err)
				}
				ctrl.Reset(board)
				detector.Reset()
				stagnantCount = 0
				lastRestartGen = totalGens
			}
		}
	}
}

func configPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	return "config.json"
}
