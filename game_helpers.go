package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/lifestyle/controller"
	"github.com/sheikhrachel/lifestyle/model"
	"github.com/sheikhrachel/lifestyle/utils"
)

// loadConfig reads path, falling back to the defaults when it cannot
func loadConfig(path string) utils.Config {
	config, err := utils.LoadConfig(path)
	if err != nil {
		fmt.Printf("Using default configuration (%s not loaded)\n", path)
		return utils.DefaultConfig()
	}
	return config
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*controller.Controller,
	int64,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	ctrl, seed, err := controller.NewFromConfig(config)
	if err != nil {
		return nil, seed, nil, nil, err
	}

	return ctrl, seed, model.NewTerminalRenderer(), utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board, seed int64) {
	fmt.Printf("Rule: %s | Memory Pool: %v | Workers: %d | Tick: %.3fs\n",
		config.ParsedRule(), config.UseMemoryPool, max(1, config.Workers), config.TickInterval)
	fmt.Printf("Grid: %dx%d | Seed: %d | Initial living cells: %d\n",
		board.Width(), board.Height(), seed, board.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState records a new generation and returns its status line and
// whether it repeats a recent generation
func updateGameState(
	board *model.Board,
	detector *model.CycleDetector,
	stats *utils.Stats,
	generation int,
	genDuration time.Duration,
) (string, bool) {
	livingCells := board.Population()
	stats.Update(generation, livingCells, board.Width()*board.Height(), genDuration)

	isStagnant := detector.Observe(board)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return status, isStagnant
}

// draw clears the terminal and shows the status lines followed by the board
func draw(
	renderer *model.TerminalRenderer,
	config utils.Config,
	ctrl *controller.Controller,
	stats *utils.Stats,
	status string,
	generation int,
	lastRestartGen int,
) {
	if err := renderer.Clear(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
	displayGameStatus(generation, status, config, stats, lastRestartGen)
	if err := renderer.Display(ctrl.Board()); err != nil {
		fmt.Println("Error drawing board:", err)
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation int,
	status string,
	config utils.Config,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, stats.ActiveCells, stats.Density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	// Show time since last restart
	if config.AutoRestart && generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart.
// sinceRestart counts the generations computed on the current board.
func checkRestartConditions(livingCells, stagnantCount, sinceRestart int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshInterval > 0 && sinceRestart > 0 && sinceRestart%config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame builds a freshly seeded board. A fixed seed would replay the
// same history, so restarts always draw a new one.
func restartGame(config utils.Config) (*model.Board, error) {
	rng, _ := utils.NewRand(0)
	board, err := model.Seed(config.Pattern, config.Width, config.Height, rng)
	if err != nil {
		return nil, err
	}

	fmt.Printf("✨ New board seeded! Living cells: %d\n", board.Population())
	time.Sleep(1 * time.Second)

	return board, nil
}
