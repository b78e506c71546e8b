package main

import (
	"testing"
	"time"

	"github.com/sheikhrachel/lifestyle/model"
	"github.com/sheikhrachel/lifestyle/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.StagnationThreshold = 3
	config.RefreshInterval = 50

	tests := []struct {
		name          string
		living        int
		stagnantCount int
		sinceRestart  int
		restart       bool
		reason        string
	}{
		{"extinct", 0, 0, 7, true, "extinction"},
		{"stagnant", 10, 3, 7, true, "stagnation detected"},
		{"active", 10, 2, 7, false, ""},
		{"periodic refresh", 10, 0, 100, true, "periodic refresh"},
		{"fresh board", 10, 0, 0, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tt.living, tt.stagnantCount, tt.sinceRestart, config)
			if restart != tt.restart || reason != tt.reason {
				t.Fatalf("got (%v, %q), expected (%v, %q)", restart, reason, tt.restart, tt.reason)
			}
		})
	}
}

func TestUpdateGameState(t *testing.T) {
	detector := model.NewCycleDetector(model.DefaultCycleDepth)
	stats := utils.NewStats()

	board := model.NewEmptyBoard(4, 4)
	board.Stamp(model.Pattern{"OO", "OO"}, 1, 1)

	status, stagnant := updateGameState(board, detector, stats, 1, time.Second)
	if status != "Active" || stagnant {
		t.Fatalf("first observation = (%q, %v)", status, stagnant)
	}
	status, stagnant = updateGameState(board.Next(), detector, stats, 2, time.Second)
	if status != "Stagnant" || !stagnant {
		t.Fatalf("block still life = (%q, %v)", status, stagnant)
	}
	if stats.ActiveCells != 4 || stats.Density != 25 {
		t.Fatalf("stats not updated: %+v", stats)
	}

	status, _ = updateGameState(model.NewEmptyBoard(4, 4), detector, stats, 3, time.Second)
	if status != "Extinct" {
		t.Fatalf("empty board status = %q", status)
	}
}

func TestPeriodicRefreshDisabled(t *testing.T) {
	config := utils.DefaultConfig()
	config.RefreshInterval = 0
	if restart, reason := checkRestartConditions(10, 0, 200, config); restart {
		t.Fatalf("refresh fired with interval 0: %q", reason)
	}
}
